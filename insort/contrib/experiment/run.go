// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package experiment

import (
	"fmt"
	"slices"
	"time"

	"github.com/ajroetker/go-sortbench/insort"
)

// Run sorts a copy of seq with alg and times the sort call. seq itself is
// never modified. The returned Record has no ID.
func Run(alg insort.Algorithm, seq []int) (Record, error) {
	if seq == nil {
		return Record{}, fmt.Errorf("nil sequence: %w", insort.ErrInvalidArgument)
	}
	data := slices.Clone(seq)

	start := time.Now()
	res, err := insort.Sort(alg, data)
	elapsed := time.Since(start)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Size:        len(seq),
		Algorithm:   alg,
		Comparisons: res.Comparisons,
		Swaps:       res.Swaps,
		Elapsed:     elapsed,
		Sorted:      insort.IsSorted(data),
	}, nil
}

// Compare runs every algorithm in insort.Algorithms over its own copy of seq.
func Compare(seq []int) ([]Record, error) {
	algs := insort.Algorithms()
	recs := make([]Record, 0, len(algs))
	for _, alg := range algs {
		rec, err := Run(alg, seq)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
