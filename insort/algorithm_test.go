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

package insort

import (
	"errors"
	"slices"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Algorithm
	}{
		{"simple", Simple},
		{" Binary ", Binary},
		{"BINARY", Binary},
	} {
		got, err := ParseAlgorithm(tc.in)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAlgorithm(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseAlgorithm("bubble"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseAlgorithm(bubble) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSortDispatch(t *testing.T) {
	for _, alg := range Algorithms() {
		data := []int{3, 1, 2}
		res, err := Sort(alg, data)
		if err != nil {
			t.Fatalf("Sort(%s) error: %v", alg, err)
		}
		if !slices.Equal(data, []int{1, 2, 3}) {
			t.Errorf("Sort(%s) = %v", alg, data)
		}
		if res.Swaps != 2 {
			t.Errorf("Sort(%s) swaps = %d, want 2", alg, res.Swaps)
		}
	}
	if _, err := Sort(Algorithm("heap"), []int{1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Sort(heap) error = %v, want ErrInvalidArgument", err)
	}
}

func TestResultAdd(t *testing.T) {
	got := Result{Comparisons: 2, Swaps: 1}.Add(Result{Comparisons: 3, Swaps: 4})
	if want := (Result{Comparisons: 5, Swaps: 5}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}
