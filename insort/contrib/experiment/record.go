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
	"strconv"
	"time"

	"github.com/ajroetker/go-sortbench/insort"
)

// Record is the outcome of one timed sort over one input.
type Record struct {
	// ID is assigned by History.Add. Zero means the record was never added.
	ID uint64

	// Size is the length of the sorted input.
	Size int

	// Kind describes where the input came from ("random", "file", ...). It is
	// informational only.
	Kind string

	Algorithm   insort.Algorithm
	Comparisons int64
	Swaps       int64

	// Elapsed is the wall-clock time of the sort call alone.
	Elapsed time.Duration

	// Sorted reports whether the output was verified to be non-decreasing.
	Sorted bool
}

// Counts returns the instrumentation counters as an insort.Result.
func (r Record) Counts() insort.Result {
	return insort.Result{Comparisons: r.Comparisons, Swaps: r.Swaps}
}

// ElapsedMillis returns Elapsed truncated to whole milliseconds.
func (r Record) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}

// Label is a short identifier for charts, e.g. "binary (n=1000)".
func (r Record) Label() string {
	return string(r.Algorithm) + " (n=" + strconv.Itoa(r.Size) + ")"
}
