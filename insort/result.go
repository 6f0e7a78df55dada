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

import "fmt"

// Result holds the instrumentation counters of one sort invocation.
type Result struct {
	// Comparisons is the number of element-to-element comparisons evaluated,
	// counted regardless of the branch taken.
	Comparisons int64

	// Swaps is the number of single-position element shifts performed while
	// opening the insertion slot.
	Swaps int64
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return fmt.Sprintf("comparisons=%d swaps=%d", r.Comparisons, r.Swaps)
}

// Add returns the element-wise sum of r and other.
func (r Result) Add(other Result) Result {
	return Result{
		Comparisons: r.Comparisons + other.Comparisons,
		Swaps:       r.Swaps + other.Swaps,
	}
}
