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

// Package insort provides instrumented insertion sorts for benchmarking.
//
// Two variants are implemented over caller-owned slices of signed integers:
//
//   - SimpleInsertionSort scans the sorted prefix leftward one element at a time.
//   - BinaryInsertionSort locates the insertion position with a binary search
//     and then shifts the tail of the prefix right.
//
// Both sort in place and return a Result holding the exact number of element
// comparisons and element shifts performed. Neither keeps a reference to the
// slice after returning, and neither measures time: callers bracket the call
// themselves (see the experiment package under contrib).
//
// # Example Usage
//
//	data := []int{5, 2, 4, 6, 1, 3}
//	res, err := insort.BinaryInsertionSort(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(data, res.Comparisons, res.Swaps)
//
// # Cost
//
// On descending input of length n both variants shift n(n-1)/2 elements.
// SimpleInsertionSort also performs n(n-1)/2 comparisons there, while
// BinaryInsertionSort needs at most ceil(log2(i+1)) comparisons to insert the
// element at index i, so its comparison count grows as O(n log n).
//
// Both variants only move an element past strictly greater elements, so equal
// values keep their relative order.
package insort
