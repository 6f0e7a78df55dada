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

import "golang.org/x/exp/constraints"

// SimpleInsertionSort sorts seq in place in non-decreasing order using
// straight insertion sort and reports how much work it did.
//
// For every index i the element seq[i] is held aside and the sorted prefix is
// scanned leftward while the predecessor is strictly greater, shifting each
// scanned element one slot right. Every evaluation of "predecessor > current"
// counts as a comparison, including the final failing one when the scan stops
// before reaching index 0. Every shift counts as a swap.
//
// A nil seq returns ErrInvalidArgument. Empty and single-element slices are
// left untouched and yield a zero Result.
func SimpleInsertionSort[T constraints.Signed](seq []T) (Result, error) {
	if seq == nil {
		return Result{}, ErrInvalidArgument
	}

	var res Result
	for i := 1; i < len(seq); i++ {
		current := seq[i]
		j := i - 1
		for j >= 0 && seq[j] > current {
			res.Comparisons++
			seq[j+1] = seq[j]
			res.Swaps++
			j--
		}
		// The scan stopped on a non-greater predecessor.
		if j >= 0 {
			res.Comparisons++
		}
		seq[j+1] = current
	}
	return res, nil
}

// BinaryInsertionSort sorts seq in place in non-decreasing order using
// insertion sort with a binary search for the insertion position.
//
// Each probe of the binary search counts as one comparison. Elements equal to
// the one being inserted stay to its left, so the sort is stable. Every
// single-slot shift of the prefix tail counts as a swap.
//
// A nil seq returns ErrInvalidArgument. Empty and single-element slices are
// left untouched and yield a zero Result.
func BinaryInsertionSort[T constraints.Signed](seq []T) (Result, error) {
	if seq == nil {
		return Result{}, ErrInvalidArgument
	}

	var res Result
	for i := 1; i < len(seq); i++ {
		current := seq[i]
		pos := insertionPosition(seq, current, 0, i-1, &res)

		for j := i - 1; j >= pos; j-- {
			seq[j+1] = seq[j]
			res.Swaps++
		}
		seq[pos] = current
	}
	return res, nil
}

// insertionPosition binary searches seq[left:right+1] for the slot where value
// belongs, placing it after any equal elements.
func insertionPosition[T constraints.Signed](seq []T, value T, left, right int, res *Result) int {
	for left <= right {
		mid := (left + right) / 2
		res.Comparisons++
		if value < seq[mid] {
			right = mid - 1
		} else {
			left = mid + 1
		}
	}
	return left
}

// IsSorted reports whether seq is in non-decreasing order.
func IsSorted[T constraints.Signed](seq []T) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			return false
		}
	}
	return true
}
