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
	"math/rand"
	"slices"
	"testing"
)

type sortFunc func([]int) (Result, error)

var sorts = []struct {
	name string
	fn   sortFunc
}{
	{"Simple", SimpleInsertionSort[int]},
	{"Binary", BinaryInsertionSort[int]},
}

func ascending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

func descending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = n - 1 - i
	}
	return data
}

// binaryDescendingComparisons counts the probes of a binary search that always
// narrows to the left half, summed over every insertion of a descending input.
func binaryDescendingComparisons(n int) int64 {
	var total int64
	for i := 1; i < n; i++ {
		for m := i; m > 0; m = (m - 1) / 2 {
			total++
		}
	}
	return total
}

// ceilLog2Bound is sum over i in [1, n-1] of ceil(log2(i+1)).
func ceilLog2Bound(n int) int64 {
	var total int64
	for i := 1; i < n; i++ {
		bits := int64(0)
		for v := 1; v < i+1; v <<= 1 {
			bits++
		}
		total += bits
	}
	return total
}

func TestSortNil(t *testing.T) {
	for _, s := range sorts {
		res, err := s.fn(nil)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s(nil) error = %v, want ErrInvalidArgument", s.name, err)
		}
		if res != (Result{}) {
			t.Errorf("%s(nil) = %v, want zero result", s.name, res)
		}
	}
}

func TestSortEmpty(t *testing.T) {
	for _, s := range sorts {
		data := []int{}
		res, err := s.fn(data)
		if err != nil {
			t.Fatalf("%s(empty) error: %v", s.name, err)
		}
		if res != (Result{}) {
			t.Errorf("%s(empty) = %v, want zero result", s.name, res)
		}
		if len(data) != 0 {
			t.Errorf("%s(empty) modified slice: %v", s.name, data)
		}
	}
}

func TestSortSingle(t *testing.T) {
	for _, s := range sorts {
		data := []int{42}
		res, err := s.fn(data)
		if err != nil {
			t.Fatalf("%s([42]) error: %v", s.name, err)
		}
		if res != (Result{}) {
			t.Errorf("%s([42]) = %v, want zero result", s.name, res)
		}
		if data[0] != 42 {
			t.Errorf("%s([42]) = %v, want [42]", s.name, data)
		}
	}
}

func TestSortSmall(t *testing.T) {
	for _, s := range sorts {
		data := []int{5, 2, 4, 6, 1, 3}
		if _, err := s.fn(data); err != nil {
			t.Fatalf("%s error: %v", s.name, err)
		}
		want := []int{1, 2, 3, 4, 5, 6}
		if !slices.Equal(data, want) {
			t.Errorf("%s = %v, want %v", s.name, data, want)
		}
	}
}

func TestSortNegativeAndDuplicates(t *testing.T) {
	for _, s := range sorts {
		data := []int{3, -1, 4, -1, 5, 9, -2, 6, 5, 3, 5}
		want := slices.Clone(data)
		slices.Sort(want)
		if _, err := s.fn(data); err != nil {
			t.Fatalf("%s error: %v", s.name, err)
		}
		if !slices.Equal(data, want) {
			t.Errorf("%s = %v, want %v", s.name, data, want)
		}
	}
}

func TestSortRandomMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{2, 3, 7, 16, 100, 513} {
		for trial := 0; trial < 5; trial++ {
			input := make([]int, n)
			for i := range input {
				input[i] = rng.Intn(50) - 25
			}
			want := slices.Clone(input)
			slices.Sort(want)

			var outputs [][]int
			for _, s := range sorts {
				data := slices.Clone(input)
				if _, err := s.fn(data); err != nil {
					t.Fatalf("%s error: %v", s.name, err)
				}
				if !slices.Equal(data, want) {
					t.Errorf("%s(n=%d) is not a sorted permutation of its input", s.name, n)
				}
				outputs = append(outputs, data)
			}
			if !slices.Equal(outputs[0], outputs[1]) {
				t.Errorf("n=%d: Simple and Binary disagree", n)
			}
		}
	}
}

// TestBinaryDuplicatePlacement checks that a value equal to the prefix tail is
// inserted after it rather than in front of it.
func TestBinaryDuplicatePlacement(t *testing.T) {
	data := []int{1, 2, 2}
	res, err := BinaryInsertionSort(data)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Result{Comparisons: 3, Swaps: 0}); res != want {
		t.Errorf("BinaryInsertionSort([1 2 2]) = %v, want %v", res, want)
	}
}

func TestSortEqualElementsNoSwaps(t *testing.T) {
	for _, s := range sorts {
		data := []int{7, 7, 7, 7, 7, 7}
		res, err := s.fn(data)
		if err != nil {
			t.Fatalf("%s error: %v", s.name, err)
		}
		if res.Swaps != 0 {
			t.Errorf("%s(all equal) swaps = %d, want 0", s.name, res.Swaps)
		}
	}
}

func TestSimpleAscendingCounts(t *testing.T) {
	for _, n := range []int{2, 5, 100, 1000} {
		data := ascending(n)
		res, err := SimpleInsertionSort(data)
		if err != nil {
			t.Fatal(err)
		}
		if res.Comparisons != int64(n-1) || res.Swaps != 0 {
			t.Errorf("SimpleInsertionSort(ascending %d) = %v, want comparisons=%d swaps=0", n, res, n-1)
		}
	}
}

func TestSimpleDescendingCounts(t *testing.T) {
	for _, n := range []int{2, 3, 10, 1000} {
		data := descending(n)
		res, err := SimpleInsertionSort(data)
		if err != nil {
			t.Fatal(err)
		}
		want := int64(n) * int64(n-1) / 2
		if res.Comparisons != want || res.Swaps != want {
			t.Errorf("SimpleInsertionSort(descending %d) = %v, want %d/%d", n, res, want, want)
		}
	}
}

func TestBinaryDescendingCounts(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 10, 64, 1000} {
		data := descending(n)
		res, err := BinaryInsertionSort(data)
		if err != nil {
			t.Fatal(err)
		}
		wantSwaps := int64(n) * int64(n-1) / 2
		if res.Swaps != wantSwaps {
			t.Errorf("BinaryInsertionSort(descending %d) swaps = %d, want %d", n, res.Swaps, wantSwaps)
		}
		if want := binaryDescendingComparisons(n); res.Comparisons != want {
			t.Errorf("BinaryInsertionSort(descending %d) comparisons = %d, want %d", n, res.Comparisons, want)
		}
		if bound := ceilLog2Bound(n); res.Comparisons > bound {
			t.Errorf("BinaryInsertionSort(descending %d) comparisons = %d, above bound %d", n, res.Comparisons, bound)
		}
	}
}

func TestBinaryKnownCounts(t *testing.T) {
	// Hand-traced: descending [3 2 1 0] needs 1+1+2 probes and 1+2+3 shifts.
	data := descending(4)
	res, err := BinaryInsertionSort(data)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Result{Comparisons: 4, Swaps: 6}); res != want {
		t.Errorf("BinaryInsertionSort([3 2 1 0]) = %v, want %v", res, want)
	}
}

// Regression: binary insertion must compare strictly less than simple insertion
// on descending input once n >= 4.
func TestBinaryBeatsSimpleOnDescending(t *testing.T) {
	for n := 4; n <= 300; n++ {
		a, b := descending(n), descending(n)
		simple, err := SimpleInsertionSort(a)
		if err != nil {
			t.Fatal(err)
		}
		binary, err := BinaryInsertionSort(b)
		if err != nil {
			t.Fatal(err)
		}
		if binary.Comparisons >= simple.Comparisons {
			t.Fatalf("n=%d: binary comparisons %d not below simple %d", n, binary.Comparisons, simple.Comparisons)
		}
		if binary.Swaps != simple.Swaps {
			t.Fatalf("n=%d: binary swaps %d != simple swaps %d", n, binary.Swaps, simple.Swaps)
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	input := make([]int, 200)
	for i := range input {
		input[i] = rng.Intn(1000)
	}
	for _, s := range sorts {
		data := slices.Clone(input)
		if _, err := s.fn(data); err != nil {
			t.Fatal(err)
		}
		sorted := slices.Clone(data)
		res, err := s.fn(data)
		if err != nil {
			t.Fatal(err)
		}
		if res.Swaps != 0 {
			t.Errorf("%s(sorted) swaps = %d, want 0", s.name, res.Swaps)
		}
		if !slices.Equal(data, sorted) {
			t.Errorf("%s(sorted) changed the slice", s.name)
		}
	}
}

func TestSortOtherWidths(t *testing.T) {
	d32 := []int32{4, -3, 2, -1}
	if _, err := BinaryInsertionSort(d32); err != nil {
		t.Fatal(err)
	}
	if !IsSorted(d32) {
		t.Errorf("BinaryInsertionSort(int32) = %v", d32)
	}
	d8 := []int8{127, -128, 0}
	if _, err := SimpleInsertionSort(d8); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(d8, []int8{-128, 0, 127}) {
		t.Errorf("SimpleInsertionSort(int8) = %v", d8)
	}
}

func TestDescending1000EndToEnd(t *testing.T) {
	a, b := descending(1000), descending(1000)
	simple, err := SimpleInsertionSort(a)
	if err != nil {
		t.Fatal(err)
	}
	binary, err := BinaryInsertionSort(b)
	if err != nil {
		t.Fatal(err)
	}
	if binary.Comparisons >= simple.Comparisons {
		t.Errorf("binary comparisons %d not below simple %d", binary.Comparisons, simple.Comparisons)
	}
	want := ascending(1000)
	if !slices.Equal(a, want) || !slices.Equal(b, want) {
		t.Errorf("descending(1000) did not sort to [0..999]")
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}) || !IsSorted([]int{1}) || !IsSorted([]int{1, 1, 2}) {
		t.Error("IsSorted rejected a sorted slice")
	}
	if IsSorted([]int{2, 1}) {
		t.Error("IsSorted accepted [2 1]")
	}
}
