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
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Algorithm names one of the instrumented sorts.
type Algorithm string

const (
	// Simple selects SimpleInsertionSort.
	Simple Algorithm = "simple"

	// Binary selects BinaryInsertionSort.
	Binary Algorithm = "binary"
)

// Algorithms returns every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Simple, Binary}
}

// Title returns a human-readable name for reports.
func (a Algorithm) Title() string {
	switch a {
	case Simple:
		return "Simple insertion"
	case Binary:
		return "Binary insertion"
	}
	return string(a)
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case Simple, Binary:
		return a, nil
	}
	return "", fmt.Errorf("unknown algorithm %q: %w", name, ErrInvalidArgument)
}

// Sort runs the sort selected by alg over seq.
func Sort[T constraints.Signed](alg Algorithm, seq []T) (Result, error) {
	switch alg {
	case Simple:
		return SimpleInsertionSort(seq)
	case Binary:
		return BinaryInsertionSort(seq)
	}
	return Result{}, fmt.Errorf("unknown algorithm %q: %w", alg, ErrInvalidArgument)
}
