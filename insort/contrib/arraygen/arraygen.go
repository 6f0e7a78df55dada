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

// Package arraygen produces input sequences for sort benchmarks.
package arraygen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ajroetker/go-sortbench/insort"
)

// Kind selects the shape of a generated sequence.
type Kind string

const (
	KindRandom     Kind = "random"
	KindAscending  Kind = "ascending"
	KindDescending Kind = "descending"
)

// DefaultMaxValue is the exclusive upper bound used for random sequences when
// the caller does not choose one.
const DefaultMaxValue = 1000

// Kinds returns every Kind in display order.
func Kinds() []Kind {
	return []Kind{KindRandom, KindAscending, KindDescending}
}

// ParseKind maps a case-insensitive name to a Kind. "sorted" and "reversed"
// are accepted as aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return KindRandom, nil
	case "ascending", "sorted":
		return KindAscending, nil
	case "descending", "reversed":
		return KindDescending, nil
	}
	return "", fmt.Errorf("unknown array kind %q: %w", name, insort.ErrInvalidArgument)
}

// Random returns size values drawn uniformly from [0, maxExclusive).
func Random(size, maxExclusive int) ([]int, error) {
	return RandomFrom(nil, size, maxExclusive)
}

// RandomFrom is like Random but draws from rng. A nil rng uses the global source.
func RandomFrom(rng *rand.Rand, size, maxExclusive int) ([]int, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if maxExclusive <= 0 {
		return nil, fmt.Errorf("max value must be positive, got %d: %w", maxExclusive, insort.ErrInvalidArgument)
	}
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	seq := make([]int, size)
	for i := range seq {
		seq[i] = intn(maxExclusive)
	}
	return seq, nil
}

// Ascending returns [0, 1, ..., size-1].
func Ascending(size int) ([]int, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	seq := make([]int, size)
	for i := range seq {
		seq[i] = i
	}
	return seq, nil
}

// Descending returns [size-1, ..., 1, 0].
func Descending(size int) ([]int, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	seq := make([]int, size)
	for i := range seq {
		seq[i] = size - 1 - i
	}
	return seq, nil
}

// Generate dispatches on kind. maxExclusive only applies to KindRandom.
func Generate(rng *rand.Rand, kind Kind, size, maxExclusive int) ([]int, error) {
	switch kind {
	case KindRandom:
		return RandomFrom(rng, size, maxExclusive)
	case KindAscending:
		return Ascending(size)
	case KindDescending:
		return Descending(size)
	}
	return nil, fmt.Errorf("unknown array kind %q: %w", kind, insort.ErrInvalidArgument)
}

func checkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("size must be positive, got %d: %w", size, insort.ErrInvalidArgument)
	}
	return nil
}
