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
	"context"
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"github.com/ajroetker/go-sortbench/insort"
	"github.com/ajroetker/go-sortbench/insort/contrib/arraygen"
	"github.com/ajroetker/go-sortbench/insort/contrib/workerpool"
)

// BatchConfig describes a grid of experiments.
type BatchConfig struct {
	Sizes      []int
	Kinds      []arraygen.Kind
	Algorithms []insort.Algorithm

	// MaxValue bounds random inputs (exclusive).
	MaxValue int

	// Seed makes random inputs reproducible. Each (kind, size) cell derives
	// its own source from Seed and its position in the grid.
	Seed int64

	// Workers is the pool size; <= 0 uses GOMAXPROCS.
	Workers int
}

// DefaultBatchConfig returns the standard grid:
// sizes 500, 1000 and 5000, every kind, both algorithms.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Sizes:      []int{500, 1000, 5000},
		Kinds:      arraygen.Kinds(),
		Algorithms: insort.Algorithms(),
		MaxValue:   arraygen.DefaultMaxValue,
		Seed:       1,
	}
}

func (c BatchConfig) validate() error {
	if len(c.Sizes) == 0 || len(c.Kinds) == 0 || len(c.Algorithms) == 0 {
		return fmt.Errorf("batch needs at least one size, kind and algorithm: %w", insort.ErrInvalidArgument)
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("size must be positive, got %d: %w", s, insort.ErrInvalidArgument)
		}
	}
	if c.MaxValue <= 0 && lo.Contains(c.Kinds, arraygen.KindRandom) {
		return fmt.Errorf("max value must be positive, got %d: %w", c.MaxValue, insort.ErrInvalidArgument)
	}
	return nil
}

// Batch runs every algorithm over every (kind, size) input of cfg. Cells run
// concurrently; within a cell the input is generated once and every algorithm
// sorts its own copy. Records come back ordered by kind, then size, then
// algorithm, following cfg. Records have no IDs.
func Batch(ctx context.Context, cfg BatchConfig) ([]Record, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	type cell struct {
		kind arraygen.Kind
		size int
	}
	cells := make([]cell, 0, len(cfg.Kinds)*len(cfg.Sizes))
	for _, k := range cfg.Kinds {
		for _, s := range cfg.Sizes {
			cells = append(cells, cell{kind: k, size: s})
		}
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	out := make([][]Record, len(cells))
	err := pool.Run(ctx, len(cells), func(ctx context.Context, i int) error {
		c := cells[i]
		rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
		seq, err := arraygen.Generate(rng, c.kind, c.size, cfg.MaxValue)
		if err != nil {
			return err
		}
		recs := make([]Record, 0, len(cfg.Algorithms))
		for _, alg := range cfg.Algorithms {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := Run(alg, seq)
			if err != nil {
				return err
			}
			rec.Kind = string(c.kind)
			recs = append(recs, rec)
		}
		out[i] = recs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lo.Flatten(out), nil
}
