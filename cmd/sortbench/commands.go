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

package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/insort"
	"github.com/ajroetker/go-sortbench/insort/contrib/arraygen"
	"github.com/ajroetker/go-sortbench/insort/contrib/experiment"
	"github.com/ajroetker/go-sortbench/insort/contrib/report"
	"github.com/ajroetker/go-sortbench/insort/contrib/seqio"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		input inputFlags
		out   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated sequence to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return fmt.Errorf("--out is required: %w", insort.ErrInvalidArgument)
			}
			seq, kind, err := a.load(&input)
			if err != nil {
				return err
			}
			if err := seqio.SaveSequence(a.fs, out, seq); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"file": out, "kind": kind, "size": len(seq)}).Info("wrote sequence")
			return nil
		},
	}
	input.registerGenerator(cmd)
	cmd.Flags().StringVar(&out, "out", "", "output file")
	return cmd
}

func newSortCmd(a *app) *cobra.Command {
	var (
		input     inputFlags
		output    outputFlags
		algorithm string
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort one sequence with one algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alg, err := insort.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			seq, kind, err := a.load(&input)
			if err != nil {
				return err
			}
			a.describe(seq)

			rec, err := experiment.Run(alg, seq)
			if err != nil {
				return err
			}
			rec.Kind = kind
			rec = a.history.Add(rec)
			a.log.WithFields(recordFields(rec)).Debug("sorted")
			if !rec.Sorted {
				a.log.WithField("algorithm", alg).Warn("output is not sorted")
			}
			return a.emit(&output, []experiment.Record{rec})
		},
	}
	input.register(cmd)
	output.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(insort.Binary), "simple or binary")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		input  inputFlags
		output outputFlags
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Sort one sequence with both algorithms and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seq, kind, err := a.load(&input)
			if err != nil {
				return err
			}
			a.describe(seq)

			recs, err := experiment.Compare(seq)
			if err != nil {
				return err
			}
			for i := range recs {
				recs[i].Kind = kind
			}
			recs = a.history.AddAll(recs)
			if err := a.emit(&output, recs); err != nil {
				return err
			}
			fmt.Fprintln(a.out)
			return report.Comparison(a.out, recs[0], recs[1])
		},
	}
	input.register(cmd)
	output.register(cmd)
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		output     outputFlags
		sizes      []int
		kinds      []string
		algorithms []string
	)
	cfg := experiment.DefaultBatchConfig()
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every algorithm over a grid of generated sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg.Sizes = sizes
			if cfg.Kinds, err = parseAll(kinds, arraygen.ParseKind); err != nil {
				return err
			}
			if cfg.Algorithms, err = parseAll(algorithms, insort.ParseAlgorithm); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"sizes":   cfg.Sizes,
				"kinds":   cfg.Kinds,
				"workers": cfg.Workers,
			}).Info("running batch")

			recs, err := experiment.Batch(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			recs = a.history.AddAll(recs)

			fmt.Fprintf(a.out, "Host: %s\n", experiment.Host())
			if err := a.emit(&output, recs); err != nil {
				return err
			}
			fmt.Fprintln(a.out)
			report.Summary(a.out, recs)
			return nil
		},
	}
	output.register(cmd)
	cmd.Flags().IntSliceVar(&sizes, "sizes", cfg.Sizes, "sequence lengths")
	cmd.Flags().StringSliceVar(&kinds, "kinds", lo.Map(cfg.Kinds, func(k arraygen.Kind, _ int) string { return string(k) }), "sequence kinds")
	cmd.Flags().StringSliceVar(&algorithms, "algorithms", lo.Map(cfg.Algorithms, func(alg insort.Algorithm, _ int) string { return string(alg) }), "algorithms to run")
	cmd.Flags().IntVar(&cfg.MaxValue, "max", cfg.MaxValue, "exclusive upper bound for random values")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	cmd.Flags().IntVar(&cfg.Workers, "workers", 0, "concurrent experiments (0 uses GOMAXPROCS)")
	return cmd
}

func parseAll[T any](names []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(names))
	for _, n := range names {
		v, err := parse(n)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// describe prints the input size and a preview of its elements.
func (a *app) describe(seq []int) {
	fmt.Fprintf(a.out, "Elements: %d\n", len(seq))
	fmt.Fprintf(a.out, "Input: %s\n\n", report.Preview(seq))
}

func recordFields(r experiment.Record) logrus.Fields {
	return logrus.Fields{
		"id":          r.ID,
		"algorithm":   r.Algorithm,
		"size":        r.Size,
		"comparisons": r.Comparisons,
		"swaps":       r.Swaps,
		"elapsed":     r.Elapsed,
	}
}
