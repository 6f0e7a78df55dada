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
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-sortbench/insort/contrib/arraygen"
	"github.com/ajroetker/go-sortbench/insort/contrib/experiment"
	"github.com/ajroetker/go-sortbench/insort/contrib/report"
	"github.com/ajroetker/go-sortbench/insort/contrib/seqio"
)

const envPrefix = "SORTBENCH_"

// app holds what the commands share. Tests swap fs, out and lookupEnv.
type app struct {
	fs        afero.Fs
	out       io.Writer
	log       *logrus.Logger
	lookupEnv func(string) (string, bool)
	history   experiment.History

	logLevel  string
	logFormat string
}

func newApp() *app {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	return &app{
		fs:        afero.NewOsFs(),
		out:       os.Stdout,
		log:       log,
		lookupEnv: os.LookupEnv,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark simple and binary insertion sort",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.applyEnv(cmd.Flags()); err != nil {
				return err
			}
			return a.configureLogging()
		},
	}
	root.SetOut(a.out)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(
		newGenerateCmd(a),
		newSortCmd(a),
		newCompareCmd(a),
		newBatchCmd(a),
	)
	return root
}

// applyEnv fills every flag not set on the command line from SORTBENCH_*.
func (a *app) applyEnv(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		key := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		v, ok := a.lookupEnv(key)
		if !ok {
			return
		}
		if serr := flags.Set(f.Name, v); serr != nil {
			err = fmt.Errorf("%s=%q: %w", key, v, serr)
		}
	})
	return err
}

func (a *app) configureLogging() error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)

	switch strings.ToLower(a.logFormat) {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", a.logFormat)
	}
	return nil
}

// inputFlags selects where a command's sequence comes from: a file, or the
// generator.
type inputFlags struct {
	in       string
	kind     string
	size     int
	maxValue int
	seed     int64
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.in, "in", "", "read the sequence from this file instead of generating one")
	f.registerGenerator(cmd)
}

func (f *inputFlags) registerGenerator(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", string(arraygen.KindRandom), "generated sequence kind (random, ascending, descending)")
	cmd.Flags().IntVar(&f.size, "size", 1000, "generated sequence length")
	cmd.Flags().IntVar(&f.maxValue, "max", arraygen.DefaultMaxValue, "exclusive upper bound for random values")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 picks one from the clock)")
}

func (f *inputFlags) rng() *rand.Rand {
	if f.seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(f.seed))
}

// load returns the sequence and a short description of its origin.
func (a *app) load(f *inputFlags) ([]int, string, error) {
	if f.in != "" {
		seq, err := seqio.LoadSequence(a.fs, f.in)
		if err != nil {
			return nil, "", err
		}
		a.log.WithFields(logrus.Fields{"file": f.in, "size": len(seq)}).Info("loaded sequence")
		return seq, "file", nil
	}

	kind, err := arraygen.ParseKind(f.kind)
	if err != nil {
		return nil, "", err
	}
	seq, err := arraygen.Generate(f.rng(), kind, f.size, f.maxValue)
	if err != nil {
		return nil, "", err
	}
	a.log.WithFields(logrus.Fields{"kind": kind, "size": len(seq)}).Debug("generated sequence")
	return seq, string(kind), nil
}

// outputFlags control what is written after the experiments ran.
type outputFlags struct {
	report string
	chart  string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.report, "report", "", "write a text report of every experiment in this run to this file")
	cmd.Flags().StringVar(&f.chart, "chart", "", "draw a bar chart: comparisons, swaps, time or all")
}

func (f *outputFlags) metrics() ([]report.Metric, error) {
	switch f.chart {
	case "":
		return nil, nil
	case "all":
		return report.Metrics(), nil
	}
	m, err := report.ParseMetric(f.chart)
	if err != nil {
		return nil, err
	}
	return []report.Metric{m}, nil
}

// emit prints records as a table, draws the requested charts and saves the
// report.
func (a *app) emit(f *outputFlags, recs []experiment.Record) error {
	metrics, err := f.metrics()
	if err != nil {
		return err
	}

	report.Table(a.out, recs)
	for _, m := range metrics {
		fmt.Fprintln(a.out)
		if err := report.Bars(a.out, recs, m, report.DefaultBarWidth); err != nil {
			return err
		}
	}

	if f.report != "" {
		if err := seqio.SaveReport(a.fs, f.report, a.history.Records()); err != nil {
			return err
		}
		a.log.WithFields(logrus.Fields{"file": f.report, "records": a.history.Len()}).Info("saved report")
	}
	return nil
}
