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

// Package report renders experiment records for terminals: tables, text bar
// charts, and side-by-side comparisons.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sortbench/insort"
	"github.com/ajroetker/go-sortbench/insort/contrib/experiment"
)

// Table writes one row per record.
func Table(w io.Writer, records []experiment.Record) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"ID", "Kind", "Size", "Algorithm", "Comparisons", "Swaps", "Time", "Sorted"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range records {
		tw.Append([]string{
			strconv.FormatUint(r.ID, 10),
			lo.Ternary(r.Kind == "", "-", r.Kind),
			humanize.Comma(int64(r.Size)),
			r.Algorithm.Title(),
			humanize.Comma(r.Comparisons),
			humanize.Comma(r.Swaps),
			formatElapsed(r.Elapsed),
			lo.Ternary(r.Sorted, "yes", "NO"),
		})
	}
	tw.Render()
}

// Total aggregates every record of one algorithm.
type Total struct {
	Algorithm insort.Algorithm
	Runs      int
	insort.Result
	Elapsed time.Duration
}

// Totals sums records per algorithm, in insort.Algorithms order. Algorithms
// without records are omitted.
func Totals(records []experiment.Record) []Total {
	groups := lo.GroupBy(records, func(r experiment.Record) insort.Algorithm { return r.Algorithm })
	var out []Total
	for _, alg := range insort.Algorithms() {
		recs, ok := groups[alg]
		if !ok {
			continue
		}
		out = append(out, lo.Reduce(recs, func(t Total, r experiment.Record, _ int) Total {
			t.Runs++
			t.Result = t.Result.Add(r.Counts())
			t.Elapsed += r.Elapsed
			return t
		}, Total{Algorithm: alg}))
	}
	return out
}

// Summary writes per-algorithm totals.
func Summary(w io.Writer, records []experiment.Record) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Algorithm", "Runs", "Comparisons", "Swaps", "Time"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, t := range Totals(records) {
		tw.Append([]string{
			t.Algorithm.Title(),
			strconv.Itoa(t.Runs),
			humanize.Comma(t.Comparisons),
			humanize.Comma(t.Swaps),
			formatElapsed(t.Elapsed),
		})
	}
	tw.Render()
}

// Preview formats seq for display. Sequences longer than 100 elements are
// shortened to their first and last 10 elements.
func Preview(seq []int) string {
	const limit, edge = 100, 10
	if len(seq) <= limit {
		return fmt.Sprint(seq)
	}
	parts := make([]string, 0, 2*edge+1)
	for _, v := range seq[:edge] {
		parts = append(parts, strconv.Itoa(v))
	}
	parts = append(parts, "...")
	for _, v := range seq[len(seq)-edge:] {
		parts = append(parts, strconv.Itoa(v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatElapsed(d time.Duration) string {
	if d >= time.Millisecond {
		return humanize.Comma(d.Milliseconds()) + " ms"
	}
	return d.Round(time.Microsecond).String()
}
