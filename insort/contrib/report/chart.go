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

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sortbench/insort"
	"github.com/ajroetker/go-sortbench/insort/contrib/experiment"
)

// Metric selects the value a chart plots.
type Metric string

const (
	MetricComparisons Metric = "comparisons"
	MetricSwaps       Metric = "swaps"
	MetricTime        Metric = "time"
)

// Metrics returns every Metric in display order.
func Metrics() []Metric {
	return []Metric{MetricComparisons, MetricSwaps, MetricTime}
}

// ParseMetric maps a name to a Metric.
func ParseMetric(name string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(name)))
	if lo.Contains(Metrics(), m) {
		return m, nil
	}
	return "", fmt.Errorf("unknown metric %q: %w", name, insort.ErrInvalidArgument)
}

func (m Metric) value(r experiment.Record) int64 {
	switch m {
	case MetricComparisons:
		return r.Comparisons
	case MetricSwaps:
		return r.Swaps
	case MetricTime:
		return r.Elapsed.Microseconds()
	}
	return 0
}

func (m Metric) format(v int64) string {
	if m == MetricTime {
		return humanize.Comma(v) + " µs"
	}
	return humanize.Comma(v)
}

// DefaultBarWidth is the length in cells of the longest bar.
const DefaultBarWidth = 40

// Bars draws a horizontal bar per record, scaled so the largest value spans
// width cells. Non-zero values always get at least one cell.
func Bars(w io.Writer, records []experiment.Record, metric Metric, width int) error {
	if _, err := ParseMetric(string(metric)); err != nil {
		return err
	}
	if width <= 0 {
		width = DefaultBarWidth
	}

	fmt.Fprintf(w, "%s\n", metric)
	if len(records) == 0 {
		return nil
	}

	labels := lo.Map(records, func(r experiment.Record, _ int) string { return r.Label() })
	labelWidth := len(lo.MaxBy(labels, func(a, b string) bool { return len(a) > len(b) }))
	peak := lo.Max(lo.Map(records, func(r experiment.Record, _ int) int64 { return metric.value(r) }))

	for i, r := range records {
		v := metric.value(r)
		n := 0
		if peak > 0 {
			n = int(v * int64(width) / peak)
			if n == 0 && v > 0 {
				n = 1
			}
		}
		fmt.Fprintf(w, "  %-*s | %s%s %s\n", labelWidth, labels[i],
			strings.Repeat("█", n), strings.Repeat(" ", width-n), metric.format(v))
	}
	return nil
}
