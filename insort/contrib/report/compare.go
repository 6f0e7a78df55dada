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

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/ajroetker/go-sortbench/insort"
	"github.com/ajroetker/go-sortbench/insort/contrib/experiment"
)

var winner = color.New(color.FgGreen, color.Bold)

// Comparison writes, for each metric, which of a and b did less work and by
// how much.
func Comparison(w io.Writer, a, b experiment.Record) error {
	if a.Size != b.Size {
		return fmt.Errorf("cannot compare runs over %d and %d elements: %w", a.Size, b.Size, insort.ErrInvalidArgument)
	}
	fmt.Fprintf(w, "Comparison on %s elements:\n", humanize.Comma(int64(a.Size)))
	for _, m := range Metrics() {
		va, vb := m.value(a), m.value(b)
		switch {
		case va == vb:
			fmt.Fprintf(w, "  %-12s equal (%s)\n", m, m.format(va))
		case va < vb:
			fmt.Fprintf(w, "  %-12s %s lower by %s\n", m, winner.Sprint(a.Algorithm.Title()), m.format(vb-va))
		default:
			fmt.Fprintf(w, "  %-12s %s lower by %s\n", m, winner.Sprint(b.Algorithm.Title()), m.format(va-vb))
		}
	}
	return nil
}
