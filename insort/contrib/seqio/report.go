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

package seqio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/ajroetker/go-sortbench/insort"
	"github.com/ajroetker/go-sortbench/insort/contrib/experiment"
)

// ReportHeader is the first line of every report.
const ReportHeader = "Array size, Algorithm, Comparisons, Swaps, Time (ms)"

// WriteReport writes the header and one line per record. An empty record list
// is rejected with insort.ErrInvalidArgument.
func WriteReport(w io.Writer, records []experiment.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no experiments to report: %w", insort.ErrInvalidArgument)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, ReportHeader)
	for _, r := range records {
		fmt.Fprintf(bw, "%d, %s, %d, %d, %d\n", r.Size, r.Algorithm, r.Comparisons, r.Swaps, r.ElapsedMillis())
	}
	if err := bw.Flush(); err != nil {
		return ioFailure(errors.Wrap(err, "writing report"))
	}
	return nil
}

// SaveReport writes the report for records to path on fs.
func SaveReport(fs afero.Fs, path string, records []experiment.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no experiments to report: %w", insort.ErrInvalidArgument)
	}
	return create(fs, path, func(w io.Writer) error { return WriteReport(w, records) })
}
