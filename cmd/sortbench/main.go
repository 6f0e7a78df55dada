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

// Command sortbench generates integer arrays, runs the instrumented insertion
// sorts over them, and reports comparison counts, shift counts, and timings.
//
// Usage:
//
//	sortbench generate --kind descending --size 1000 --out reversed_1000.txt
//	sortbench sort --algorithm binary --in reversed_1000.txt --chart comparisons
//	sortbench compare --kind random --size 5000 --report results.txt
//	sortbench batch --sizes 500,1000,5000 --chart all
//
// Every flag can also be set through the environment as SORTBENCH_<FLAG>,
// with dashes replaced by underscores (e.g. SORTBENCH_LOG_LEVEL=debug).
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp()
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		a.log.WithError(err).Error("sortbench failed")
		stop()
		os.Exit(1)
	}
}
