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
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// Host describes the machine timings were taken on, e.g.
// "linux/amd64 8 cpus [avx2 avx512f]". It is written into report headers so
// timings from different machines are not confused.
func Host() string {
	var b strings.Builder
	b.WriteString(runtime.GOOS)
	b.WriteByte('/')
	b.WriteString(runtime.GOARCH)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(runtime.NumCPU()))
	b.WriteString(" cpus")
	if feats := cpuFeatures(); len(feats) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(feats, " "))
		b.WriteByte(']')
	}
	return b.String()
}

func cpuFeatures() []string {
	var feats []string
	add := func(ok bool, name string) {
		if ok {
			feats = append(feats, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasAVX512F, "avx512f")
		add(cpu.X86.HasBMI2, "bmi2")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return feats
}
