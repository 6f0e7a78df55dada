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
	"slices"
	"sync"
)

// History is an append-only log of Records. The zero value is ready to use
// and it is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	lastID  uint64
	records []Record
}

// Add stamps rec with the next ID, appends it, and returns the stamped copy.
// IDs keep increasing across Reset.
func (h *History) Add(rec Record) Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastID++
	rec.ID = h.lastID
	h.records = append(h.records, rec)
	return rec
}

// AddAll adds every record in order and returns the stamped copies.
func (h *History) AddAll(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i, rec := range recs {
		out[i] = h.Add(rec)
	}
	return out
}

// Records returns a snapshot of the log.
func (h *History) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.records)
}

// Len returns the number of records.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// Reset drops all records, e.g. when a new input is loaded.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = nil
}
