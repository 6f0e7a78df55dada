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

// Package experiment times insort runs and accumulates their outcomes.
//
// The engine in insort only counts comparisons and shifts. This package is
// the caller-side harness around it: Run copies the input, brackets the sort
// with a wall-clock measurement, and checks the output order; Compare runs
// every algorithm over its own copy of the same input; Batch runs a grid of
// generated inputs on a worker pool. Records are collected in a History,
// which hands out monotonically increasing IDs.
package experiment
