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

package insort

import "errors"

// ErrInvalidArgument is returned (possibly wrapped) when an operation is given
// an argument it cannot work with: a nil sequence, a non-positive size or bound,
// or an unknown algorithm name.
var ErrInvalidArgument = errors.New("invalid argument")
