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

// Package seqio reads and writes integer sequences and experiment reports as
// plain text.
//
// Sequences are whitespace-separated decimal integers. Reports have a header
// line followed by one "size, algorithm, comparisons, swaps, millis" line per
// experiment.
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/ajroetker/go-sortbench/insort"
)

// ErrIOFailure marks errors caused by the underlying reader, writer or file
// system rather than by the data.
var ErrIOFailure = errors.New("i/o failure")

// TokenError describes one token that is not a valid integer.
type TokenError struct {
	// Index is the zero-based position of the token in the input.
	Index int
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

func ioFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrIOFailure, err)
}

// ReadSequence parses every whitespace-separated token of r as an integer.
//
// All malformed tokens are collected: the returned error wraps
// insort.ErrInvalidArgument and one *TokenError per offending token, and the
// sequence is nil. Empty input yields an empty, non-nil sequence.
func ReadSequence(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	seq := []int{}
	var bad *multierror.Error
	for idx := 0; sc.Scan(); idx++ {
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok {
				err = ne.Err
			}
			bad = multierror.Append(bad, &TokenError{Index: idx, Token: tok, Err: err})
			continue
		}
		seq = append(seq, v)
	}
	if err := sc.Err(); err != nil {
		return nil, ioFailure(errors.Wrap(err, "reading sequence"))
	}
	if bad != nil {
		return nil, fmt.Errorf("%w: %d malformed token(s): %w", insort.ErrInvalidArgument, len(bad.Errors), bad)
	}
	return seq, nil
}

// LoadSequence reads a sequence from path on fs.
func LoadSequence(fs afero.Fs, path string) ([]int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, ioFailure(errors.Wrapf(err, "opening %s", path))
	}
	defer f.Close()

	seq, err := ReadSequence(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return seq, nil
}

// WriteSequence writes seq on a single line, values separated by one space.
func WriteSequence(w io.Writer, seq []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for i, v := range seq {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
		if _, err := bw.Write(buf); err != nil {
			return ioFailure(errors.Wrap(err, "writing sequence"))
		}
	}
	if err := bw.Flush(); err != nil {
		return ioFailure(errors.Wrap(err, "writing sequence"))
	}
	return nil
}

// SaveSequence writes seq to path on fs, replacing any existing file.
func SaveSequence(fs afero.Fs, path string, seq []int) error {
	return create(fs, path, func(w io.Writer) error { return WriteSequence(w, seq) })
}

func create(fs afero.Fs, path string, write func(io.Writer) error) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return ioFailure(errors.Wrapf(err, "creating %s", path))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioFailure(errors.Wrapf(cerr, "closing %s", path))
		}
	}()
	return write(f)
}
