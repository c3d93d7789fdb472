// Copyright 2025 Ian Lewis
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

package cedict

import (
	"bufio"
	"io"
	"strings"
)

// Scanner scans a CC-CEDICT dictionary from start to end, skipping comment
// lines and collecting pragma ('#! key=value') metadata.
type Scanner struct {
	s *bufio.Scanner

	info map[string]string

	// peeked holds the first entry line, read ahead while consuming the
	// header comments.
	peeked  string
	hasPeek bool

	line string
	pos  int
	err  error
}

// NewScanner returns a new Scanner reading from r. The dictionary header is
// consumed up to the first entry line so that pragma metadata is available
// immediately via Value.
func NewScanner(r io.Reader) (*Scanner, error) {
	s := &Scanner{
		s:    bufio.NewScanner(bufio.NewReader(r)),
		info: map[string]string{},
	}

	for s.s.Scan() {
		line := strings.TrimSpace(s.s.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			s.pragma(line)
			continue
		}
		s.peeked = line
		s.hasPeek = true
		break
	}
	if err := s.s.Err(); err != nil {
		return nil, err
	}

	return s, nil
}

// Scan advances the scanner to the next entry line. It returns false if the
// scan stops either by reaching the end of the dictionary or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for {
		var line string
		switch {
		case s.hasPeek:
			line = s.peeked
			s.hasPeek = false
		case s.s.Scan():
			line = strings.TrimSpace(s.s.Text())
		default:
			s.err = s.s.Err()
			return false
		}

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			// Comments may also appear between entries.
			s.pragma(line)
			continue
		}

		s.line = line
		s.pos++
		return true
	}
}

// Text returns the current raw entry line.
func (s *Scanner) Text() string {
	return s.line
}

// Entry parses and returns the current entry.
func (s *Scanner) Entry() (*Entry, error) {
	return ParseEntry(s.line)
}

// Pos returns the 1-based ordinal of the current entry line. Comment and
// blank lines are not counted.
func (s *Scanner) Pos() int {
	return s.pos
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Value returns the value of the given header pragma key (e.g. "date").
func (s *Scanner) Value(key string) string {
	return s.info[key]
}

// pragma records metadata from a '#! key=value' comment line.
func (s *Scanner) pragma(line string) {
	if !strings.HasPrefix(line, "#!") {
		return
	}
	v := strings.SplitN(strings.TrimPrefix(line, "#!"), "=", 2)
	if len(v) != 2 {
		return
	}
	key := strings.TrimSpace(v[0])
	value := strings.TrimSpace(v[1])
	if key == "" {
		return
	}
	s.info[key] = value
}
