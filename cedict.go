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
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLine indicates that a dictionary line does not have the
// expected '<traditional> <simplified> [pinyin] /definitions/' structure.
var ErrMalformedLine = errors.New("malformed dictionary line")

// Entry is a single CC-CEDICT dictionary entry.
type Entry struct {
	// Traditional is the entry's headword in traditional characters.
	Traditional string

	// Simplified is the entry's headword in simplified characters.
	Simplified string

	// Pinyin is the entry's pronunciation as it appears between brackets in
	// the source line, normally in numbered-tone form.
	Pinyin string

	// Meaning is the raw slash-delimited definition text with the outer
	// slashes removed.
	Meaning string
}

// Forms returns the entry's distinct character forms. Entries whose
// traditional and simplified forms are identical have a single form.
func (e *Entry) Forms() []string {
	if e.Traditional == e.Simplified {
		return []string{e.Traditional}
	}
	return []string{e.Traditional, e.Simplified}
}

// Definitions returns the entry's individual definitions in source order.
func (e *Entry) Definitions() []string {
	return strings.Split(e.Meaning, "/")
}

// ParseEntry parses a single dictionary line into an Entry. The line is
// split at the first " [" and the following "] " into character forms,
// pronunciation, and definitions. Errors wrap ErrMalformedLine.
func ParseEntry(line string) (*Entry, error) {
	i := strings.Index(line, " [")
	if i < 0 {
		return nil, fmt.Errorf("%w: missing pronunciation: %q", ErrMalformedLine, line)
	}
	rest := line[i+2:]

	j := strings.Index(rest, "] ")
	if j < 0 {
		return nil, fmt.Errorf("%w: missing definitions: %q", ErrMalformedLine, line)
	}

	forms := strings.Fields(line[:i])
	if len(forms) != 2 {
		return nil, fmt.Errorf("%w: expected two character forms: %q", ErrMalformedLine, line)
	}

	meaning := rest[j+2:]
	if !strings.HasPrefix(meaning, "/") || !strings.HasSuffix(meaning, "/") || len(meaning) < 2 {
		return nil, fmt.Errorf("%w: definitions not slash delimited: %q", ErrMalformedLine, line)
	}

	return &Entry{
		Traditional: forms[0],
		Simplified:  forms[1],
		Pinyin:      rest[:j],
		Meaning:     meaning[1 : len(meaning)-1],
	}, nil
}
