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

package cedict_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cedict"
)

// TestParseEntry tests ParseEntry.
func TestParseEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string

		expected *cedict.Entry
		err      error
	}{
		{
			name: "basic entry",
			line: "中文 中文 [Zhong1 wen2] /Chinese language/",
			expected: &cedict.Entry{
				Traditional: "中文",
				Simplified:  "中文",
				Pinyin:      "Zhong1 wen2",
				Meaning:     "Chinese language",
			},
		},
		{
			name: "distinct forms",
			line: "課 课 [ke4] /subject/course/class/",
			expected: &cedict.Entry{
				Traditional: "課",
				Simplified:  "课",
				Pinyin:      "ke4",
				Meaning:     "subject/course/class",
			},
		},
		{
			name: "brackets in definitions",
			line: "科 科 [ke1] /branch of study/also pr. [ke4]/",
			expected: &cedict.Entry{
				Traditional: "科",
				Simplified:  "科",
				Pinyin:      "ke1",
				Meaning:     "branch of study/also pr. [ke4]",
			},
		},
		{
			name: "missing pronunciation",
			line: "課 课 /subject/",
			err:  cedict.ErrMalformedLine,
		},
		{
			name: "unterminated pronunciation",
			line: "課 课 [ke4/subject/",
			err:  cedict.ErrMalformedLine,
		},
		{
			name: "missing character form",
			line: "课 [ke4] /subject/",
			err:  cedict.ErrMalformedLine,
		},
		{
			name: "too many character forms",
			line: "課 课 课 [ke4] /subject/",
			err:  cedict.ErrMalformedLine,
		},
		{
			name: "missing leading slash",
			line: "課 课 [ke4] subject/",
			err:  cedict.ErrMalformedLine,
		},
		{
			name: "missing trailing slash",
			line: "課 课 [ke4] /subject",
			err:  cedict.ErrMalformedLine,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			e, err := cedict.ParseEntry(test.line)
			if !errors.Is(err, test.err) {
				t.Fatalf("ParseEntry(%q): unexpected error: %v", test.line, err)
			}
			if diff := cmp.Diff(test.expected, e); diff != "" {
				t.Errorf("ParseEntry(%q) (-want, +got):\n%s", test.line, diff)
			}
		})
	}
}

// TestEntry_Forms tests Entry.Forms.
func TestEntry_Forms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry *cedict.Entry

		expected []string
	}{
		{
			name: "distinct forms",
			entry: &cedict.Entry{
				Traditional: "課",
				Simplified:  "课",
			},
			expected: []string{"課", "课"},
		},
		{
			name: "identical forms",
			entry: &cedict.Entry{
				Traditional: "中文",
				Simplified:  "中文",
			},
			expected: []string{"中文"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, test.entry.Forms()); diff != "" {
				t.Errorf("Forms (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestEntry_Definitions tests Entry.Definitions.
func TestEntry_Definitions(t *testing.T) {
	t.Parallel()

	e := &cedict.Entry{
		Meaning: "subject/course/class",
	}
	expected := []string{"subject", "course", "class"}
	if diff := cmp.Diff(expected, e.Definitions()); diff != "" {
		t.Errorf("Definitions (-want, +got):\n%s", diff)
	}
}
