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

package yomitan

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// indexFormat is the Yomitan dictionary format version (term bank v3).
const indexFormat = 3

// Index is the dictionary metadata written to index.json.
type Index struct {
	Title     string `json:"title"`
	Format    int    `json:"format"`
	Revision  string `json:"revision"`
	Sequenced bool   `json:"sequenced"`
}

// NewIndex returns index metadata for a CC-CEDICT release date.
func NewIndex(date string) *Index {
	return &Index{
		Title:     "CC-CEDICT",
		Format:    indexFormat,
		Revision:  "cc_cedict_" + date,
		Sequenced: true,
	}
}

// Term is a single row of a term bank.
type Term struct {
	// Expression is the headword.
	Expression string

	// Reading is the headword's pronunciation.
	Reading string

	// DefinitionTags are tags for the definitions. Unused for CC-CEDICT.
	DefinitionTags string

	// Rules are deinflection rule identifiers. Unused for Chinese.
	Rules string

	// Score is used to rank results.
	Score int

	// Glosses are the definitions in display order.
	Glosses []string

	// Sequence groups terms derived from the same source entry.
	Sequence int

	// TermTags are tags for the headword. Unused for CC-CEDICT.
	TermTags string
}

// MarshalJSON implements [json.Marshaler]. Term bank rows are fixed-order
// arrays, not objects.
func (t *Term) MarshalJSON() ([]byte, error) {
	glosses := t.Glosses
	if glosses == nil {
		glosses = []string{}
	}

	// Use an encoder so that definition text is not HTML escaped.
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	err := enc.Encode([]any{
		t.Expression,
		t.Reading,
		t.DefinitionTags,
		t.Rules,
		t.Score,
		glosses,
		t.Sequence,
		t.TermTags,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding term: %w", err)
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}
