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
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
)

// Writer writes a Yomitan dictionary as a zip archive of JSON files.
type Writer struct {
	z     *zip.Writer
	banks int
}

// NewWriter returns a new Writer writing the archive to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		z: zip.NewWriter(w),
	}
}

// WriteIndex writes the dictionary metadata as index.json.
func (w *Writer) WriteIndex(index *Index) error {
	return w.writeJSON("index.json", index)
}

// WriteBank writes the next term bank. Banks are named term_bank_1.json,
// term_bank_2.json, etc. in write order.
func (w *Writer) WriteBank(terms []*Term) error {
	w.banks++
	return w.writeJSON(fmt.Sprintf("term_bank_%d.json", w.banks), terms)
}

func (w *Writer) writeJSON(name string, v any) error {
	f, err := w.z.Create(name)
	if err != nil {
		return fmt.Errorf("creating %q: %w", name, err)
	}

	enc := json.NewEncoder(f)
	// Definitions are plain text. Keep them byte for byte as they appear in
	// the source rather than escaping HTML characters.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing %q: %w", name, err)
	}
	return nil
}

// Close finishes writing the archive. It does not close the underlying
// writer.
func (w *Writer) Close() error {
	if err := w.z.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}
