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
	"fmt"
	"io"
	"regexp"

	"github.com/ianlewis/go-cedict"
	"github.com/ianlewis/go-cedict/pinyin"
)

// DefaultBankSize is the maximum number of terms in a single term bank.
const DefaultBankSize = 4000

// termScore is the score given to every CC-CEDICT term.
const termScore = 2

// readingRegexp matches bracketed pinyin spans anywhere in an entry line.
// This includes the entry's pronunciation as well as classifier readings
// embedded in the definitions.
var readingRegexp = regexp.MustCompile(`\[[^\]]+\]`)

// Options are options for converting a dictionary.
type Options struct {
	// NumberedPinyin keeps pinyin in numbered-tone form instead of
	// converting it to diacritic form.
	NumberedPinyin bool

	// SeparateClassifiers emits classifier annotations as standalone
	// glosses instead of parenthesized suffixes on the preceding
	// definition.
	SeparateClassifiers bool

	// BankSize is the maximum number of terms per term bank. Values less
	// than one use DefaultBankSize.
	BankSize int
}

// DefaultOptions is the default options for a Converter.
var DefaultOptions = &Options{
	BankSize: DefaultBankSize,
}

// Converter converts a CC-CEDICT dictionary into Yomitan term banks. Terms
// are produced in source order, one per distinct character form, and each
// bank holds at most BankSize terms.
type Converter struct {
	s    *cedict.Scanner
	opts Options

	buf  []*Term
	bank []*Term
	done bool
	err  error
}

// NewConverter returns a new Converter reading a CC-CEDICT dictionary from
// r.
func NewConverter(r io.Reader, options *Options) (*Converter, error) {
	if options == nil {
		options = DefaultOptions
	}
	opts := *options
	if opts.BankSize < 1 {
		opts.BankSize = DefaultBankSize
	}

	s, err := cedict.NewScanner(r)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary header: %w", err)
	}

	return &Converter{
		s:    s,
		opts: opts,
	}, nil
}

// Value returns the value of the given source header pragma key (e.g.
// "date").
func (c *Converter) Value(key string) string {
	return c.s.Value(key)
}

// Scan advances the converter to the next term bank. It returns false when
// the source is exhausted or an error occurs. A final partial bank is
// produced; an empty bank is not.
func (c *Converter) Scan() bool {
	if c.err != nil {
		return false
	}

	for !c.done && len(c.buf) < c.opts.BankSize {
		if !c.s.Scan() {
			c.done = true
			if err := c.s.Err(); err != nil {
				c.err = fmt.Errorf("reading dictionary: %w", err)
				return false
			}
			break
		}
		if err := c.convert(c.s.Text()); err != nil {
			c.err = fmt.Errorf("entry %d: %w", c.s.Pos(), err)
			return false
		}
	}

	if len(c.buf) == 0 {
		return false
	}

	// Banks hold exactly BankSize terms. An entry's traditional/simplified
	// pair may be split across a bank boundary; the pair stays adjacent in
	// the concatenated term sequence.
	n := min(c.opts.BankSize, len(c.buf))
	c.bank = c.buf[:n:n]
	c.buf = c.buf[n:]
	return true
}

// Bank returns the current term bank.
func (c *Converter) Bank() []*Term {
	return c.bank
}

// Err returns the first error encountered.
func (c *Converter) Err() error {
	return c.err
}

// convert converts a single entry line, appending one term per distinct
// character form. Pinyin decoding is applied to the whole line before
// parsing so that classifier readings in the definitions are decoded along
// with the pronunciation.
func (c *Converter) convert(line string) error {
	line = readingRegexp.ReplaceAllStringFunc(line, pinyin.Normalize)
	if !c.opts.NumberedPinyin {
		line = readingRegexp.ReplaceAllStringFunc(line, pinyin.Decode)
	}

	e, err := cedict.ParseEntry(line)
	if err != nil {
		return err
	}

	g := glosses(e.Meaning, c.opts.SeparateClassifiers)
	for _, form := range e.Forms() {
		c.buf = append(c.buf, &Term{
			Expression: form,
			Reading:    e.Pinyin,
			Score:      termScore,
			Glosses:    g,
			Sequence:   c.s.Pos(),
		})
	}
	return nil
}
