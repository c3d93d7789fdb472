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

package pinyin

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Normalizer will perform pinyin normalization on the input. It lowercases
// the input and replaces the "u:" digraph with 'ü'. Tone numbers are left in
// place.
type Normalizer struct{}

// Transform implements [transform.Transformer.Transform].
func (n *Normalizer) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		out := unicode.ToLower(c)
		read := size
		if out == 'u' {
			// A ':' after 'u' folds the pair into 'ü'.
			if nSrc+size == len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
			} else if src[nSrc+size] == ':' {
				out = 'ü'
				read++
			}
		}

		if nDst+utf8.RuneLen(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], out)
		nSrc += read
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (n *Normalizer) Reset() {
	*n = Normalizer{}
}

// Normalize lowercases s and replaces "u:" with 'ü'.
func Normalize(s string) string {
	out, _, err := transform.String(&Normalizer{}, s)
	if err != nil {
		// The transformer only fails on short buffers, which
		// transform.String never produces.
		return s
	}
	return out
}
