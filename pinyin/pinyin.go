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
	"strings"

	"golang.org/x/text/unicode/norm"
)

// toneMarks are the combining diacritical marks for tones 1-4 (macron,
// acute, caron, grave). Tone 5 is the neutral tone and takes no mark.
var toneMarks = [...]rune{'̄', '́', '̌', '̀'}

// Decode converts numbered-tone pinyin to diacritic form. Each maximal run
// of letters (including 'ü', or "u:" which is folded to 'ü') followed by a
// single tone number 1-5 is converted; the tone number is removed and tones
// 1-4 place a diacritic on the syllable's tone vowel. Text that does not
// match this shape is passed through unchanged.
func Decode(s string) string {
	var b strings.Builder
	var run []rune

	flush := func() {
		if len(run) > 0 {
			b.WriteString(string(run))
			run = run[:0]
		}
	}

	for _, c := range s {
		switch {
		case (c >= 'a' && c <= 'z') || c == 'ü':
			run = append(run, c)
		case c == ':' && len(run) > 0 && run[len(run)-1] == 'u':
			run[len(run)-1] = 'ü'
		case c >= '1' && c <= '5' && len(run) > 0:
			b.WriteString(mark(run, int(c-'0')))
			run = run[:0]
		default:
			flush()
			b.WriteRune(c)
		}
	}
	flush()

	return norm.NFC.String(b.String())
}

// mark applies the given tone to the syllable's tone vowel and removes the
// tone number. Syllables without a vowel keep the tone number.
func mark(syllable []rune, tone int) string {
	if tone == 5 {
		return string(syllable)
	}

	i := toneVowel(syllable)
	if i < 0 {
		return string(syllable) + string(rune('0'+tone))
	}

	return string(syllable[:i+1]) + string(toneMarks[tone-1]) + string(syllable[i+1:])
}

// toneVowel returns the index of the vowel that carries the tone mark, or -1
// if the syllable has no vowel. The mark is placed on 'a' if present, then
// 'e', then the 'o' of an "ou" sequence, and otherwise on the last of 'i',
// 'o', 'u', or 'ü'.
func toneVowel(syllable []rune) int {
	e, ou, last := -1, -1, -1
	for i, c := range syllable {
		switch c {
		case 'a':
			return i
		case 'e':
			if e < 0 {
				e = i
			}
		case 'o':
			if ou < 0 && i+1 < len(syllable) && syllable[i+1] == 'u' {
				ou = i
			}
			last = i
		case 'i', 'u', 'ü':
			last = i
		}
	}
	if e >= 0 {
		return e
	}
	if ou >= 0 {
		return ou
	}
	return last
}
