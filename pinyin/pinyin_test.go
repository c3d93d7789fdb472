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

package pinyin_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cedict/pinyin"
)

// TestDecode tests Decode.
func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		syllable string

		expected string
	}{
		{
			name:     "tone 1 macron",
			syllable: "san1",
			expected: "sān",
		},
		{
			name:     "tone 2 acute",
			syllable: "wen2",
			expected: "wén",
		},
		{
			name:     "tone 3 caron",
			syllable: "hao3",
			expected: "hǎo",
		},
		{
			name:     "tone 4 grave",
			syllable: "ke4",
			expected: "kè",
		},
		{
			name:     "tone 5 neutral",
			syllable: "ma5",
			expected: "ma",
		},
		{
			name:     "tone 5 no vowel",
			syllable: "r5",
			expected: "r",
		},
		{
			name:     "a wins over other vowels",
			syllable: "lian2",
			expected: "lián",
		},
		{
			name:     "e wins without a",
			syllable: "wei4",
			expected: "wèi",
		},
		{
			name:     "e wins over u-umlaut",
			syllable: "lüe4",
			expected: "lüè",
		},
		{
			name:     "o of ou",
			syllable: "dou4",
			expected: "dòu",
		},
		{
			name:     "last vowel of iu",
			syllable: "liu2",
			expected: "liú",
		},
		{
			name:     "last vowel of ui",
			syllable: "shui3",
			expected: "shuǐ",
		},
		{
			name:     "u-umlaut digraph",
			syllable: "lu:4",
			expected: "lǜ",
		},
		{
			name:     "u-umlaut tone 3",
			syllable: "nü3",
			expected: "nǚ",
		},
		{
			name:     "multiple syllables",
			syllable: "zhong1 wen2",
			expected: "zhōng wén",
		},
		{
			name:     "bracketed reading",
			syllable: "[ni3 hao3]",
			expected: "[nǐ hǎo]",
		},
		{
			name:     "no vowel keeps tone number",
			syllable: "hm4",
			expected: "hm4",
		},
		{
			name:     "no tone number",
			syllable: "xyz",
			expected: "xyz",
		},
		{
			name:     "tone number out of range",
			syllable: "ke6",
			expected: "ke6",
		},
		{
			name:     "empty",
			syllable: "",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := pinyin.Decode(test.syllable)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Decode(%q) (-want, +got):\n%s", test.syllable, diff)
			}
		})
	}
}

// TestNormalize tests Normalize.
func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		syllable string

		expected string
	}{
		{
			name:     "lowercase",
			syllable: "Zhong1 Guo2",
			expected: "zhong1 guo2",
		},
		{
			name:     "u-umlaut digraph",
			syllable: "lu:4",
			expected: "lü4",
		},
		{
			name:     "uppercase u-umlaut digraph",
			syllable: "LU:4",
			expected: "lü4",
		},
		{
			name:     "tone number kept",
			syllable: "nu:3 er2",
			expected: "nü3 er2",
		},
		{
			name:     "trailing u",
			syllable: "liu",
			expected: "liu",
		},
		{
			name:     "colon not after u",
			syllable: "a:b",
			expected: "a:b",
		},
		{
			name:     "empty",
			syllable: "",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := pinyin.Normalize(test.syllable)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Normalize(%q) (-want, +got):\n%s", test.syllable, diff)
			}
		})
	}
}
