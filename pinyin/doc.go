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

// Package pinyin implements conversion of numbered-tone pinyin to diacritic
// form.
//
// CC-CEDICT writes pronunciation as romanized syllables with a trailing tone
// number 1-5 ("zhong1 wen2") where 5 is the neutral tone. The 'ü' vowel is
// written as "u:". Decode converts this notation to the standard diacritic
// form ("zhōng wén").
package pinyin
