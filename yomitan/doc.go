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

// Package yomitan implements conversion of CC-CEDICT dictionaries to the
// Yomitan (formerly Yomichan) dictionary format.
//
// A Yomitan dictionary is a zip archive containing:
//  1. An index.json file with metadata about the dictionary.
//  2. One or more term_bank_N.json files, each a JSON array of up to 4000
//     term rows. A term row is a fixed-order array of headword, reading,
//     definition tags, deinflection rules, score, glosses, sequence number,
//     and term tags.
//
// More info on the dictionary format can be found at this URL:
// https://github.com/yomidevs/yomitan/blob/master/docs/making-yomitan-dictionaries.md
package yomitan
