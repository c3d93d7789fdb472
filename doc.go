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

// Package cedict implements a library for reading CC-CEDICT Chinese-English
// dictionaries in pure Go.
//
// CC-CEDICT dictionaries are distributed as a single UTF-8 text file. The
// file starts with comment lines ('#') including pragma comments ('#!') that
// contain metadata about the dictionary. Each remaining line is a dictionary
// entry of the form:
//
//	traditional simplified [pinyin] /definition 1/definition 2/.../
//
// Pinyin pronunciation is written with trailing tone numbers (e.g.
// "zhong1 wen2"). Definitions may include classifier (measure word)
// annotations such as "CL:個|个[ge4]".
//
// More info on the dictionary format can be found at this URL:
// https://cc-cedict.org/wiki/format:syntax
package cedict
