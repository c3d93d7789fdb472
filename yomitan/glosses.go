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
	"regexp"
	"strings"
)

// classifierRegexp matches an embedded classifier annotation such as
// "/CL:個|个[ge4]/". Matches are non-overlapping so each slash is consumed
// at most once.
var classifierRegexp = regexp.MustCompile(`/CL:.+?/`)

// normalizeClassifier fixes the punctuation of a classifier annotation: one
// space after each comma and a space after each colon.
func normalizeClassifier(s string) string {
	// Some entries are missing the space after a comma. Remove the space
	// first to avoid doubling it up.
	s = strings.ReplaceAll(s, ", ", ",")
	s = strings.ReplaceAll(s, ",", ", ")
	s = strings.ReplaceAll(s, ":", ": ")
	return s
}

// glosses converts an entry's raw definition text into its ordered list of
// glosses. In separate mode every definition and classifier annotation
// becomes its own gloss. Otherwise definitions are joined with commas and a
// classifier annotation becomes a parenthesized suffix on the definition
// preceding it.
func glosses(meaning string, separate bool) []string {
	if separate {
		meaning = classifierRegexp.ReplaceAllStringFunc(meaning, normalizeClassifier)
		meaning = strings.ReplaceAll(meaning, "/", "\n")
	} else {
		meaning = classifierRegexp.ReplaceAllStringFunc(meaning, func(m string) string {
			m = normalizeClassifier(m)
			return " (" + strings.Trim(m, "/") + ")\n"
		})
		meaning = strings.ReplaceAll(meaning, "/", ", ")
	}
	return strings.Split(meaning, "\n")
}
