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

// Package testutil provides CC-CEDICT test fixtures.
package testutil

import (
	"fmt"
	"strings"
)

const header = `# CC-CEDICT
# Community maintained free Chinese-English dictionary.
#
# Published by MDBG
#
# License:
# Creative Commons Attribution-ShareAlike 4.0 International License
# https://creativecommons.org/licenses/by-sa/4.0/
#
#! version=1
#! subversion=0
#! format=ts
#! charset=UTF-8
#! entries=%d
#! publisher=MDBG
#! license=https://creativecommons.org/licenses/by-sa/4.0/
#! date=%s
#! time=1694585667
`

// MakeDict builds CC-CEDICT dictionary text with a realistic header from a
// release date and a list of entry lines.
func MakeDict(date string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, header, len(lines), date)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
