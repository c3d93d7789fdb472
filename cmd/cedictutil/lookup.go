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

package main

import (
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict"
	"github.com/ianlewis/go-cedict/pinyin"
)

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Look up a word in a dictionary",
		ArgsUsage: "DICT WORD",
		Description: `Look up entries whose traditional or simplified form matches WORD
exactly. Pinyin is printed in diacritic form.`,
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}
			word := c.Args().Get(1)

			f, err := openDict(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, err)
			}
			defer f.Close()

			s, err := cedict.NewScanner(f)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, err)
			}

			tbl := table.New("Traditional", "Simplified", "Pinyin", "Definitions").WithWriter(c.App.Writer)
			found := 0
			for s.Scan() {
				e, err := s.Entry()
				if err != nil {
					return fmt.Errorf("%w: %w", ErrCedictutil, err)
				}
				if e.Traditional != word && e.Simplified != word {
					continue
				}
				found++
				tbl.AddRow(
					e.Traditional,
					e.Simplified,
					pinyin.Decode(pinyin.Normalize(e.Pinyin)),
					strings.Join(e.Definitions(), "; "),
				)
			}
			if err := s.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, err)
			}

			if found == 0 {
				return fmt.Errorf("%w: %q not found", ErrCedictutil, word)
			}

			tbl.Print()
			return nil
		},
	}
}
