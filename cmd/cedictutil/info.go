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
	"strconv"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict"
)

// infoKeys are the header pragma keys printed by the info command, in
// display order.
var infoKeys = []string{
	"version",
	"subversion",
	"format",
	"charset",
	"entries",
	"publisher",
	"license",
	"date",
	"time",
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print dictionary metadata",
		ArgsUsage: "DICT",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}

			f, err := openDict(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, err)
			}
			defer f.Close()

			s, err := cedict.NewScanner(f)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, err)
			}

			lines := 0
			for s.Scan() {
				lines++
			}
			if err := s.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, err)
			}

			tbl := table.New("Key", "Value").WithWriter(c.App.Writer)
			for _, key := range infoKeys {
				if v := s.Value(key); v != "" {
					tbl.AddRow(key, v)
				}
			}
			tbl.AddRow("entry lines", strconv.Itoa(lines))
			tbl.Print()

			return nil
		},
	}
}
