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
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict/yomitan"
)

// dateRegexp matches the release date part of the 'date' header pragma
// (e.g. "2024-09-13T06:34:27Z").
var dateRegexp = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a dictionary to a Yomitan archive",
		ArgsUsage: "DICT",
		Description: `Convert a CC-CEDICT dictionary file to a Yomitan dictionary archive.
The archive is named after the dictionary's release date.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "separate",
				Usage: "use new bullet points as the separator instead of commas",
			},
			&cli.BoolFlag{
				Name:  "pinyin-numbers",
				Usage: "use tone numbers, for example 课 [ke4] instead of 课 [kè]",
			},
			&cli.StringFlag{
				Name:    "output-directory",
				Usage:   "write the archive to `DIR`",
				Aliases: []string{"o"},
				Value:   ".",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}

			opts := &yomitan.Options{
				NumberedPinyin:      c.Bool("pinyin-numbers"),
				SeparateClassifiers: c.Bool("separate"),
			}

			f, err := openDict(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, err)
			}
			defer f.Close()

			conv, err := yomitan.NewConverter(f, opts)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, err)
			}

			date := dateRegexp.FindString(conv.Value("date"))
			if date == "" {
				return fmt.Errorf("%w: dictionary has no date pragma", ErrCedictutil)
			}

			outPath := filepath.Join(c.String("output-directory"), archiveName(date, opts))
			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("%w: creating %q: %w", ErrCedictutil, outPath, err)
			}

			if err := writeArchive(out, conv, date); err != nil {
				out.Close()
				// No partial archive is valid. Don't leave one behind.
				os.Remove(outPath)
				return fmt.Errorf("%w: converting %q: %w", ErrCedictutil, c.Args().Get(0), err)
			}
			if err := out.Close(); err != nil {
				os.Remove(outPath)
				return fmt.Errorf("%w: writing %q: %w", ErrCedictutil, outPath, err)
			}

			fmt.Fprintln(c.App.Writer, outPath)
			return nil
		},
	}
}

// archiveName returns the output archive file name for a release date and
// conversion options.
func archiveName(date string, opts *yomitan.Options) string {
	name := "CC-CEDICT-" + date
	if opts.SeparateClassifiers {
		name += "-bullets"
	}
	if opts.NumberedPinyin {
		name += "-numberedpinyin"
	}
	return name + ".zip"
}

func writeArchive(out io.Writer, conv *yomitan.Converter, date string) error {
	w := yomitan.NewWriter(out)
	if err := w.WriteIndex(yomitan.NewIndex(date)); err != nil {
		return err
	}
	for conv.Scan() {
		if err := w.WriteBank(conv.Bank()); err != nil {
			return err
		}
	}
	if err := conv.Err(); err != nil {
		return err
	}
	return w.Close()
}
