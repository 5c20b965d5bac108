/*
 * Configuration file parser for the radix50 tool.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package configparser reads the optional tool configuration file.
//
/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := 'dialect' ('pdp10' | 'pdp11') |
 *           'format' ('dec' | 'hex' | 'oct' | 'bin' | 'raw') |
 *           'logfile' <filename>
 */
package configparser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rcornwell/radix50/util/format"
)

// Settings holds the tool defaults read from the configuration file.
type Settings struct {
	Dialect string // Default dialect, "pdp10" or "pdp11".
	Format  string // Default output format.
	LogFile string // Log file name, empty for none.
}

// Defaults returns the settings used when no configuration is given.
func Defaults() *Settings {
	return &Settings{Dialect: "pdp11", Format: "dec"}
}

// LoadConfigFile reads settings from the named file. A missing file
// is not an error; the defaults come back unchanged.
func LoadConfigFile(name string) (*Settings, error) {
	file, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, err
	}
	defer file.Close()
	return parseConfig(file)
}

func parseConfig(file io.Reader) (*Settings, error) {
	settings := Defaults()
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected keyword and value", lineNumber)
		}

		value := fields[1]
		switch strings.ToLower(fields[0]) {
		case "dialect":
			value = strings.ToLower(value)
			if value != "pdp10" && value != "pdp11" {
				return nil, fmt.Errorf("line %d: unknown dialect: %s", lineNumber, value)
			}
			settings.Dialect = value
		case "format":
			value = strings.ToLower(value)
			if !format.Valid(value) {
				return nil, fmt.Errorf("line %d: unknown format: %s", lineNumber, value)
			}
			settings.Format = value
		case "logfile":
			settings.LogFile = value
		default:
			return nil, fmt.Errorf("line %d: unknown keyword: %s", lineNumber, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return settings, nil
}
