/*
 * Interactive console commands.
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

package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rcornwell/radix50/util/format"
)

var cmdList = []cmd{
	{Name: "charset", Min: 2, Process: charset},
	{Name: "decode", Min: 1, Process: decode},
	{Name: "encode", Min: 1, Process: encode},
	{Name: "help", Min: 1, Process: help},
	{Name: "quit", Min: 1, Process: quit},
	{Name: "set", Min: 3, Process: set, Complete: setComplete},
	{Name: "show", Min: 2, Process: show, Complete: setComplete},
	{Name: "unset", Min: 4, Process: unset, Complete: setComplete},
}

// Console text formats. "raw" is only useful when stdout is a pipe,
// so the console does not offer it.
var textFormats = []string{"dec", "hex", "oct", "bin"}

// Handle encode command.
func encode(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Encode")

	text := line.rest()
	if text == "" {
		return false, errors.New("nothing to encode")
	}
	words, err := session.Encode(text)
	if err != nil {
		return false, err
	}
	fmt.Println(words)
	return false, nil
}

// Handle decode command.
func decode(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Decode")

	args := line.getArgs()
	if len(args) == 0 {
		return false, errors.New("no words to decode")
	}
	text, err := session.Decode(args)
	if err != nil {
		return false, err
	}
	fmt.Printf("%q\n", text)
	return false, nil
}

// Handle charset command, dump the current character set.
func charset(_ *cmdLine, session *Session) (bool, error) {
	fmt.Print(format.CharsetTable(session.Alphabet()))
	return false, nil
}

// Handle set commands.
func set(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Set")

	name := line.getWord()
	value := line.getWord()
	switch name {
	case "dialect":
		if value != "pdp10" && value != "pdp11" {
			return false, errors.New("dialect must be pdp10 or pdp11")
		}
		session.Dialect = value
	case "format":
		if value == "raw" || !format.Valid(value) {
			return false, errors.New("format must be one of dec, hex, oct, bin")
		}
		session.Format = value
	default:
		return false, errors.New("set what? dialect or format")
	}
	return false, nil
}

// Handle unset command, restore defaults.
func unset(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Unset")

	switch line.getWord() {
	case "dialect":
		session.Dialect = session.defaultDialect
	case "format":
		session.Format = session.defaultFormat
	case "":
		session.Dialect = session.defaultDialect
		session.Format = session.defaultFormat
	default:
		return false, errors.New("unset what? dialect or format")
	}
	return false, nil
}

// Handle show command.
func show(line *cmdLine, session *Session) (bool, error) {
	switch line.getWord() {
	case "dialect":
		fmt.Println("dialect " + session.Dialect)
	case "format":
		fmt.Println("format " + session.Format)
	case "":
		fmt.Println("dialect " + session.Dialect)
		fmt.Println("format " + session.Format)
	default:
		return false, errors.New("show what? dialect or format")
	}
	return false, nil
}

// Handle help command.
func help(_ *cmdLine, _ *Session) (bool, error) {
	fmt.Print(`Commands:
  encode <text>             Pack text into RADIX-50 words.
  decode <word>...          Unpack words, decimal or 0x/0o/0b.
  charset                   Dump the character set table.
  set dialect pdp10|pdp11   Select the dialect.
  set format dec|hex|oct|bin
                            Select the output format.
  unset [dialect|format]    Restore defaults.
  show [dialect|format]     Show current settings.
  quit                      Leave the console.
`)
	return false, nil
}

// Handle quit command.
func quit(_ *cmdLine, _ *Session) (bool, error) {
	return true, nil
}
