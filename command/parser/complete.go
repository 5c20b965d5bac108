/*
 * Command line completion for the interactive console.
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
	"slices"
	"strings"
	"unicode"
)

// Called to complete a command line, during line editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	// Command is complete, let it complete its arguments.
	if !line.isEOL() || strings.HasSuffix(commandLine, " ") {
		match := matchList(name)
		if len(match) != 1 {
			return nil
		}

		if match[0].Complete != nil {
			return match[0].Complete(&line)
		}
		return nil
	}

	// Try and match one command.
	var matches []string
	for _, m := range cmdList {
		if strings.HasPrefix(m.Name, name) {
			matches = append(matches, m.Name+" ")
		}
	}
	slices.Sort(matches)
	return matches
}

// Complete the partial word at the current position from a list of
// keywords.
func (line *cmdLine) matchKeyword(keywords []string) []string {
	line.skipSpace()
	leading := line.line[:line.pos]

	partial := ""
	for !line.isEOL() {
		by := line.getCurrent()
		if unicode.IsSpace(rune(by)) {
			break
		}
		partial += string(by)
	}

	var matches []string
	for _, keyword := range keywords {
		if strings.HasPrefix(keyword, strings.ToLower(partial)) {
			matches = append(matches, leading+keyword+" ")
		}
	}
	return matches
}

// Complete set, unset and show arguments, a setting name then its
// values for set.
func setComplete(line *cmdLine) []string {
	pos := line.pos
	name := line.getWord()
	// Only complete values once a separator follows the name.
	followed := line.pos > 0 && line.pos <= len(line.line) &&
		unicode.IsSpace(rune(line.line[line.pos-1]))
	switch {
	case name == "dialect" && followed:
		return line.matchKeyword([]string{"pdp10", "pdp11"})
	case name == "format" && followed:
		return line.matchKeyword(textFormats)
	}
	line.pos = pos
	return line.matchKeyword([]string{"dialect", "format"})
}
