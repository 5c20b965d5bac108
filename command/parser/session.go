/*
 * Interactive session state.
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
	"github.com/rcornwell/radix50/radix50"
	"github.com/rcornwell/radix50/util/format"
)

// Session holds the dialect and output format the console commands
// operate with. set and unset adjust it, the codec itself stays
// stateless.
type Session struct {
	Dialect string // Current dialect, "pdp10" or "pdp11".
	Format  string // Current output format, a text format name.

	defaultDialect string
	defaultFormat  string
}

// NewSession creates a session with the given defaults. The console
// prints words as text, so a "raw" default falls back to "dec".
func NewSession(dialect string, formatName string) *Session {
	if formatName == "raw" {
		formatName = "dec"
	}
	return &Session{
		Dialect:        dialect,
		Format:         formatName,
		defaultDialect: dialect,
		defaultFormat:  formatName,
	}
}

func encodeText[W radix50.Word](d *radix50.Dialect[W], text string, formatName string) (string, error) {
	words, err := d.Encode(text)
	if err != nil {
		return "", err
	}
	return format.Words(words, formatName)
}

func decodeArgs[W radix50.Word](d *radix50.Dialect[W], args []string) (string, error) {
	words := make([]W, 0, len(args))
	for _, arg := range args {
		word, err := format.ParseWord[W](arg, d.WordBytes()*8)
		if err != nil {
			return "", err
		}
		words = append(words, word)
	}
	return d.Decode(words), nil
}

// Encode packs text with the session dialect and renders the words in
// the session format.
func (s *Session) Encode(text string) (string, error) {
	if s.Dialect == "pdp10" {
		return encodeText(radix50.PDP10, text, s.Format)
	}
	return encodeText(radix50.PDP11, text, s.Format)
}

// Decode parses word arguments with the session dialect and unpacks
// them to text.
func (s *Session) Decode(args []string) (string, error) {
	if s.Dialect == "pdp10" {
		return decodeArgs(radix50.PDP10, args)
	}
	return decodeArgs(radix50.PDP11, args)
}

// Alphabet returns the character set of the session dialect.
func (s *Session) Alphabet() string {
	if s.Dialect == "pdp10" {
		return radix50.PDP10.Alphabet()
	}
	return radix50.PDP11.Alphabet()
}
