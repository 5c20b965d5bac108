/*
 * Formatting and parsing test cases.
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
package format

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestWords(t *testing.T) {
	words := []uint16{32329, 30409, 30401, 805, 31200}
	tests := []struct {
		name string
		text string
	}{
		{"dec", "32329 30409 30401 805 31200"},
		{"hex", "7e49 76c9 76c1 325 79e0"},
		{"oct", "77111 73311 73301 1445 74740"},
		{"bin", "111111001001001 111011011001001 111011011000001 1100100101 111100111100000"},
	}
	for _, test := range tests {
		text, err := Words(words, test.name)
		if err != nil {
			t.Errorf("Words(%s) returned error: %v", test.name, err)
			continue
		}
		if text != test.text {
			t.Errorf("Words(%s) = %q, want %q", test.name, text, test.text)
		}
	}

	if _, err := Words(words, "raw"); err == nil {
		t.Error("Words(raw) should fail, raw is not a text format")
	}
	if _, err := Words(words, "roman"); err == nil {
		t.Error("Words(roman) should fail")
	}
}

func TestValid(t *testing.T) {
	for _, name := range []string{"dec", "hex", "oct", "bin", "raw"} {
		if !Valid(name) {
			t.Errorf("Valid(%s) = false", name)
		}
	}
	if Valid("text") {
		t.Error("Valid(text) = true")
	}
}

func TestRawBytes(t *testing.T) {
	got := RawBytes([]uint16{0x7e49, 0x0325}, 2)
	if !bytes.Equal(got, []byte{0x7e, 0x49, 0x03, 0x25}) {
		t.Errorf("RawBytes = %x", got)
	}

	got = RawBytes([]uint32{0xb9ed6353}, 4)
	if !bytes.Equal(got, []byte{0xb9, 0xed, 0x63, 0x53}) {
		t.Errorf("RawBytes = %x", got)
	}
}

func TestWordsFromBytes(t *testing.T) {
	words16, err := WordsFromBytes[uint16]([]byte{0x7e, 0x49, 0x03, 0x25}, 2)
	if err != nil {
		t.Fatalf("WordsFromBytes returned error: %v", err)
	}
	if !slices.Equal(words16, []uint16{0x7e49, 0x0325}) {
		t.Errorf("WordsFromBytes = %v", words16)
	}

	words32, err := WordsFromBytes[uint32]([]byte{0xb9, 0xed, 0x63, 0x53}, 4)
	if err != nil {
		t.Fatalf("WordsFromBytes returned error: %v", err)
	}
	if !slices.Equal(words32, []uint32{0xb9ed6353}) {
		t.Errorf("WordsFromBytes = %v", words32)
	}

	if _, err := WordsFromBytes[uint16]([]byte{1, 2, 3}, 2); err == nil {
		t.Error("odd length stream should fail for 2 byte words")
	}
}

func TestParseWord(t *testing.T) {
	// All four spellings of the same value.
	for _, arg := range []string{"123", "0x7b", "0o173", "0b1111011"} {
		word, err := ParseWord[uint16](arg, 16)
		if err != nil {
			t.Errorf("ParseWord(%q) returned error: %v", arg, err)
			continue
		}
		if word != 123 {
			t.Errorf("ParseWord(%q) = %d, want 123", arg, word)
		}
	}

	// Whole word range is accepted, decode is total.
	if word, err := ParseWord[uint16]("65535", 16); err != nil || word != 65535 {
		t.Errorf("ParseWord(65535) = %d, %v", word, err)
	}
	if word, err := ParseWord[uint32]("0xffffffff", 32); err != nil || word != 0xffffffff {
		t.Errorf("ParseWord(0xffffffff) = %d, %v", word, err)
	}

	for _, arg := range []string{"65536", "-1", "0xg", "word", ""} {
		if _, err := ParseWord[uint16](arg, 16); err == nil {
			t.Errorf("ParseWord(%q) should fail", arg)
		}
	}
}

func TestCharsetTable(t *testing.T) {
	table := CharsetTable(" AB")
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("table has %d lines, want 5", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Char") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "space") {
		t.Errorf("space row = %q", lines[2])
	}
	if !strings.Contains(lines[3], "A") || !strings.Contains(lines[3], "0x01") {
		t.Errorf("row for A = %q", lines[3])
	}
	if !strings.Contains(lines[4], "0x02") || !strings.Contains(lines[4], "000010") {
		t.Errorf("row for B = %q", lines[4])
	}
}
