/*
 * Interactive command parser test cases.
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
	"testing"
)

func TestSessionEncode(t *testing.T) {
	session := NewSession("pdp11", "dec")
	words, err := session.Encode("THIS IS A TEST")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if words != "32329 30409 30401 805 31200" {
		t.Errorf("Encode = %q", words)
	}

	session.Format = "hex"
	words, err = session.Encode("THIS IS A TEST")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if words != "7e49 76c9 76c1 325 79e0" {
		t.Errorf("Encode = %q", words)
	}

	session.Dialect = "pdp10"
	session.Format = "dec"
	words, err = session.Encode("THIS IS A TEST")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if words != "3119342419 2970305215 3046400000" {
		t.Errorf("Encode = %q", words)
	}
}

func TestSessionDecode(t *testing.T) {
	session := NewSession("pdp11", "dec")
	text, err := session.Decode([]string{"32329", "0x76c9", "0o73301", "805", "0b111100111100000"})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if text != "THIS IS A TEST " {
		t.Errorf("Decode = %q", text)
	}

	session.Dialect = "pdp10"
	text, err = session.Decode([]string{"3119342419", "2970305215", "3046400000"})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if text != "THIS IS A TEST    " {
		t.Errorf("Decode = %q", text)
	}

	// Out of range for 16 bit words.
	session.Dialect = "pdp11"
	if _, err := session.Decode([]string{"65536"}); err == nil {
		t.Error("Decode(65536) should fail for 16 bit words")
	}
}

// A "raw" default format makes no sense on a console.
func TestSessionRawDefault(t *testing.T) {
	session := NewSession("pdp11", "raw")
	if session.Format != "dec" {
		t.Errorf("format = %q, want dec", session.Format)
	}
}

func TestProcessSet(t *testing.T) {
	session := NewSession("pdp11", "dec")

	quit, err := ProcessCommand("set dialect pdp10", session)
	if err != nil || quit {
		t.Fatalf("set dialect failed: %v", err)
	}
	if session.Dialect != "pdp10" {
		t.Errorf("dialect = %q, want pdp10", session.Dialect)
	}

	if _, err := ProcessCommand("set format oct", session); err != nil {
		t.Fatalf("set format failed: %v", err)
	}
	if session.Format != "oct" {
		t.Errorf("format = %q, want oct", session.Format)
	}

	if _, err := ProcessCommand("set dialect pdp8", session); err == nil {
		t.Error("set dialect pdp8 should fail")
	}
	if _, err := ProcessCommand("set format raw", session); err == nil {
		t.Error("set format raw should fail on the console")
	}

	// Unset restores the session defaults.
	if _, err := ProcessCommand("unset", session); err != nil {
		t.Fatalf("unset failed: %v", err)
	}
	if session.Dialect != "pdp11" || session.Format != "dec" {
		t.Errorf("after unset: dialect %q format %q", session.Dialect, session.Format)
	}
}

func TestProcessMatching(t *testing.T) {
	session := NewSession("pdp11", "dec")

	// Unique prefixes dispatch, short or unknown ones do not.
	if quit, err := ProcessCommand("q", session); err != nil || !quit {
		t.Errorf("q should quit: %v", err)
	}
	if quit, err := ProcessCommand("quit", session); err != nil || !quit {
		t.Errorf("quit should quit: %v", err)
	}
	if _, err := ProcessCommand("s", session); err == nil {
		t.Error("s is below the minimum match for set and show")
	}
	if _, err := ProcessCommand("frobnicate", session); err == nil {
		t.Error("unknown command should fail")
	}

	// Blank and comment lines do nothing.
	if _, err := ProcessCommand("", session); err != nil {
		t.Errorf("empty line: %v", err)
	}
	if _, err := ProcessCommand("   # comment", session); err != nil {
		t.Errorf("comment line: %v", err)
	}
}

func TestCompleteCmd(t *testing.T) {
	matches := CompleteCmd("")
	if len(matches) != len(cmdList) {
		t.Errorf("empty line completes to %v", matches)
	}

	if matches = CompleteCmd("enc"); !slices.Equal(matches, []string{"encode "}) {
		t.Errorf("enc completes to %v", matches)
	}

	if matches = CompleteCmd("set "); !slices.Equal(matches, []string{"set dialect ", "set format "}) {
		t.Errorf("set completes to %v", matches)
	}

	if matches = CompleteCmd("set f"); !slices.Equal(matches, []string{"set format "}) {
		t.Errorf("set f completes to %v", matches)
	}

	if matches = CompleteCmd("set dialect p"); !slices.Equal(matches, []string{"set dialect pdp10 ", "set dialect pdp11 "}) {
		t.Errorf("set dialect p completes to %v", matches)
	}

	// encode takes free text, no completion.
	if matches = CompleteCmd("encode AB"); matches != nil {
		t.Errorf("encode AB completes to %v", matches)
	}
}
