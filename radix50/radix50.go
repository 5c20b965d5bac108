/*
 * RADIX-50 encoding and decoding.
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

// Package radix50 packs text into machine words using the DEC
// RADIX-50 base-40 encoding. Two dialects are provided: PDP11 packs
// three characters into each 16 bit word, PDP10 packs six characters
// into each 32 bit word. Both are safe for concurrent use; nothing is
// mutated after package initialization.
package radix50

import (
	"fmt"
	"strings"
)

const radix = 40

// Word constrains the packed word types of the two dialects.
type Word interface {
	~uint16 | ~uint32
}

// IllegalCharError reports a character that is not in the dialect
// character set. Pos is the 1-based position of the character in the
// original input string, counted before any chunking.
type IllegalCharError struct {
	Char rune
	Pos  int
}

func (e *IllegalCharError) Error() string {
	return fmt.Sprintf("illegal character %q (%d) at position %d", e.Char, e.Char, e.Pos)
}

// Dialect binds the base-40 packing arithmetic to one character set
// and word width.
type Dialect[W Word] struct {
	name      string
	chars     int // Characters packed per word.
	wordBytes int
	charset   [40]byte
	inverse   [128]int8 // ASCII code to digit, -1 if not in set.
}

// The two standard dialects.
var (
	PDP10 = newDialect[uint32]("pdp10", pdp10Charset, 6, 4)
	PDP11 = newDialect[uint16]("pdp11", pdp11Charset, 3, 2)
)

func newDialect[W Word](name string, charset [40]byte, chars int, wordBytes int) *Dialect[W] {
	d := &Dialect[W]{name: name, chars: chars, wordBytes: wordBytes, charset: charset}
	for i := range d.inverse {
		d.inverse[i] = -1
	}
	for i, c := range charset {
		d.inverse[c] = int8(i)
	}
	return d
}

// Name returns the dialect name, "pdp10" or "pdp11".
func (d *Dialect[W]) Name() string {
	return d.name
}

// Chars returns the number of characters packed into one word.
func (d *Dialect[W]) Chars() int {
	return d.chars
}

// WordBytes returns the size of one serialized word in bytes.
func (d *Dialect[W]) WordBytes() int {
	return d.wordBytes
}

// Alphabet returns the 40 character set in digit order.
func (d *Dialect[W]) Alphabet() string {
	return string(d.charset[:])
}

// Encode packs text into a sequence of words, Chars characters per
// word. The final word is padded with trailing spaces; the empty
// string encodes to an empty sequence. Encoding stops at the first
// character not in the character set, with the error holding its
// 1-based position in text.
func (d *Dialect[W]) Encode(text string) ([]W, error) {
	chars := []rune(text)
	words := make([]W, 0, (len(chars)+d.chars-1)/d.chars)
	for i := 0; i < len(chars); i += d.chars {
		chunk := chars[i:min(i+d.chars, len(chars))]
		word, err := d.pack(chunk, i)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

// EncodeWord packs a single word. Input shorter than Chars characters
// is padded with trailing spaces, so the empty string encodes to 0.
// Characters past Chars are ignored.
func (d *Dialect[W]) EncodeWord(text string) (W, error) {
	return d.pack([]rune(text), 0)
}

// Pack one chunk of up to Chars characters. offset is the number of
// characters that precede this chunk in the original string, so error
// positions come out 1-based in the full input.
func (d *Dialect[W]) pack(chunk []rune, offset int) (W, error) {
	var word W
	for i := 0; i < d.chars; i++ {
		c := ' '
		if i < len(chunk) {
			c = chunk[i]
		}
		digit, err := d.digit(c, offset+i+1)
		if err != nil {
			return 0, err
		}
		word = word*radix + W(digit)
	}
	return word, nil
}

// Look up the digit value of one character. pos is recorded in the
// error exactly as given, never adjusted here.
func (d *Dialect[W]) digit(c rune, pos int) (int8, error) {
	if c > 0x7f || c < 0 || d.inverse[c] < 0 {
		return 0, &IllegalCharError{Char: c, Pos: pos}
	}
	return d.inverse[c], nil
}

// Decode unpacks each word in order and concatenates the results,
// Chars characters per word. Total over any input.
func (d *Dialect[W]) Decode(words []W) string {
	var text strings.Builder
	text.Grow(len(words) * d.chars)
	for _, word := range words {
		text.WriteString(d.DecodeWord(word))
	}
	return text.String()
}

// DecodeWord unpacks one word into its Chars characters. The function
// is total: a value at or above 40^Chars has its high bits discarded
// by the modular arithmetic rather than rejected, matching what the
// hardware-era unpackers did. Output characters always come from the
// character set table, so the result is plain ASCII.
func (d *Dialect[W]) DecodeWord(word W) string {
	text := make([]byte, d.chars)
	for i := d.chars - 1; i >= 0; i-- {
		text[i] = d.charset[word%radix]
		word /= radix
	}
	return string(text)
}
