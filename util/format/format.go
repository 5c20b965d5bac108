/*
 * Output formatting and word parsing for RADIX-50 words.
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

// Package format renders packed words for output and parses word
// arguments. Words serialize big endian, two bytes per 16 bit word
// and four per 32 bit word.
package format

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/rcornwell/radix50/radix50"
)

// Output format names accepted by the tool, with the numeric base
// each one renders in. "raw" is the binary byte stream and has no
// base.
var bases = map[string]int{
	"dec": 10,
	"hex": 16,
	"oct": 8,
	"bin": 2,
	"raw": 0,
}

// Valid reports whether name is a known output format.
func Valid(name string) bool {
	_, ok := bases[name]
	return ok
}

// Words renders a word sequence as space separated numbers in the
// named format. "raw" output is not text; use RawBytes for it.
func Words[W radix50.Word](words []W, name string) (string, error) {
	base, ok := bases[name]
	if !ok || base == 0 {
		return "", fmt.Errorf("unknown output format: %s", name)
	}
	var str strings.Builder
	for i, word := range words {
		if i != 0 {
			str.WriteByte(' ')
		}
		str.WriteString(strconv.FormatUint(uint64(word), base))
	}
	return str.String(), nil
}

// RawBytes serializes words as a big endian byte stream. size is the
// word size in bytes, 2 or 4. High bits beyond the 40^N range are
// emitted as is.
func RawBytes[W radix50.Word](words []W, size int) []byte {
	buf := make([]byte, 0, len(words)*size)
	for _, word := range words {
		if size == 2 {
			buf = binary.BigEndian.AppendUint16(buf, uint16(word))
		} else {
			buf = binary.BigEndian.AppendUint32(buf, uint32(word))
		}
	}
	return buf
}

// WordsFromBytes reassembles a big endian byte stream into words of
// the given size in bytes.
func WordsFromBytes[W radix50.Word](data []byte, size int) ([]W, error) {
	if len(data)%size != 0 {
		return nil, fmt.Errorf("input is %d bytes, not a multiple of the %d byte word size", len(data), size)
	}
	words := make([]W, 0, len(data)/size)
	for i := 0; i < len(data); i += size {
		if size == 2 {
			words = append(words, W(binary.BigEndian.Uint16(data[i:])))
		} else {
			words = append(words, W(binary.BigEndian.Uint32(data[i:])))
		}
	}
	return words, nil
}

// ParseWord parses one word argument. Accepts bare decimal or a 0x,
// 0o or 0b prefix, range checked against the dialect word width in
// bits. 123, 0x7b, 0o173 and 0b1111011 all parse to the same word.
func ParseWord[W radix50.Word](arg string, bits int) (W, error) {
	base := 10
	digits := arg
	switch {
	case strings.HasPrefix(arg, "0x"), strings.HasPrefix(arg, "0X"):
		base, digits = 16, arg[2:]
	case strings.HasPrefix(arg, "0o"), strings.HasPrefix(arg, "0O"):
		base, digits = 8, arg[2:]
	case strings.HasPrefix(arg, "0b"), strings.HasPrefix(arg, "0B"):
		base, digits = 2, arg[2:]
	}
	value, err := strconv.ParseUint(digits, base, bits)
	if err != nil {
		return 0, fmt.Errorf("couldn't parse as %d bit word: %s", bits, arg)
	}
	return W(value), nil
}

// CharsetTable renders a dialect character set as a table of each
// character with its digit value in decimal, hex, octal and binary.
func CharsetTable(alphabet string) string {
	var str strings.Builder
	header := fmt.Sprintf("%-5s %3s %4s %4s %6s", "Char", "Dec", "Hex", "Oct", "Binary")
	str.WriteString(header)
	str.WriteByte('\n')
	str.WriteString(strings.Repeat("-", len(header)))
	str.WriteByte('\n')
	for i := 0; i < len(alphabet); i++ {
		name := string(alphabet[i])
		if name == " " {
			name = "space"
		}
		fmt.Fprintf(&str, "%-5s %3d %#04x %#04o %06b\n", name, i, i, i, i)
	}
	return str.String()
}
