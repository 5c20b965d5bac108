/*
 * radix50 - Main process.
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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	parser "github.com/rcornwell/radix50/command/parser"
	reader "github.com/rcornwell/radix50/command/reader"
	config "github.com/rcornwell/radix50/config/configparser"
	"github.com/rcornwell/radix50/radix50"
	"github.com/rcornwell/radix50/util/format"
	logger "github.com/rcornwell/radix50/util/logger"
)

func main() {
	optConfig := getopt.StringLong("config", 'c', "radix50.cfg", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optPDP10 := getopt.BoolLong("pdp10", 0, "Use the PDP-10 encoding instead of the default PDP-11")
	optFormat := getopt.StringLong("format", 'f', "", "Encode output format: dec, hex, oct, bin or raw")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("[encode [string]|decode [word...]|charset]")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	settings, err := config.LoadConfigFile(*optConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}

	// Command line flags override the configuration file.
	if *optPDP10 {
		settings.Dialect = "pdp10"
	}
	if *optFormat != "" {
		if !format.Valid(*optFormat) {
			fmt.Fprintln(os.Stderr, "Error: unknown output format: "+*optFormat)
			os.Exit(1)
		}
		settings.Format = *optFormat
	}
	if *optLogFile != "" {
		settings.LogFile = *optLogFile
	}

	var file *os.File
	if settings.LogFile != "" {
		file, err = os.Create(settings.LogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
			os.Exit(1)
		}
	}
	slog.SetDefault(slog.New(logger.NewHandler(file, *optDebug)))
	slog.Debug("radix50 started")

	// No command starts the interactive console.
	args := getopt.Args()
	if len(args) == 0 {
		reader.ConsoleReader(parser.NewSession(settings.Dialect, settings.Format))
		return
	}

	switch args[0] {
	case "encode":
		err = runEncode(settings, args[1:])
	case "decode":
		err = runDecode(settings, args[1:])
	case "charset":
		fmt.Print(format.CharsetTable(alphabet(settings)))
	default:
		err = fmt.Errorf("unknown command: %s", args[0])
	}
	if err != nil {
		// The log handler mirrors errors to stderr.
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func alphabet(settings *config.Settings) string {
	if settings.Dialect == "pdp10" {
		return radix50.PDP10.Alphabet()
	}
	return radix50.PDP11.Alphabet()
}

// Encode the argument string, or stdin when no argument is given.
func runEncode(settings *config.Settings, args []string) error {
	text, err := encodeInput(args)
	if err != nil {
		return err
	}
	if settings.Dialect == "pdp10" {
		return encodeTo(radix50.PDP10, text, settings.Format)
	}
	return encodeTo(radix50.PDP11, text, settings.Format)
}

func encodeInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	// A trailing newline from the shell is not part of the text.
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func encodeTo[W radix50.Word](d *radix50.Dialect[W], text string, formatName string) error {
	words, err := d.Encode(text)
	if err != nil {
		return err
	}
	if formatName == "raw" {
		_, err = os.Stdout.Write(format.RawBytes(words, d.WordBytes()))
		return err
	}
	out, err := format.Words(words, formatName)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// Decode the word arguments, or stdin as a big endian binary stream
// when no arguments are given.
func runDecode(settings *config.Settings, args []string) error {
	if settings.Dialect == "pdp10" {
		return decodeTo(radix50.PDP10, args)
	}
	return decodeTo(radix50.PDP11, args)
}

func decodeTo[W radix50.Word](d *radix50.Dialect[W], args []string) error {
	var words []W
	if len(args) > 0 {
		for _, arg := range args {
			word, err := format.ParseWord[W](arg, d.WordBytes()*8)
			if err != nil {
				return err
			}
			words = append(words, word)
		}
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		words, err = format.WordsFromBytes[W](data, d.WordBytes())
		if err != nil {
			return err
		}
	}
	fmt.Println(d.Decode(words))
	return nil
}
