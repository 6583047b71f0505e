/*
 * fpmodel - Simulation log annotator.
 *
 * Copyright 2025, Richard Cornwell
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

// Package simlog scans UVM simulation logs for error lines and annotates
// the hexadecimal tokens they carry with their decoded float values.
package simlog

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/rcornwell/fpmodel/fp/render"
)

const errorTag = "UVM_ERROR"

var hexPattern = regexp.MustCompile(`0x[0-9a-fA-F]+`)

// Process scans r line by line, writing every error line to w together
// with the float value of each distinct hex token on it, decoded at the
// given width. Returns the number of error lines found.
func Process(r io.Reader, w io.Writer, width int) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	found := 0
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if !strings.Contains(line, errorTag) {
			continue
		}
		if found == 0 {
			fmt.Fprintln(w, strings.Repeat("-", 80))
		}
		found++

		fmt.Fprintf(w, "Found %s on line %d:\n%s\n", errorTag, lineNum, strings.TrimSpace(line))

		tokens := dedupe(hexPattern.FindAllString(line, -1))
		if len(tokens) == 0 {
			continue
		}
		fmt.Fprintln(w, "  Floating-point representations:")
		for _, tok := range tokens {
			val, err := render.ParseValue(tok, width)
			if err != nil {
				fmt.Fprintf(w, "    %s -> (Could not parse as fp%d)\n", tok, width)
				continue
			}
			fmt.Fprintf(w, "    %s -> %.7f (%.7e)\n", tok, val, val)
		}
		fmt.Fprintln(w, strings.Repeat("-", 80))
	}
	if err := scanner.Err(); err != nil {
		return found, fmt.Errorf("reading log: %w", err)
	}

	if found == 0 {
		fmt.Fprintln(w, "No "+errorTag+" lines found in the log file.")
	}
	return found, nil
}

func dedupe(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	var out []string
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	sort.Strings(out)
	return out
}
