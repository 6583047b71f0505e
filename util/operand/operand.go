/*
 * fpmodel - Operand text parsing and rendering.
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

package operand

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcornwell/fpmodel/fp/format"
)

// Base of an operand numeral.
type Base int

const (
	Dec Base = iota
	Hex
	Bin
	Oct
)

// DetectBase determines the base of an operand from its prefix; decimal
// when there is none.
func DetectBase(text string) (Base, string) {
	low := strings.ToLower(text)
	switch {
	case strings.HasPrefix(low, "0x"):
		return Hex, text[:2]
	case strings.HasPrefix(low, "0b"):
		return Bin, text[:2]
	case strings.HasPrefix(low, "0o"):
		return Oct, text[:2]
	default:
		return Dec, ""
	}
}

// Prefix is the numeral prefix conventionally marking the base.
func (b Base) Prefix() string {
	switch b {
	case Hex:
		return "0x"
	case Bin:
		return "0b"
	case Oct:
		return "0o"
	default:
		return ""
	}
}

func (b Base) radix() int {
	switch b {
	case Hex:
		return 16
	case Bin:
		return 2
	case Oct:
		return 8
	default:
		return 10
	}
}

// Parse reads an operand in any supported base and range-checks it
// against the encoding width.
func Parse(text string, width int) (uint64, error) {
	if _, err := format.Lookup(width); err != nil {
		return 0, err
	}
	base, prefix := DetectBase(text)
	val, err := strconv.ParseUint(text[len(prefix):], base.radix(), width)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", format.ErrInvalidOperandText, text)
	}
	return val, nil
}

// Format renders an encoded value in the given base: hex zero-padded to
// width/4 digits, binary to width digits, octal and decimal unpadded.
func Format(val uint64, width int, base Base) string {
	switch base {
	case Hex:
		return fmt.Sprintf("%0*x", width/4, val)
	case Bin:
		return fmt.Sprintf("%0*b", width, val)
	case Oct:
		return strconv.FormatUint(val, 8)
	default:
		return strconv.FormatUint(val, 10)
	}
}

// FormatAll renders an encoded value in every base, keyed the way the
// scoreboard logs expect.
func FormatAll(val uint64, width int) map[string]string {
	return map[string]string{
		"hex": Format(val, width, Hex),
		"bin": Format(val, width, Bin),
		"dec": Format(val, width, Dec),
		"oct": Format(val, width, Oct),
	}
}
