/*
 * fpmodel - Render encoded values as host floats.
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

package render

import (
	"fmt"
	"math"

	"github.com/rcornwell/fpmodel/fp/classify"
	"github.com/rcornwell/fpmodel/fp/codec"
	"github.com/rcornwell/fpmodel/fp/format"
	"github.com/rcornwell/fpmodel/util/operand"
)

// Display digits per width, enough for an exact read-back.
var digits = map[int]int{16: 5, 32: 10, 64: 18}

// FromBits converts an encoded value to the host float it denotes.
// Exact for all three widths; a float64 holds any binary16 or binary32
// value without rounding.
func FromBits(bitsIn uint64, width int) (float64, error) {
	p, err := format.Lookup(width)
	if err != nil {
		return 0, err
	}
	sign, exp, frac, _ := codec.Decode(bitsIn, width)
	cat, _ := classify.Classify(exp, frac, width)

	var val float64
	switch cat {
	case classify.QuietNaN, classify.SignalingNaN:
		return math.NaN(), nil
	case classify.Infinity:
		val = math.Inf(1)
	case classify.Zero:
		val = 0
	case classify.Subnormal:
		val = math.Ldexp(float64(frac), 1-p.Bias-p.MantBits)
	default:
		val = math.Ldexp(float64(frac|1<<p.MantBits), int(exp)-p.Bias-p.MantBits)
	}
	if sign != 0 {
		val = -val
	}
	return val, nil
}

// ParseValue decodes an operand numeral (hex, binary, octal or decimal)
// into the float it encodes. This is the single entry point used by log
// scrapers to annotate hex values found in simulation output.
func ParseValue(text string, width int) (float64, error) {
	bitsIn, err := operand.Parse(text, width)
	if err != nil {
		return 0, err
	}
	return FromBits(bitsIn, width)
}

// FormatValue renders a float in fixed and scientific notation with the
// width's display precision.
func FormatValue(val float64, width int) string {
	d, ok := digits[width]
	if !ok {
		d = digits[64]
	}
	return fmt.Sprintf("%.*f\t%.*e", d, val, d, val)
}
