/*
 * fpmodel - Special value classifier.
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

package classify

import (
	"github.com/rcornwell/fpmodel/fp/format"
)

// Category of a decoded value.
type Category int

const (
	Zero Category = iota
	Subnormal
	Normal
	Infinity
	QuietNaN
	SignalingNaN
)

var categoryNames = map[Category]string{
	Zero:         "zero",
	Subnormal:    "subnormal",
	Normal:       "normal",
	Infinity:     "infinity",
	QuietNaN:     "qnan",
	SignalingNaN: "snan",
}

func (c Category) String() string {
	return categoryNames[c]
}

// IsNaN reports whether the category is a quiet or signaling NaN.
func (c Category) IsNaN() bool {
	return c == QuietNaN || c == SignalingNaN
}

func (c Category) IsInf() bool {
	return c == Infinity
}

func (c Category) IsZero() bool {
	return c == Zero
}

func (c Category) IsSubnormal() bool {
	return c == Subnormal
}

// Classify derives the category of a decoded exponent/fraction pair.
func Classify(exp, frac uint64, width int) (Category, error) {
	p, err := format.Lookup(width)
	if err != nil {
		return Zero, err
	}
	switch {
	case exp == p.MaxExp() && frac != 0:
		if frac&(1<<(p.MantBits-1)) != 0 {
			return QuietNaN, nil
		}
		return SignalingNaN, nil
	case exp == p.MaxExp():
		return Infinity, nil
	case exp == 0 && frac == 0:
		return Zero, nil
	case exp == 0:
		return Subnormal, nil
	default:
		return Normal, nil
	}
}

// QuietNaNBits is the canonical quiet NaN pattern for a width: exponent
// all ones, fraction MSB set, remaining fraction bits zero.
func QuietNaNBits(width int) (uint64, error) {
	p, err := format.Lookup(width)
	if err != nil {
		return 0, err
	}
	return p.QuietNaN(), nil
}
