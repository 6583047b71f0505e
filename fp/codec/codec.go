/*
 * fpmodel - Bit-pattern codec.
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

package codec

import (
	"github.com/rcornwell/fpmodel/fp/format"
)

// Decode splits an encoded value into sign, biased exponent and fraction.
func Decode(bits uint64, width int) (sign, exp, frac uint64, err error) {
	p, err := format.Lookup(width)
	if err != nil {
		return 0, 0, 0, err
	}
	sign = (bits >> (p.Width - 1)) & 1
	exp = (bits >> p.MantBits) & p.ExpMask()
	frac = bits & p.MantMask()
	return sign, exp, frac, nil
}

// Encode packs sign, biased exponent and fraction into an encoded value.
// Fields wider than their target are masked down.
func Encode(sign, exp, frac uint64, width int) (uint64, error) {
	p, err := format.Lookup(width)
	if err != nil {
		return 0, err
	}
	bits := (sign&1)<<(p.Width-1) | (exp&p.ExpMask())<<p.MantBits | frac&p.MantMask()
	return bits, nil
}
