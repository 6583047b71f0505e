/*
 * fpmodel - GRS rounding decision.
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

package rounder

import (
	"github.com/rcornwell/fpmodel/fp/format"
)

// DecideIncrement reports whether a value truncated from inWidth down to
// outWidth bits must be incremented under the given rounding mode. It
// mirrors the RTL grs_round module: lsb is the lowest retained bit, the
// guard and round bits are the first two dropped bits, and sticky is the
// OR of everything below them. When nothing is dropped there is nothing
// to decide.
func DecideIncrement(bits uint64, negative bool, mode format.Mode, inWidth, outWidth int) bool {
	drop := inWidth - outWidth
	if drop <= 0 {
		return false
	}

	lsb := (bits >> drop) & 1
	g := (bits >> (drop - 1)) & 1
	var r, s uint64
	if drop >= 2 {
		r = (bits >> (drop - 2)) & 1
	}
	if drop >= 3 && bits&((1<<(drop-2))-1) != 0 {
		s = 1
	}
	inexact := g | r | s

	switch mode {
	case format.RNE:
		return g&(r|s|lsb) != 0
	case format.RTZ:
		return false
	case format.RPI:
		return !negative && inexact != 0
	case format.RNI:
		return negative && inexact != 0
	case format.RNA:
		return g != 0
	}
	return false
}

// Finalize packs a rounded sign/exponent/fraction triple, applying the
// overflow and underflow rules shared by the adder and multiplier.
//
// On overflow RNI always clamps, and RTZ clamps when the sign is
// negative; the clamped pattern is the negative largest-finite value,
// matching the RTL. Every other mode/sign combination overflows to
// signed Infinity. Results with biased exponent <= 0 flush to signed
// zero; true subnormal results are not generated, matching the RTL.
func Finalize(sign uint64, exp int, mant uint64, mode format.Mode, p format.Params) uint64 {
	switch {
	case exp >= int(p.MaxExp()):
		if mode == format.RNI || (mode == format.RTZ && sign != 0) {
			return p.NegMaxFinite()
		}
		return p.Inf(sign != 0)
	case exp <= 0:
		return sign << (p.Width - 1)
	default:
		return sign<<(p.Width-1) | uint64(exp)<<p.MantBits | mant&p.MantMask()
	}
}
