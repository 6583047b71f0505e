/*
 * fpmodel - Fixed width floating point multiplier.
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

package multiplier

import (
	"math/bits"

	"github.com/rcornwell/fpmodel/fp/classify"
	"github.com/rcornwell/fpmodel/fp/codec"
	"github.com/rcornwell/fpmodel/fp/format"
	"github.com/rcornwell/fpmodel/fp/rounder"
)

// Mul computes a * b on two same-width encoded operands under the given
// rounding mode. The significand product is formed exactly at double the
// native width (a two-word product for binary64), then rounded once with
// the GRS rounder.
func Mul(a, b uint64, width int, mode format.Mode) (uint64, error) {
	p, err := format.Lookup(width)
	if err != nil {
		return 0, err
	}

	signA, expA, fracA, _ := codec.Decode(a, width)
	signB, expB, fracB, _ := codec.Decode(b, width)
	catA, _ := classify.Classify(expA, fracA, width)
	catB, _ := classify.Classify(expB, fracB, width)
	sign := signA ^ signB

	switch {
	case catA.IsNaN() || catB.IsNaN():
		return p.QuietNaN(), nil
	case (catA.IsZero() && catB.IsInf()) || (catA.IsInf() && catB.IsZero()):
		// 0 * Inf has no value.
		return p.QuietNaN(), nil
	case catA.IsInf() || catB.IsInf():
		return p.Inf(sign != 0), nil
	case catA.IsZero() || catB.IsZero():
		return sign << (p.Width - 1), nil
	}

	fullA := fracA
	fullB := fracB
	if !catA.IsSubnormal() {
		fullA |= 1 << p.MantBits
	}
	if !catB.IsSubnormal() {
		fullB |= 1 << p.MantBits
	}
	effA := int(expA)
	if effA == 0 {
		effA = 1
	}
	effB := int(expB)
	if effB == 0 {
		effB = 1
	}

	// Provisional biased exponent assumes the product's leading bit at
	// position 2*MantBits; the actual position corrects it below.
	exp := effA + effB - p.Bias

	var prod uint64
	if width == 64 {
		hi, lo := bits.Mul64(fullA, fullB)
		if hi != 0 {
			// Reduce the two-word product to a 64 bit window, jamming
			// the shifted-out bits into the sticky position.
			top := 64 + bits.Len64(hi) - 1
			shift := uint(top - 63)
			prod = hi<<(64-shift) | lo>>shift
			if lo&(1<<shift-1) != 0 {
				prod |= 1
			}
			exp += top - 2*p.MantBits
			return pack(sign, exp, prod, 63, p, mode), nil
		}
		prod = lo
	} else {
		prod = fullA * fullB
	}

	top := bits.Len64(prod) - 1
	exp += top - 2*p.MantBits
	return pack(sign, exp, prod, top, p, mode), nil
}

// pack rounds a product whose leading set bit is at index top and packs
// the final encoding.
func pack(sign uint64, exp int, prod uint64, top int, p format.Params, mode format.Mode) uint64 {
	input := prod &^ (1 << uint(top))
	if top <= p.MantBits {
		// Product of deep subnormals, nothing to drop.
		return rounder.Finalize(sign, exp, input<<uint(p.MantBits-top), mode, p)
	}

	mant := input >> uint(top-p.MantBits)
	if rounder.DecideIncrement(input, sign != 0, mode, top, p.MantBits) {
		mant++
	}
	if mant>>uint(p.MantBits) != 0 {
		// The increment only overflows an all-ones fraction, so the
		// result is the next binade with a zero fraction.
		mant = 0
		exp++
	}
	return rounder.Finalize(sign, exp, mant, mode, p)
}

// Mul16 multiplies two binary16 encodings. Matches the oracle contract.
func Mul16(a, b uint16, mode format.Mode) uint16 {
	r, _ := Mul(uint64(a), uint64(b), 16, mode)
	return uint16(r)
}

// Mul32 multiplies two binary32 encodings. Matches the oracle contract.
func Mul32(a, b uint32, mode format.Mode) uint32 {
	r, _ := Mul(uint64(a), uint64(b), 32, mode)
	return uint32(r)
}

// Mul64 multiplies two binary64 encodings. Matches the oracle contract.
func Mul64(a, b uint64, mode format.Mode) uint64 {
	r, _ := Mul(a, b, 64, mode)
	return r
}
