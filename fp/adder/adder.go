/*
 * fpmodel - Fixed width floating point adder.
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

package adder

import (
	"math/bits"

	"github.com/rcornwell/fpmodel/fp/classify"
	"github.com/rcornwell/fpmodel/fp/codec"
	"github.com/rcornwell/fpmodel/fp/format"
	"github.com/rcornwell/fpmodel/fp/rounder"
)

// Add computes a + b on two same-width encoded operands under the given
// rounding mode, bit-exact against the RTL fp_add datapath. It aligns
// both significands in a register of MantBits+1+Precision bits, adds or
// subtracts, renormalizes, and rounds with the GRS rounder.
func Add(a, b uint64, width int, mode format.Mode) (uint64, error) {
	p, err := format.Lookup(width)
	if err != nil {
		return 0, err
	}

	signA, expA, fracA, _ := codec.Decode(a, width)
	signB, expB, fracB, _ := codec.Decode(b, width)
	catA, _ := classify.Classify(expA, fracA, width)
	catB, _ := classify.Classify(expB, fracB, width)

	// Special operands resolve before any arithmetic.
	switch {
	case catA.IsNaN() || catB.IsNaN():
		return p.QuietNaN(), nil
	case catA.IsInf() && catB.IsInf() && signA != signB:
		// Inf - Inf has no value.
		return p.QuietNaN(), nil
	case catA.IsInf():
		return a, nil
	case catB.IsInf():
		return b, nil
	case catA.IsZero() && catB.IsZero():
		sign := signA & signB
		if signA != signB && mode == format.RNI {
			sign = 1
		}
		return sign << (p.Width - 1), nil
	case catA.IsZero():
		return b, nil
	case catB.IsZero():
		return a, nil
	}

	// Implicit leading bit: 1 for normals, 0 for subnormals. Subnormals
	// align with an effective exponent of 1.
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

	// Align into the wide register, smaller operand shifted right.
	alignedA := fullA << p.Precision
	alignedB := fullB << p.Precision
	resExp := effA
	if diff := effA - effB; diff > 0 {
		alignedB >>= uint(diff)
	} else {
		alignedA >>= uint(-diff)
		resExp = effB
	}

	subtract := signA != signB
	var resMant, resSign uint64
	if subtract {
		if alignedA >= alignedB {
			resMant = alignedA - alignedB
			resSign = signA
		} else {
			resMant = alignedB - alignedA
			resSign = signB
		}
	} else {
		resMant = alignedA + alignedB
		resSign = signA
	}

	// Exact cancellation gives +0, or -0 when rounding towards -Inf.
	if resMant == 0 {
		if mode == format.RNI && subtract {
			return p.SignBit(), nil
		}
		return 0, nil
	}

	// Normalize so the leading bit sits at the top of the register.
	alignBits := p.AlignBits()
	shift := alignBits - 1 - (bits.Len64(resMant) - 1)
	if shift > 0 {
		resMant <<= uint(shift)
	} else {
		resMant >>= uint(-shift)
	}
	resExp -= shift

	// Round the fraction below the implicit bit down to MantBits.
	inWidth := alignBits - 1
	input := resMant & (1<<uint(inWidth) - 1)
	mant := input >> uint(inWidth-p.MantBits)
	if rounder.DecideIncrement(input, resSign != 0, mode, inWidth, p.MantBits) {
		mant++
	}
	if mant>>uint(p.MantBits) != 0 {
		// The increment only overflows an all-ones fraction, so the
		// result is the next binade with a zero fraction.
		mant = 0
		resExp++
	}

	return rounder.Finalize(resSign, resExp, mant, mode, p), nil
}

// Add16 adds two binary16 encodings. Matches the oracle contract.
func Add16(a, b uint16, mode format.Mode) uint16 {
	r, _ := Add(uint64(a), uint64(b), 16, mode)
	return uint16(r)
}

// Add32 adds two binary32 encodings. Matches the oracle contract.
func Add32(a, b uint32, mode format.Mode) uint32 {
	r, _ := Add(uint64(a), uint64(b), 32, mode)
	return uint32(r)
}

// Add64 adds two binary64 encodings. Matches the oracle contract.
func Add64(a, b uint64, mode format.Mode) uint64 {
	r, _ := Add(a, b, 64, mode)
	return r
}
