/*
 * fpmodel - Reference model built on arbitrary precision floats.
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

// Package oracle holds an independently implemented reference for the
// add and multiply models, used by the differential harness as its
// comparison oracle. Arithmetic is done with math/big floats, whose five
// rounding modes map one-to-one onto the RTL mode set. The handle is
// constructed and torn down explicitly by the caller.
package oracle

import (
	"errors"
	"math/big"

	"github.com/rcornwell/fpmodel/fp/classify"
	"github.com/rcornwell/fpmodel/fp/codec"
	"github.com/rcornwell/fpmodel/fp/format"
)

// Exact working precision for intermediate sums. Two binary64 operands
// can be up to ~2100 binary places apart; 4096 keeps every sum exact.
const sumPrec = 4096

var errClosed = errors.New("oracle used after Close")

// BigFloat is the reference model handle.
type BigFloat struct {
	closed bool
}

// New constructs a reference model handle.
func New() *BigFloat {
	return &BigFloat{}
}

// Close tears down the handle. Further calls fail.
func (o *BigFloat) Close() error {
	o.closed = true
	return nil
}

func roundingMode(mode format.Mode) big.RoundingMode {
	switch mode {
	case format.RTZ:
		return big.ToZero
	case format.RPI:
		return big.ToPositiveInf
	case format.RNI:
		return big.ToNegativeInf
	case format.RNA:
		return big.ToNearestAway
	default:
		return big.ToNearestEven
	}
}

// exact converts a finite decoded operand to a big float, losslessly.
func exact(sign, exp, frac uint64, p format.Params) *big.Float {
	full := frac
	eff := int(exp)
	if exp != 0 {
		full |= 1 << p.MantBits
	} else {
		eff = 1
	}
	f := new(big.Float).SetPrec(uint(p.MantBits + 1)).SetUint64(full)
	f.SetMantExp(f, eff-p.Bias-p.MantBits)
	if sign != 0 {
		f.Neg(f)
	}
	return f
}

// encode rounds an exact nonzero result to the target precision and
// packs it, applying the shared overflow clamp and flush-to-zero rules.
func encode(val *big.Float, p format.Params, mode format.Mode) uint64 {
	rounded := new(big.Float).SetPrec(uint(p.MantBits + 1)).SetMode(roundingMode(mode))
	rounded.Set(val)

	var signBit uint64
	if rounded.Signbit() {
		signBit = 1
	}
	if rounded.Sign() == 0 {
		return signBit << (p.Width - 1)
	}

	mant := new(big.Float)
	exp2 := rounded.MantExp(mant)
	// mant is in [0.5, 1); biased exponent of the 1.f normalization.
	biased := exp2 - 1 + p.Bias

	switch {
	case biased >= int(p.MaxExp()):
		if mode == format.RNI || (mode == format.RTZ && signBit != 0) {
			return p.NegMaxFinite()
		}
		return p.Inf(signBit != 0)
	case biased <= 0:
		return signBit << (p.Width - 1)
	}

	// Scale |value| to an integer carrying the implicit bit.
	scaled := new(big.Float).SetMantExp(new(big.Float).Abs(rounded), p.MantBits+1-exp2)
	iv, _ := scaled.Int(nil)
	frac := iv.Uint64() & (1<<uint(p.MantBits) - 1)
	bits, _ := codec.Encode(signBit, uint64(biased), frac, p.Width)
	return bits
}

// Add is the reference addition over encoded operands.
func (o *BigFloat) Add(a, b uint64, width int, mode format.Mode) (uint64, error) {
	if o.closed {
		return 0, errClosed
	}
	p, err := format.Lookup(width)
	if err != nil {
		return 0, err
	}

	signA, expA, fracA, _ := codec.Decode(a, width)
	signB, expB, fracB, _ := codec.Decode(b, width)
	catA, _ := classify.Classify(expA, fracA, width)
	catB, _ := classify.Classify(expB, fracB, width)

	switch {
	case catA.IsNaN() || catB.IsNaN():
		return p.QuietNaN(), nil
	case catA.IsInf() && catB.IsInf() && signA != signB:
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

	sum := new(big.Float).SetPrec(sumPrec)
	sum.Add(exact(signA, expA, fracA, p), exact(signB, expB, fracB, p))
	if sum.Sign() == 0 {
		// Exact cancellation: +0 unless rounding towards -Inf.
		if mode == format.RNI {
			return p.SignBit(), nil
		}
		return 0, nil
	}
	return encode(sum, p, mode), nil
}

// Mul is the reference multiplication over encoded operands.
func (o *BigFloat) Mul(a, b uint64, width int, mode format.Mode) (uint64, error) {
	if o.closed {
		return 0, errClosed
	}
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
		return p.QuietNaN(), nil
	case catA.IsInf() || catB.IsInf():
		return p.Inf(sign != 0), nil
	case catA.IsZero() || catB.IsZero():
		return sign << (p.Width - 1), nil
	}

	// A product of two p-bit significands is exact at 2p bits.
	prod := new(big.Float).SetPrec(uint(2 * (p.MantBits + 1)))
	prod.Mul(exact(signA, expA, fracA, p), exact(signB, expB, fracB, p))
	return encode(prod, p, mode), nil
}
