/*
 * fpmodel - Binary interchange format parameters.
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

package format

import (
	"errors"
	"strings"
)

// Rounding modes, matching grs_round.vh in the RTL.
type Mode int

const (
	RNE Mode = iota // Round to Nearest, Ties to Even.
	RTZ             // Round Towards Zero.
	RPI             // Round Towards Positive Infinity.
	RNI             // Round Towards Negative Infinity.
	RNA             // Round to Nearest, Ties Away from Zero.
)

// Modes lists all rounding modes in RTL encoding order.
var Modes = []Mode{RNE, RTZ, RPI, RNI, RNA}

var modeNames = map[Mode]string{
	RNE: "rne",
	RTZ: "rtz",
	RPI: "rpi",
	RNI: "rni",
	RNA: "rna",
}

var (
	ErrInvalidWidth        = errors.New("width must be 16, 32 or 64")
	ErrInvalidRoundingMode = errors.New("invalid rounding mode")
	ErrInvalidOperandText  = errors.New("invalid operand text")
)

func (m Mode) String() string {
	name, ok := modeNames[m]
	if !ok {
		return "mode(?)"
	}
	return name
}

// ParseMode maps a mode token onto a rounding mode.
func ParseMode(token string) (Mode, error) {
	for mode, name := range modeNames {
		if name == strings.ToLower(token) {
			return mode, nil
		}
	}
	return RNE, ErrInvalidRoundingMode
}

// Params describe the field layout of one encoding width.
type Params struct {
	Width     int // Total encoding width in bits.
	ExpBits   int // Biased exponent field width.
	MantBits  int // Significand fraction field width.
	Bias      int // Exponent bias.
	Precision int // Extra alignment bits kept below the mantissa.
}

// The alignment precisions match the RTL adder datapath: the binary16 unit
// carries a full 32 extra bits, the wider units only 7.
var formats = map[int]Params{
	16: {Width: 16, ExpBits: 5, MantBits: 10, Bias: 15, Precision: 32},
	32: {Width: 32, ExpBits: 8, MantBits: 23, Bias: 127, Precision: 7},
	64: {Width: 64, ExpBits: 11, MantBits: 52, Bias: 1023, Precision: 7},
}

// Lookup returns the parameters for an encoding width.
func Lookup(width int) (Params, error) {
	p, ok := formats[width]
	if !ok {
		return Params{}, ErrInvalidWidth
	}
	return p, nil
}

// MaxExp is the all-ones biased exponent marking Infinity and NaN.
func (p Params) MaxExp() uint64 {
	return (1 << p.ExpBits) - 1
}

// ExpMask is the mask for the biased exponent field.
func (p Params) ExpMask() uint64 {
	return (1 << p.ExpBits) - 1
}

// MantMask is the mask for the fraction field.
func (p Params) MantMask() uint64 {
	return (1 << p.MantBits) - 1
}

// SignBit is the encoding with only the sign bit set.
func (p Params) SignBit() uint64 {
	return 1 << (p.Width - 1)
}

// AlignBits is the width of the intermediate alignment register:
// fraction, implicit bit and extra precision.
func (p Params) AlignBits() int {
	return p.MantBits + 1 + p.Precision
}

// QuietNaN is the canonical quiet NaN: exponent all ones, fraction MSB set.
func (p Params) QuietNaN() uint64 {
	return p.MaxExp()<<p.MantBits | 1<<(p.MantBits-1)
}

// Inf is the Infinity encoding with the given sign.
func (p Params) Inf(negative bool) uint64 {
	bits := p.MaxExp() << p.MantBits
	if negative {
		bits |= p.SignBit()
	}
	return bits
}

// NegMaxFinite is the largest-magnitude negative finite encoding, the
// pattern the RTL clamps to on mode-specific overflow.
func (p Params) NegMaxFinite() uint64 {
	return p.SignBit() | (p.MaxExp()-1)<<p.MantBits | p.MantMask()
}
