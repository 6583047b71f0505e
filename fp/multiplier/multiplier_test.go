package multiplier

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

import (
	"errors"
	"testing"

	"github.com/rcornwell/fpmodel/fp/format"
)

func TestMulBasic(t *testing.T) {
	tests := []struct {
		a, b   uint64
		width  int
		mode   format.Mode
		expect uint64
	}{
		{0x3c00, 0x4000, 16, format.RNE, 0x4000},
		{0x4000, 0x4000, 16, format.RNE, 0x4400},
		{0xc000, 0x4000, 16, format.RNE, 0xc400},
		{0x3c00, 0xc540, 16, format.RNE, 0xc540},
		{0x3f800000, 0x40000000, 32, format.RNE, 0x40000000},
		{0x3ff0000000000000, 0x4000000000000000, 64, format.RNE, 0x4000000000000000},
	}
	for _, tt := range tests {
		r, err := Mul(tt.a, tt.b, tt.width, tt.mode)
		if err != nil {
			t.Fatalf("Mul failed: %v", err)
		}
		if r != tt.expect {
			t.Errorf("Mul(%x, %x, %d, %v) got: %x expected: %x",
				tt.a, tt.b, tt.width, tt.mode, r, tt.expect)
		}
	}
}

func TestMulSpecials(t *testing.T) {
	for _, mode := range format.Modes {
		for _, nan := range []uint64{0x7e00, 0xfe00, 0x7c01} {
			if r, _ := Mul(nan, 0x4000, 16, mode); r != 0x7e00 {
				t.Errorf("Mul(%x, 4000, %v) got: %x expected: 7e00", nan, mode, r)
			}
			if r, _ := Mul(0x8000, nan, 16, mode); r != 0x7e00 {
				t.Errorf("Mul(8000, %x, %v) got: %x expected: 7e00", nan, mode, r)
			}
		}

		// Zero times infinity has no value.
		if r, _ := Mul(0x0000, 0x7c00, 16, mode); r != 0x7e00 {
			t.Errorf("Mul(0000, 7c00, %v) got: %x expected: 7e00", mode, r)
		}
		if r, _ := Mul(0xfc00, 0x8000, 16, mode); r != 0x7e00 {
			t.Errorf("Mul(fc00, 8000, %v) got: %x expected: 7e00", mode, r)
		}

		// Infinity times finite keeps the product sign.
		if r, _ := Mul(0x7c00, 0x4000, 16, mode); r != 0x7c00 {
			t.Errorf("Mul(7c00, 4000, %v) got: %x expected: 7c00", mode, r)
		}
		if r, _ := Mul(0xfc00, 0x3c00, 16, mode); r != 0xfc00 {
			t.Errorf("Mul(fc00, 3c00, %v) got: %x expected: fc00", mode, r)
		}
		if r, _ := Mul(0xfc00, 0xbc00, 16, mode); r != 0x7c00 {
			t.Errorf("Mul(fc00, bc00, %v) got: %x expected: 7c00", mode, r)
		}

		// Zero times finite is the signed zero of the product.
		if r, _ := Mul(0x8000, 0x3c00, 16, mode); r != 0x8000 {
			t.Errorf("Mul(8000, 3c00, %v) got: %x expected: 8000", mode, r)
		}
		if r, _ := Mul(0x8000, 0xc540, 16, mode); r != 0x0000 {
			t.Errorf("Mul(8000, c540, %v) got: %x expected: 0000", mode, r)
		}
	}
}

// (1 + 2^-10)^2 is 1 + 2^-9 + 2^-20: the nearest modes keep the even
// neighbor, RPI climbs to the next encoding.
func TestMulRounding(t *testing.T) {
	tests := []struct {
		mode   format.Mode
		expect uint64
	}{
		{format.RNE, 0x3c02},
		{format.RTZ, 0x3c02},
		{format.RPI, 0x3c03},
		{format.RNI, 0x3c02},
		{format.RNA, 0x3c02},
	}
	for _, tt := range tests {
		r, _ := Mul(0x3c01, 0x3c01, 16, tt.mode)
		if r != tt.expect {
			t.Errorf("Mul(3c01, 3c01, %v) got: %x expected: %x", tt.mode, r, tt.expect)
		}
	}
}

// The binary64 significand product needs the full two-word path.
func TestMulWidePath(t *testing.T) {
	a := uint64(0x3ff0000000000001) // 1 + 2^-52
	tests := []struct {
		mode   format.Mode
		expect uint64
	}{
		{format.RNE, 0x3ff0000000000002},
		{format.RTZ, 0x3ff0000000000002},
		{format.RPI, 0x3ff0000000000003},
		{format.RNI, 0x3ff0000000000002},
		{format.RNA, 0x3ff0000000000002},
	}
	for _, tt := range tests {
		r, _ := Mul(a, a, 64, tt.mode)
		if r != tt.expect {
			t.Errorf("Mul64 wide path %v got: %x expected: %x", tt.mode, r, tt.expect)
		}
	}
}

// An increment that carries out of an all-ones fraction must produce a
// zero fraction one binade up, not a half-set one. Products just under
// 1.0 with a sticky tail land the rounder on that boundary.
func TestMulRoundCarry(t *testing.T) {
	tests := []struct {
		a, b   uint64
		width  int
		mode   format.Mode
		expect uint64
	}{
		// 0.9921875 * 1.0078125 is 1 - 2^-14, a whisker under 1.0.
		{0x3bf0, 0x3c08, 16, format.RNE, 0x3c00},
		{0x3bf0, 0x3c08, 16, format.RNA, 0x3c00},
		{0x3bf0, 0x3c08, 16, format.RPI, 0x3c00},
		{0x3bf0, 0x3c08, 16, format.RTZ, 0x3bff},
		{0x3bf0, 0x3c08, 16, format.RNI, 0x3bff},
		// Negative product, same boundary.
		{0xbbf0, 0x3c08, 16, format.RNE, 0xbc00},
		{0xbbf0, 0x3c08, 16, format.RNI, 0xbc00},
		{0xbbf0, 0x3c08, 16, format.RPI, 0xbbff},
		// Binary32 analogue of the same near-one product.
		{0x3f7ffff0, 0x3f800008, 32, format.RNE, 0x3f800000},
		{0x3f7ffff0, 0x3f800008, 32, format.RTZ, 0x3f7fffff},
	}
	for _, tt := range tests {
		r, _ := Mul(tt.a, tt.b, tt.width, tt.mode)
		if r != tt.expect {
			t.Errorf("Mul(%x, %x, %d, %v) got: %x expected: %x",
				tt.a, tt.b, tt.width, tt.mode, r, tt.expect)
		}
	}
}

func TestMulOverflow(t *testing.T) {
	tests := []struct {
		a, b   uint64
		mode   format.Mode
		expect uint64
	}{
		{0x7bff, 0x7bff, format.RNE, 0x7c00},
		{0x7bff, 0x7bff, format.RNA, 0x7c00},
		{0x7bff, 0x7bff, format.RPI, 0x7c00},
		{0x7bff, 0x7bff, format.RTZ, 0x7c00},
		{0x7bff, 0x7bff, format.RNI, 0xfbff},
		{0xfbff, 0x7bff, format.RNE, 0xfc00},
		{0xfbff, 0x7bff, format.RPI, 0xfc00},
		{0xfbff, 0x7bff, format.RTZ, 0xfbff},
		{0xfbff, 0x7bff, format.RNI, 0xfbff},
	}
	for _, tt := range tests {
		r, _ := Mul(tt.a, tt.b, 16, tt.mode)
		if r != tt.expect {
			t.Errorf("Mul(%04x, %04x, %v) got: %x expected: %x", tt.a, tt.b, tt.mode, r, tt.expect)
		}
	}
}

func TestMulUnderflow(t *testing.T) {
	// Subnormal squared is far below the smallest normal.
	if r, _ := Mul(0x0001, 0x0001, 16, format.RNE); r != 0x0000 {
		t.Errorf("Mul(0001, 0001) got: %x expected: 0000", r)
	}
	// Smallest normal halved lands in the subnormal range and flushes.
	if r, _ := Mul(0x0400, 0x3800, 16, format.RNE); r != 0x0000 {
		t.Errorf("Mul(0400, 3800) got: %x expected: 0000", r)
	}
	if r, _ := Mul(0x8400, 0x3800, 16, format.RNE); r != 0x8000 {
		t.Errorf("Mul(8400, 3800) got: %x expected: 8000", r)
	}
}

func TestMulCommutative(t *testing.T) {
	values := []uint64{0x3c00, 0xc000, 0x4000, 0xc540, 0x2cab, 0x06f3, 0x0e82, 0x82ab, 0x0001}
	for _, mode := range format.Modes {
		for _, a := range values {
			for _, b := range values {
				ab, _ := Mul(a, b, 16, mode)
				ba, _ := Mul(b, a, 16, mode)
				if ab != ba {
					t.Errorf("Mul(%04x, %04x, %v) not commutative got: %x and %x", a, b, mode, ab, ba)
				}
			}
		}
	}
}

// For positive operands an RPI result can never sit below the RNI
// result.
func TestMulModeOrdering(t *testing.T) {
	values := []uint64{0x3c00, 0x3c01, 0x4000, 0x2cab, 0x06f3, 0x0e82, 0x0001}
	for _, a := range values {
		for _, b := range values {
			up, _ := Mul(a, b, 16, format.RPI)
			down, _ := Mul(a, b, 16, format.RNI)
			if up < down {
				t.Errorf("Mul(%04x, %04x) RPI below RNI got: %x and %x", a, b, up, down)
			}
		}
	}
}

func TestMulInvalidWidth(t *testing.T) {
	if _, err := Mul(0, 0, 8, format.RNE); !errors.Is(err, format.ErrInvalidWidth) {
		t.Errorf("Mul width 8 error got: %v expected: %v", err, format.ErrInvalidWidth)
	}
}

func TestMulFixedWidth(t *testing.T) {
	if r := Mul16(0x3c00, 0x4000, format.RNE); r != 0x4000 {
		t.Errorf("Mul16 got: %x expected: %x", r, 0x4000)
	}
	if r := Mul32(0x40000000, 0x40000000, format.RNE); r != 0x40800000 {
		t.Errorf("Mul32 got: %x expected: %x", r, 0x40800000)
	}
	if r := Mul64(0x4000000000000000, 0x4000000000000000, format.RNE); r != 0x4010000000000000 {
		t.Errorf("Mul64 got: %x expected: %x", r, 0x4010000000000000)
	}
}
