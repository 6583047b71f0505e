package render

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

import (
	"math"
	"testing"
)

func TestFromBits(t *testing.T) {
	tests := []struct {
		bits   uint64
		width  int
		expect float64
	}{
		{0x3c00, 16, 1.0},
		{0xc000, 16, -2.0},
		{0x3e00, 16, 1.5},
		{0xc540, 16, -5.25},
		{0x0001, 16, math.Ldexp(1, -24)},
		{0x8001, 16, -math.Ldexp(1, -24)},
		{0x0400, 16, math.Ldexp(1, -14)},
		{0x7bff, 16, 65504},
		{0x0000, 16, 0},
		{0x3f800000, 32, 1.0},
		{0x40490fdb, 32, math.Ldexp(13176795, -22)},
		{0x3ff0000000000000, 64, 1.0},
		{0xc000000000000000, 64, -2.0},
	}
	for _, tt := range tests {
		r, err := FromBits(tt.bits, tt.width)
		if err != nil {
			t.Fatalf("FromBits(%x, %d) failed: %v", tt.bits, tt.width, err)
		}
		if r != tt.expect {
			t.Errorf("FromBits(%x, %d) got: %v expected: %v", tt.bits, tt.width, r, tt.expect)
		}
	}

	// Signed zero keeps its sign.
	if r, _ := FromBits(0x8000, 16); !math.Signbit(r) || r != 0 {
		t.Errorf("FromBits(8000) got: %v expected: -0", r)
	}

	// Infinities and NaNs.
	if r, _ := FromBits(0x7c00, 16); !math.IsInf(r, 1) {
		t.Errorf("FromBits(7c00) got: %v expected: +Inf", r)
	}
	if r, _ := FromBits(0xfc00, 16); !math.IsInf(r, -1) {
		t.Errorf("FromBits(fc00) got: %v expected: -Inf", r)
	}
	if r, _ := FromBits(0x7e00, 16); !math.IsNaN(r) {
		t.Errorf("FromBits(7e00) got: %v expected: NaN", r)
	}
	if r, _ := FromBits(0x7c01, 16); !math.IsNaN(r) {
		t.Errorf("FromBits(7c01) got: %v expected: NaN", r)
	}

	if _, err := FromBits(0, 12); err == nil {
		t.Errorf("FromBits width 12 did not fail")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		text   string
		expect float64
	}{
		{"0x3c00", 1.0},
		{"0xc540", -5.25},
		{"0b0100000000000000", 2.0},
		{"15360", 1.0},
	}
	for _, tt := range tests {
		r, err := ParseValue(tt.text, 16)
		if err != nil {
			t.Fatalf("ParseValue(%q) failed: %v", tt.text, err)
		}
		if r != tt.expect {
			t.Errorf("ParseValue(%q) got: %v expected: %v", tt.text, r, tt.expect)
		}
	}

	if _, err := ParseValue("0xgg00", 16); err == nil {
		t.Errorf("ParseValue(0xgg00) did not fail")
	}
	if _, err := ParseValue("0x10000", 16); err == nil {
		t.Errorf("ParseValue over range did not fail")
	}
}

func TestFormatValue(t *testing.T) {
	if r := FormatValue(1.0, 16); r != "1.00000\t1.00000e+00" {
		t.Errorf("FormatValue(1.0, 16) got: %q", r)
	}
	if r := FormatValue(-5.25, 16); r != "-5.25000\t-5.25000e+00" {
		t.Errorf("FormatValue(-5.25, 16) got: %q", r)
	}
	if r := FormatValue(1.0, 32); r != "1.0000000000\t1.0000000000e+00" {
		t.Errorf("FormatValue(1.0, 32) got: %q", r)
	}
}
