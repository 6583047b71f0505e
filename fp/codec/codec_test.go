package codec

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

import (
	"errors"
	"testing"

	"github.com/rcornwell/fpmodel/fp/format"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		bits            uint64
		width           int
		sign, exp, frac uint64
	}{
		{0x3c00, 16, 0, 15, 0},
		{0xc540, 16, 1, 17, 0x140},
		{0x8000, 16, 1, 0, 0},
		{0x7e00, 16, 0, 31, 0x200},
		{0x0001, 16, 0, 0, 1},
		{0x3f800000, 32, 0, 127, 0},
		{0xff800000, 32, 1, 255, 0},
		{0x3ff0000000000000, 64, 0, 1023, 0},
		{0x8000000000000001, 64, 1, 0, 1},
	}
	for _, tt := range tests {
		sign, exp, frac, err := Decode(tt.bits, tt.width)
		if err != nil {
			t.Fatalf("Decode(%x, %d) failed: %v", tt.bits, tt.width, err)
		}
		if sign != tt.sign || exp != tt.exp || frac != tt.frac {
			t.Errorf("Decode(%x, %d) got: %d %d %x expected: %d %d %x",
				tt.bits, tt.width, sign, exp, frac, tt.sign, tt.exp, tt.frac)
		}
	}

	if _, _, _, err := Decode(0, 8); !errors.Is(err, format.ErrInvalidWidth) {
		t.Errorf("Decode width 8 error got: %v expected: %v", err, format.ErrInvalidWidth)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		sign, exp, frac uint64
		width           int
		bits            uint64
	}{
		{0, 15, 0, 16, 0x3c00},
		{1, 17, 0x140, 16, 0xc540},
		{0, 31, 0x200, 16, 0x7e00},
		{1, 255, 0, 32, 0xff800000},
		{0, 1023, 0, 64, 0x3ff0000000000000},
	}
	for _, tt := range tests {
		bits, err := Encode(tt.sign, tt.exp, tt.frac, tt.width)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if bits != tt.bits {
			t.Errorf("Encode(%d, %d, %x, %d) got: %x expected: %x",
				tt.sign, tt.exp, tt.frac, tt.width, bits, tt.bits)
		}
	}
}

// Over-wide fields must be masked down to their target width.
func TestEncodeMasking(t *testing.T) {
	bits, err := Encode(3, 0xfff, 0xfffff, 16)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bits != 0xffff {
		t.Errorf("Encode masking got: %x expected: %x", bits, 0xffff)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []uint64{0x0000, 0x8000, 0x3c00, 0xc540, 0x2cab, 0x7c00, 0xfc00, 0x7e00, 0x0001}
	for _, v := range values {
		sign, exp, frac, _ := Decode(v, 16)
		bits, _ := Encode(sign, exp, frac, 16)
		if bits != v {
			t.Errorf("round trip got: %x expected: %x", bits, v)
		}
	}
}
