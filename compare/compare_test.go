package compare

/*
 * fpmodel - Differential test harness.
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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcornwell/fpmodel/fp/format"
	"github.com/rcornwell/fpmodel/oracle"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		bits   uint64
		width  int
		expect uint64
	}{
		{0x7e00, 16, 0x7e00},
		{0xfe00, 16, 0x7e00},
		{0x7c01, 16, 0x7e00},
		{0x7fff, 16, 0x7e00},
		{0x8000, 16, 0x0000},
		{0x0000, 16, 0x0000},
		{0x3c00, 16, 0x3c00},
		{0xbc00, 16, 0xbc00},
		{0x7c00, 16, 0x7c00},
		{0xffc00000, 32, 0x7fc00000},
		{0x8000000000000000, 64, 0x0000000000000000},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.expect, Canonicalize(tt.bits, tt.width),
			"Canonicalize(%#x, %d)", tt.bits, tt.width)
	}
}

func TestVectors(t *testing.T) {
	for _, width := range []int{16, 32, 64} {
		assert.Len(t, SpecialValues(width), 8)
		assert.NotEmpty(t, DirectedValues(width))
	}
	assert.Nil(t, SpecialValues(24))
	assert.Nil(t, DirectedValues(24))

	cases := Campaign(OpAdd, 16, format.RNE, 100, 7)
	assert.NotEmpty(t, cases)
	for _, c := range cases {
		assert.Equal(t, OpAdd, c.Op)
		assert.Equal(t, 16, c.Width)
		assert.Equal(t, format.RNE, c.Mode)
	}

	// The same seed reproduces the same vectors.
	again := Campaign(OpAdd, 16, format.RNE, 100, 7)
	assert.Equal(t, cases, again)
}

// The binary16 adder keeps every alignment bit, so the model must agree
// with the reference on arbitrary vectors in every rounding mode.
func TestCampaignAdd16(t *testing.T) {
	ref := oracle.New()
	defer ref.Close()
	harness := New(ref, 8)

	for _, mode := range format.Modes {
		cases := Campaign(OpAdd, 16, mode, 500, 1)
		report, err := harness.Run(context.Background(), cases)
		require.NoError(t, err)
		assert.Equal(t, uint64(len(cases)), report.Total)
		assert.Zerof(t, report.Failed, "mode %v mismatches: %v", mode, report.Mismatches)
	}
}

func TestCampaignMul16(t *testing.T) {
	ref := oracle.New()
	defer ref.Close()
	harness := New(ref, 8)

	for _, mode := range format.Modes {
		cases := Campaign(OpMul, 16, mode, 500, 1)
		report, err := harness.Run(context.Background(), cases)
		require.NoError(t, err)
		assert.Equal(t, uint64(len(cases)), report.Total)
		assert.Zerof(t, report.Failed, "mode %v mismatches: %v", mode, report.Mismatches)
	}
}

// wrongOracle disagrees on one vector so the scoreboard has something
// to catch.
type wrongOracle struct {
	inner *oracle.BigFloat
}

func (o wrongOracle) Add(a, b uint64, width int, mode format.Mode) (uint64, error) {
	if a == 0x3c00 && b == 0x3c00 {
		return 0xdead, nil
	}
	return o.inner.Add(a, b, width, mode)
}

func (o wrongOracle) Mul(a, b uint64, width int, mode format.Mode) (uint64, error) {
	return o.inner.Mul(a, b, width, mode)
}

func TestHarnessMismatch(t *testing.T) {
	ref := oracle.New()
	defer ref.Close()
	harness := New(wrongOracle{inner: ref}, 2)

	cases := []Case{
		{Op: OpAdd, A: 0x3c00, B: 0x3c00, Width: 16, Mode: format.RNE},
		{Op: OpAdd, A: 0x4000, B: 0x4000, Width: 16, Mode: format.RNE},
	}
	report, err := harness.Run(context.Background(), cases)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), report.Total)
	assert.Equal(t, uint64(1), report.Failed)
	require.Len(t, report.Mismatches, 1)

	m := report.Mismatches[0]
	assert.Equal(t, uint64(0x4000), m.Model)
	assert.Equal(t, uint64(0xdead), m.Oracle)
	assert.Contains(t, m.String(), "fp16_add(0x3c00, 0x3c00, rne)")
}

func TestHarnessInvalidWidth(t *testing.T) {
	ref := oracle.New()
	defer ref.Close()
	harness := New(ref, 2)

	_, err := harness.Run(context.Background(), []Case{
		{Op: OpAdd, A: 0, B: 0, Width: 48, Mode: format.RNE},
	})
	assert.Error(t, err)
}
