/*
 * fpmodel - Test vector generation.
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

package compare

import (
	"math/rand"

	"github.com/rcornwell/fpmodel/fp/format"
)

// SpecialValues are the eight signed special encodings of a width:
// zeros, infinities, quiet and signaling NaNs.
func SpecialValues(width int) []uint64 {
	p, err := format.Lookup(width)
	if err != nil {
		return nil
	}
	inf := p.MaxExp() << p.MantBits
	qnan := p.QuietNaN()
	snan := p.MaxExp()<<p.MantBits | 1
	return []uint64{
		0,
		p.SignBit(),
		inf,
		p.SignBit() | inf,
		qnan,
		p.SignBit() | qnan,
		snan,
		p.SignBit() | snan,
	}
}

// DirectedValues are hand-picked normals and subnormals per width,
// grown over time from failing RTL simulations.
func DirectedValues(width int) []uint64 {
	switch width {
	case 16:
		return []uint64{
			0x3c00, // 1.0
			0xc000, // -2.0
			0x4000, // 2.0
			0xc540, // Representative normal
			0x2cab, // Representative normal
			0x06f3, // Subnormal
			0x0e82, // Subnormal
			0x82ab, // Subnormal (negative)
			0x0001, // Smallest subnormal
		}
	case 32:
		return []uint64{
			0x3f800000, // 1.0
			0xc0000000, // -2.0
			0x40000000, // 2.0
			0x00400001, // Subnormal
			0x80400001, // Subnormal (negative)
			0x00000001, // Smallest subnormal
		}
	case 64:
		return []uint64{
			0x3ff0000000000000, // 1.0
			0xc000000000000000, // -2.0
			0x4000000000000000, // 2.0
			0x0008000000000001, // Subnormal
			0x8008000000000001, // Subnormal (negative)
			0x0000000000000001, // Smallest subnormal
		}
	}
	return nil
}

// RandomNormal draws a uniformly random normal encoding.
func RandomNormal(rnd *rand.Rand, width int) uint64 {
	p, err := format.Lookup(width)
	if err != nil {
		return 0
	}
	sign := uint64(rnd.Intn(2))
	exp := uint64(1 + rnd.Intn(int(p.MaxExp()-1)))
	frac := rnd.Uint64() & p.MantMask()
	return sign<<(p.Width-1) | exp<<p.MantBits | frac
}

// Campaign builds the vector set for one width, operation and mode:
// every ordered pair with at least one special operand, the directed
// normal pairs, and a seeded batch of random normal pairs.
func Campaign(op Op, width int, mode format.Mode, randomCount int, seed int64) []Case {
	specials := SpecialValues(width)
	directed := DirectedValues(width)
	all := append(append([]uint64{}, specials...), directed...)

	isSpecial := make(map[uint64]bool, len(specials))
	for _, v := range specials {
		isSpecial[v] = true
	}

	var cases []Case
	add := func(a, b uint64) {
		cases = append(cases, Case{Op: op, A: a, B: b, Width: width, Mode: mode})
	}

	for _, a := range all {
		for _, b := range all {
			if isSpecial[a] || isSpecial[b] {
				add(a, b)
				add(b, a)
			}
		}
	}
	for _, a := range directed {
		for _, b := range directed {
			add(a, b)
		}
	}

	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < randomCount; i++ {
		add(RandomNormal(rnd, width), RandomNormal(rnd, width))
	}
	return cases
}
