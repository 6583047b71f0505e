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

// Package compare drives the add and multiply models and a comparison
// oracle over identical operand/mode vectors and scores the results.
package compare

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rcornwell/fpmodel/fp/adder"
	"github.com/rcornwell/fpmodel/fp/classify"
	"github.com/rcornwell/fpmodel/fp/codec"
	"github.com/rcornwell/fpmodel/fp/format"
	"github.com/rcornwell/fpmodel/fp/multiplier"
)

// Op selects the operation under test.
type Op int

const (
	OpAdd Op = iota
	OpMul
)

func (op Op) String() string {
	if op == OpMul {
		return "mul"
	}
	return "add"
}

// Oracle is the comparison reference: one function per operation over
// encoded operands. The harness owns invocation and scoring only; the
// caller owns the oracle's lifetime.
type Oracle interface {
	Add(a, b uint64, width int, mode format.Mode) (uint64, error)
	Mul(a, b uint64, width int, mode format.Mode) (uint64, error)
}

// Case is a single operand/mode vector.
type Case struct {
	Op    Op
	A, B  uint64
	Width int
	Mode  format.Mode
}

// Mismatch records a scored difference between model and oracle.
type Mismatch struct {
	Case
	Model  uint64
	Oracle uint64
}

func (m Mismatch) String() string {
	digits := m.Width / 4
	return fmt.Sprintf("fp%d_%s(0x%0*x, 0x%0*x, %s) model: 0x%0*x oracle: 0x%0*x",
		m.Width, m.Op, digits, m.A, digits, m.B, m.Mode,
		digits, m.Model, digits, m.Oracle)
}

// Report is the outcome of one campaign run.
type Report struct {
	Total      uint64
	Failed     uint64
	Mismatches []Mismatch
}

// Harness fans vectors across workers and accumulates a scoreboard.
type Harness struct {
	oracle  Oracle
	workers int
	log     *slog.Logger
}

// New builds a harness around a caller-owned oracle. workers <= 0 means
// one worker per vector batch.
func New(o Oracle, workers int) *Harness {
	if workers <= 0 {
		workers = 4
	}
	return &Harness{oracle: o, workers: workers, log: slog.Default()}
}

// Canonicalize folds every NaN onto the canonical quiet NaN and -0 onto
// +0, so equivalent special results score as matches.
func Canonicalize(bits uint64, width int) uint64 {
	p, err := format.Lookup(width)
	if err != nil {
		return bits
	}
	_, exp, frac, _ := codec.Decode(bits, width)
	cat, _ := classify.Classify(exp, frac, width)
	if cat.IsNaN() {
		return p.QuietNaN()
	}
	if bits == p.SignBit() {
		return 0
	}
	return bits
}

// Run scores all cases, fanning them across the harness worker pool.
// The pass/fail counters use atomics; mismatch details are merged under
// a lock after each worker scores its vector.
func (h *Harness) Run(ctx context.Context, cases []Case) (Report, error) {
	var total, failed atomic.Uint64
	var mu sync.Mutex
	var mismatches []Mismatch

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(h.workers)

	for _, c := range cases {
		c := c
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var model, ref uint64
			var err error
			if c.Op == OpMul {
				model, err = multiplier.Mul(c.A, c.B, c.Width, c.Mode)
				if err == nil {
					ref, err = h.oracle.Mul(c.A, c.B, c.Width, c.Mode)
				}
			} else {
				model, err = adder.Add(c.A, c.B, c.Width, c.Mode)
				if err == nil {
					ref, err = h.oracle.Add(c.A, c.B, c.Width, c.Mode)
				}
			}
			if err != nil {
				return err
			}

			total.Add(1)
			if Canonicalize(model, c.Width) != Canonicalize(ref, c.Width) {
				failed.Add(1)
				m := Mismatch{Case: c, Model: model, Oracle: ref}
				h.log.Error("scoreboard mismatch", "case", m.String())
				mu.Lock()
				mismatches = append(mismatches, m)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Report{}, err
	}
	return Report{
		Total:      total.Load(),
		Failed:     failed.Load(),
		Mismatches: mismatches,
	}, nil
}
