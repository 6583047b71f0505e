/*
 * fpmodel - Command execution.
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

// Package command executes the fpmodel command set, shared between the
// one-shot command line and the interactive console.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rcornwell/fpmodel/fp/adder"
	"github.com/rcornwell/fpmodel/fp/format"
	"github.com/rcornwell/fpmodel/fp/multiplier"
	"github.com/rcornwell/fpmodel/fp/render"
	"github.com/rcornwell/fpmodel/util/operand"
)

// Usage describes the command grammar for help output.
const Usage = `Commands:
  add <width> <a> <b> [mode]   Add two encoded operands
  mul <width> <a> <b> [mode]   Multiply two encoded operands
  print <width> <value>...     Print encodings as float/scientific
Operands accept 0x, 0b, 0o prefixes or plain decimal.
Widths: 16 32 64. Modes: rne rtz rpi rni rna.`

// Names lists the command verbs, for console completion.
var Names = []string{"add", "mul", "print", "help"}

// Run executes one parsed command line. defMode applies when the
// command does not name a rounding mode. Results are rendered in the
// base the first operand used.
func Run(args []string, defMode string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("no command given")
	}

	switch strings.ToLower(args[0]) {
	case "add", "mul":
		return runOp(args, defMode)
	case "print":
		return runPrint(args)
	case "help":
		return Usage, nil
	default:
		return "", fmt.Errorf("unknown command %q", args[0])
	}
}

func parseWidth(text string) (int, error) {
	width, err := strconv.Atoi(text)
	if err != nil {
		return 0, format.ErrInvalidWidth
	}
	if _, err := format.Lookup(width); err != nil {
		return 0, err
	}
	return width, nil
}

func runOp(args []string, defMode string) (string, error) {
	if len(args) < 4 || len(args) > 5 {
		return "", fmt.Errorf("usage: %s <width> <a> <b> [mode]", args[0])
	}
	width, err := parseWidth(args[1])
	if err != nil {
		return "", err
	}
	a, err := operand.Parse(args[2], width)
	if err != nil {
		return "", err
	}
	b, err := operand.Parse(args[3], width)
	if err != nil {
		return "", err
	}
	modeTok := defMode
	if len(args) == 5 {
		modeTok = args[4]
	}
	mode, err := format.ParseMode(modeTok)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, modeTok)
	}

	var result uint64
	if strings.EqualFold(args[0], "mul") {
		result, err = multiplier.Mul(a, b, width, mode)
	} else {
		result, err = adder.Add(a, b, width, mode)
	}
	if err != nil {
		return "", err
	}

	// Answer in the base the first operand was given in.
	base, _ := operand.DetectBase(args[2])
	return base.Prefix() + operand.Format(result, width, base), nil
}

func runPrint(args []string) (string, error) {
	if len(args) < 3 {
		return "", errors.New("usage: print <width> <value>...")
	}
	width, err := parseWidth(args[1])
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for i, text := range args[2:] {
		val, err := render.ParseValue(text, width)
		if err != nil {
			return "", err
		}
		if i > 0 {
			out.WriteByte('\n')
		}
		fmt.Fprintf(&out, "%s -> %s", text, render.FormatValue(val, width))
	}
	return out.String(), nil
}
