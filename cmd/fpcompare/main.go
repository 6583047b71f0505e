/*
 * fpmodel - Differential campaign driver.
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

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	getopt "github.com/pborman/getopt/v2"
	compare "github.com/rcornwell/fpmodel/compare"
	format "github.com/rcornwell/fpmodel/fp/format"
	oracle "github.com/rcornwell/fpmodel/oracle"
	logger "github.com/rcornwell/fpmodel/util/logger"
)

func main() {
	optWidth := getopt.IntLong("width", 'w', 16, "Operand width")
	optCount := getopt.IntLong("count", 'c', 1000, "Random vectors per mode and operation")
	optSeed := getopt.Int64Long("seed", 's', 1, "Random vector seed")
	optWorkers := getopt.IntLong("workers", 'j', runtime.NumCPU(), "Worker count")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	log := logger.Setup(*optLogFile, optDebug)

	if _, err := format.Lookup(*optWidth); err != nil {
		log.Error(fmt.Sprintf("invalid width %d", *optWidth))
		os.Exit(1)
	}

	ref := oracle.New()
	defer ref.Close()
	harness := compare.New(ref, *optWorkers)
	ctx := context.Background()

	rowFmt := "%-8s %-15s %-20s %-20s\n"
	fmt.Printf(rowFmt, "Verdict", "Rounding Mode", "ADD (errors/total)", "MUL (errors/total)")

	failures := uint64(0)
	for _, mode := range format.Modes {
		var reports [2]compare.Report
		for i, op := range []compare.Op{compare.OpAdd, compare.OpMul} {
			cases := compare.Campaign(op, *optWidth, mode, *optCount, *optSeed)
			report, err := harness.Run(ctx, cases)
			if err != nil {
				log.Error(err.Error())
				os.Exit(1)
			}
			reports[i] = report
			failures += report.Failed
		}

		verdict := "PASS"
		if reports[0].Failed+reports[1].Failed != 0 {
			verdict = "FAIL"
		}
		fmt.Printf(rowFmt, verdict, mode.String(),
			fmt.Sprintf("%d/%d", reports[0].Failed, reports[0].Total),
			fmt.Sprintf("%d/%d", reports[1].Failed, reports[1].Total))
	}

	if failures != 0 {
		log.Error(fmt.Sprintf("%d mismatches at width %d", failures, *optWidth))
		os.Exit(1)
	}
	log.Info(fmt.Sprintf("all campaigns passed at width %d", *optWidth))
}
