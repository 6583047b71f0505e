/*
 * fpmodel - Main process.
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
	"fmt"
	"os"

	getopt "github.com/pborman/getopt/v2"
	command "github.com/rcornwell/fpmodel/command/command"
	reader "github.com/rcornwell/fpmodel/command/reader"
	format "github.com/rcornwell/fpmodel/fp/format"
	logger "github.com/rcornwell/fpmodel/util/logger"
)

func main() {
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optMode := getopt.StringLong("round", 'r', "rne", "Default rounding mode")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("[command ...]")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		fmt.Println(command.Usage)
		os.Exit(0)
	}

	log := logger.Setup(*optLogFile, optDebug)

	if _, err := format.ParseMode(*optMode); err != nil {
		log.Error("invalid rounding mode: " + *optMode)
		os.Exit(1)
	}

	args := getopt.Args()
	if len(args) == 0 {
		log.Info("fpmodel console started")
		reader.ConsoleReader(*optMode)
		return
	}

	result, err := command.Run(args, *optMode)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	fmt.Println(result)
}
