/*
 * fpmodel - Path comment checker entry point.
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
	pathcomment "github.com/rcornwell/fpmodel/pathcomment"
	logger "github.com/rcornwell/fpmodel/util/logger"
)

func main() {
	optDryRun := getopt.BoolLong("dryrun", 'n', "List files that need fixing without changing them")
	optFix := getopt.BoolLong("fix", 'f', "Rewrite non-compliant files")
	optRecursive := getopt.BoolLong("recursive", 'r', "Traverse directories recursively")
	optExclude := getopt.ListLong("exclude", 'e', "Path or pattern to exclude, repeatable")
	optNoGitignore := getopt.BoolLong("no-gitignore", 0, "Do not take excludes from .gitignore files")
	optMap := getopt.ListLong("map", 'm', "Extension map entry '.ext1,.ext2:prefix', repeatable")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("folder")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	log := logger.Setup(*optLogFile, optDebug)

	args := getopt.Args()
	if len(args) != 1 || *optDryRun == *optFix {
		getopt.Usage()
		os.Exit(1)
	}

	mapConfig := *optMap
	if len(mapConfig) == 0 {
		mapConfig = pathcomment.DefaultCommentMap
	}
	commentMap, err := pathcomment.ParseCommentMap(mapConfig)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	flagged, err := pathcomment.Scan(pathcomment.Options{
		Root:        args[0],
		Fix:         *optFix,
		Recursive:   *optRecursive,
		NoGitignore: *optNoGitignore,
		Excludes:    *optExclude,
		CommentMap:  commentMap,
	}, os.Stdout)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	fmt.Printf("Scan complete. %d files flagged.\n", flagged)
	if flagged != 0 && *optDryRun {
		os.Exit(1)
	}
}
