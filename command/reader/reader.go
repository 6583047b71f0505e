/*
 * fpmodel - Command reader.
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

package reader

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/peterh/liner"
	"github.com/rcornwell/fpmodel/command/command"
)

// ConsoleReader runs the interactive console until quit, exit or an
// aborted prompt. defMode is the rounding mode for commands that do not
// name one.
func ConsoleReader(defMode string) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(line string) []string {
		var matches []string
		for _, name := range command.Names {
			if strings.HasPrefix(name, strings.ToLower(line)) {
				matches = append(matches, name)
			}
		}
		return matches
	})

	for {
		text, err := line.Prompt("fpmodel> ")
		if err == nil {
			line.AppendHistory(text)
			args := strings.Fields(text)
			if len(args) == 0 {
				continue
			}
			if args[0] == "quit" || args[0] == "exit" {
				return
			}
			result, err := command.Run(args, defMode)
			if err != nil {
				fmt.Println("Error: " + err.Error())
				continue
			}
			fmt.Println(result)
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			return
		} else {
			slog.Error("error reading line: " + err.Error())
		}
	}
}
