/*
 * fpmodel - Path comment checker.
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

// Package pathcomment checks that source files start with a comment
// naming their path relative to the repository root, and can rewrite
// files that do not.
package pathcomment

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultCommentMap maps common source extensions to their single line
// comment prefix. Override with the --map option.
var DefaultCommentMap = []string{
	".py,.sh:#",
	".h,.c,.cpp,.hpp,.java,.js,.ts,.go,.rs://",
	".v,.vh,.sv,.svh://",
}

// Options controls a scan.
type Options struct {
	Root        string
	Fix         bool
	Recursive   bool
	NoGitignore bool
	Excludes    []string
	CommentMap  map[string]string
}

// ParseCommentMap expands entries of the form ".ext1,.ext2:prefix" into
// an extension to comment prefix map.
func ParseCommentMap(config []string) (map[string]string, error) {
	commentMap := map[string]string{}
	for _, item := range config {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid map format %q, expected '.ext1,.ext2:prefix'", item)
		}
		if parts[1] == "" {
			return nil, fmt.Errorf("empty comment prefix for extensions %q", parts[0])
		}
		for _, ext := range strings.Split(parts[0], ",") {
			if ext != "" {
				commentMap[ext] = parts[1]
			}
		}
	}
	return commentMap, nil
}

// Scan walks the tree under opts.Root, reporting each file whose header
// comment does not name its relative path. With opts.Fix set the files
// are rewritten. Returns the number of non-compliant files.
func Scan(opts Options, w io.Writer) (int, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return 0, err
	}
	patterns, err := buildIgnoreList(root, opts.NoGitignore, opts.Excludes)
	if err != nil {
		return 0, err
	}

	flagged := 0
	walk := func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if name != root && !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, name)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if excluded(rel, patterns) {
			return nil
		}
		changed, err := processFile(name, rel, opts.CommentMap, opts.Fix, w)
		if err != nil {
			return err
		}
		if changed {
			flagged++
		}
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return flagged, err
	}
	return flagged, nil
}

// buildIgnoreList merges the caller's exclude patterns with the
// patterns of every .gitignore under root. Patterns anchored with a
// leading slash apply from the scan root, the rest are taken relative
// to the directory of the .gitignore that holds them. Negation
// patterns are not supported.
func buildIgnoreList(root string, noGitignore bool, extra []string) ([]string, error) {
	patterns := make([]string, 0, len(extra))
	for _, p := range extra {
		patterns = append(patterns, filepath.ToSlash(p))
	}
	if noGitignore {
		return patterns, nil
	}

	walk := func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || entry.Name() != ".gitignore" {
			return nil
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		dir, err := filepath.Rel(root, filepath.Dir(name))
		if err != nil {
			return err
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if strings.HasPrefix(line, "/") {
				patterns = append(patterns, strings.TrimLeft(line, "/"))
			} else {
				patterns = append(patterns, path.Join(filepath.ToSlash(dir), line))
			}
		}
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, err
	}
	return patterns, nil
}

func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
		dir := strings.TrimSuffix(pattern, "/")
		if strings.HasPrefix(rel, dir+"/") {
			return true
		}
	}
	return false
}

// processFile checks one file and either reports or rewrites it.
// Returns true when the file needed action.
func processFile(name, rel string, commentMap map[string]string, fix bool, w io.Writer) (bool, error) {
	ext := filepath.Ext(name)
	prefix, ok := commentMap[ext]
	if !ok {
		return false, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return false, err
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	expected := prefix + " " + rel
	stem := strings.TrimSuffix(filepath.Base(name), ext)
	pathLike := regexp.MustCompile(`[a-zA-Z0-9/._-]*` + regexp.QuoteMeta(stem) + `[a-zA-Z0-9._-]*`)

	insertAt := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		insertAt = 1
	}

	// A Python module docstring stays at the top, the header goes
	// below it. Comments inside the docstring are not candidates for
	// replacement either.
	docEnd := -1
	if ext == ".py" {
		docEnd = docstringEnd(lines, insertAt)
		if docEnd != -1 {
			insertAt = docEnd + 1
		}
	}

	replaceAt := -1
	empty := true
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			empty = false
		}
		if trimmed == expected {
			return false, nil
		}
		if replaceAt == -1 && i > docEnd && strings.HasPrefix(trimmed, prefix) {
			content := strings.TrimSpace(trimmed[len(prefix):])
			if pathLike.MatchString(content) {
				replaceAt = i
			}
		}
	}

	switch {
	case replaceAt != -1:
		if fix {
			fmt.Fprintf(w, "[FIXING] %s (replacing line %d)\n", rel, replaceAt+1)
			lines[replaceAt] = expected + "\n"
		} else {
			fmt.Fprintf(w, "[NEEDS FIX] %s (would replace line %d)\n", rel, replaceAt+1)
		}
	case !empty:
		if fix {
			fmt.Fprintf(w, "[FIXING] %s (inserting header)\n", rel)
			lines = append(lines[:insertAt], append([]string{expected + "\n"}, lines[insertAt:]...)...)
		} else {
			fmt.Fprintf(w, "[NEEDS FIX] %s (would insert header)\n", rel)
		}
	default:
		return false, nil
	}

	if fix {
		info, err := os.Stat(name)
		if err != nil {
			return true, err
		}
		if err := os.WriteFile(name, []byte(strings.Join(lines, "")), info.Mode()); err != nil {
			return true, err
		}
	}
	return true, nil
}

// docstringEnd returns the index of the line closing a module level
// docstring that starts at the first non-blank line at or after start,
// or -1 when there is none.
func docstringEnd(lines []string, start int) int {
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(lines[i], " ") || strings.HasPrefix(lines[i], "\t") {
			return -1
		}
		var quote string
		switch {
		case strings.HasPrefix(trimmed, `"""`):
			quote = `"""`
		case strings.HasPrefix(trimmed, "'''"):
			quote = "'''"
		default:
			return -1
		}
		if len(trimmed) > len(quote) && strings.HasSuffix(trimmed, quote) {
			return i
		}
		for j := i + 1; j < len(lines); j++ {
			if strings.HasSuffix(strings.TrimSpace(lines[j]), quote) {
				return j
			}
		}
		return -1
	}
	return -1
}
