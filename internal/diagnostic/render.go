// Copyright 2026 The csslex Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diagnostic renders a human-readable source snippet for a
// tokenizer error: the offending line, prefixed with its line number,
// and a caret pointing at the byte column where classification failed.
//
// Caret placement accounts for grapheme cluster width rather than byte
// or rune count, so a caret under a line containing wide or combining
// characters still lines up visually in a monospace terminal.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/fschutt/simplecss"
)

// Render produces a multi-line string reporting err's position within
// src: the offending line, prefixed with its line number, and a caret
// pointing at err's column. name, if non-empty, prefixes the message
// the way a file path would ("name: UnknownToken at 3:5").
//
//	<name>: <message>
//	  <line> | <source line>
//	          | <spaces><caret>
//
// The caret's horizontal offset is computed from the display width of
// the grapheme clusters preceding the column, not from its byte
// offset, so it still lands under the right character when the line
// contains multi-byte UTF-8 or combining sequences.
func Render(err simplecss.Error, src []byte, name string) string {
	text := Line(src, lineOffset(src, err.Pos.Line))

	message := err.Error()
	if name != "" {
		message = name + ": " + message
	}

	return renderSnippet(snippet{
		line:    err.Pos.Line,
		col:     err.Pos.Col,
		text:    text,
		message: message,
	})
}

// snippet is the fully-resolved input to renderSnippet: the line text
// and the (line, col) to place the caret at, decoupled from any
// particular error type so the rendering logic itself has no
// dependency on simplecss.Error's shape.
type snippet struct {
	line, col uint32
	text      string
	message   string
}

func renderSnippet(s snippet) string {
	gutter := fmt.Sprintf("%d", s.line)
	pad := strings.Repeat(" ", len(gutter))

	col := int(s.col) - 1
	if col < 0 {
		col = 0
	}
	if col > len(s.text) {
		col = len(s.text)
	}

	caretCol := uniseg.StringWidth(s.text[:col])

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.message)
	fmt.Fprintf(&b, "  %s | %s\n", gutter, s.text)
	fmt.Fprintf(&b, "  %s | %s^\n", pad, strings.Repeat(" ", caretCol))
	return b.String()
}

// Line extracts, from src, the full line containing the 0-based byte
// offset off (without its trailing newline).
func Line(src []byte, off int) string {
	if off < 0 {
		off = 0
	}
	if off > len(src) {
		off = len(src)
	}

	start := off
	for start > 0 && src[start-1] != '\n' {
		start--
	}

	end := off
	for end < len(src) && src[end] != '\n' {
		end++
	}

	return string(src[start:end])
}

// lineOffset returns the byte offset of the first byte of the given
// 1-based line number within src, counting newlines the same way
// bytestream.PosAt does.
func lineOffset(src []byte, lineNo uint32) int {
	if lineNo <= 1 {
		return 0
	}
	line := uint32(1)
	for i, b := range src {
		if b == '\n' {
			line++
			if line == lineNo {
				return i + 1
			}
		}
	}
	return len(src)
}
