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

package simplecss

import (
	"fmt"

	"github.com/fschutt/simplecss/internal/bytestream"
)

// ErrorKind identifies the category of a tokenizer [Error]. There is
// presently only one: the tokenizer never recovers, so every failure
// mode (an unexpected lead byte, an empty required identifier, an
// unbalanced parenthesized group, a stray combinator, a non-comment
// '/', or a zero-length declaration value) is reported the same way,
// distinguished only by position.
type ErrorKind int

const (
	// UnknownToken is the only ErrorKind the tokenizer produces.
	UnknownToken ErrorKind = iota
)

// String implements [fmt.Stringer].
func (k ErrorKind) String() string {
	switch k {
	case UnknownToken:
		return "UnknownToken"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ErrorPos is a 1-based (line, column) position computed from an
// absolute byte offset. Columns count bytes, not codepoints.
type ErrorPos struct {
	Line uint32
	Col  uint32
}

// String implements [fmt.Stringer].
func (p ErrorPos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

func posFrom(p bytestream.Pos1) ErrorPos {
	return ErrorPos{Line: p.Line, Col: p.Col}
}

// Error is the error type returned by [Tokenizer.Next]. It implements
// the standard error interface so it composes with errors.As and
// friends, while still exposing the structured Kind and Pos fields a
// caller needs to report a byte-accurate diagnostic.
type Error struct {
	Kind ErrorKind
	Pos  ErrorPos
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Pos)
}
