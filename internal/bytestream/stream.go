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

// Package bytestream implements the byte-level cursor primitive that the
// CSS tokenizer is built on: absolute position accounting, ASCII
// whitespace/identifier classification, and borrowed-slice reads over an
// immutable buffer, optionally windowed to a (start, end) sub-range so
// that error positions stay absolute within a larger containing
// document (e.g. CSS embedded in HTML).
//
// Every read returns a slice of the original buffer; Stream never
// allocates or copies.
package bytestream

import "fmt"

// ErrEndOfStream is returned by operations that require at least one
// more byte when the cursor has reached the end of the stream's window.
var ErrEndOfStream = fmt.Errorf("bytestream: end of stream")

// ErrNotFound is returned by LengthTo and LengthToEither when the
// requested delimiter does not occur before the end of the stream.
var ErrNotFound = fmt.Errorf("bytestream: delimiter not found")

// ErrPastEnd is returned by Advance when asked to move the cursor past
// the end of the stream's window.
var ErrPastEnd = fmt.Errorf("bytestream: advance past end")

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

func isIdent(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_':
		return true
	default:
		return false
	}
}

// Stream is a cursor over a byte buffer, optionally bounded to a
// sub-range of it. The zero value is not usable; construct one with New
// or NewBounded.
type Stream struct {
	buf      []byte
	pos, end int
}

// New constructs a Stream over the entirety of buf.
func New(buf []byte) *Stream {
	return NewBounded(buf, 0, len(buf))
}

// NewBounded constructs a Stream whose cursor starts at start and whose
// AtEnd triggers at end, but whose reported positions (Pos, ErrorPos)
// remain absolute within buf. start and end must satisfy
// 0 <= start <= end <= len(buf).
func NewBounded(buf []byte, start, end int) *Stream {
	if start < 0 || end > len(buf) || start > end {
		panic("bytestream: invalid bounds")
	}
	return &Stream{buf: buf, pos: start, end: end}
}

// Pos returns the current absolute byte offset of the cursor.
func (s *Stream) Pos() int { return s.pos }

// AtEnd reports whether the cursor has reached the end of the window.
func (s *Stream) AtEnd() bool { return s.pos >= s.end }

// CurrChar returns the byte at the cursor, or ErrEndOfStream if AtEnd.
func (s *Stream) CurrChar() (byte, error) {
	if s.AtEnd() {
		return 0, ErrEndOfStream
	}
	return s.buf[s.pos], nil
}

// CurrCharRaw returns the byte at the cursor without checking AtEnd.
// Its result is undefined (but does not panic, as long as pos < len(buf))
// when called at end; callers must guard with AtEnd first.
func (s *Stream) CurrCharRaw() byte {
	if s.pos >= len(s.buf) {
		return 0
	}
	return s.buf[s.pos]
}

// Advance moves the cursor forward n bytes, returning ErrPastEnd (and
// leaving the cursor unmoved) if that would move it past the window end.
func (s *Stream) Advance(n int) error {
	if s.pos+n > s.end {
		return ErrPastEnd
	}
	s.pos += n
	return nil
}

// AdvanceRaw moves the cursor forward n bytes without bounds checking.
func (s *Stream) AdvanceRaw(n int) { s.pos += n }

// SkipSpaces advances past a run of ASCII whitespace (space, tab, LF,
// CR, FF).
func (s *Stream) SkipSpaces() {
	for !s.AtEnd() && isSpace(s.buf[s.pos]) {
		s.pos++
	}
}

// IsSpaceRaw reports whether the current byte is ASCII whitespace.
// Undefined at end.
func (s *Stream) IsSpaceRaw() bool { return isSpace(s.CurrCharRaw()) }

// IsIdentRaw reports whether the current byte is a valid identifier
// byte: ASCII letters, digits, '-', or '_'. Non-ASCII bytes are
// rejected, which is how e.g. a literal '.' followed by a multi-byte
// UTF-8 rune produces an UnknownToken at the byte after the '.'.
// Undefined at end.
func (s *Stream) IsIdentRaw() bool { return isIdent(s.CurrCharRaw()) }

// IsCharEq reports whether the current byte equals b, or propagates
// ErrEndOfStream if the cursor is at end.
func (s *Stream) IsCharEq(b byte) (bool, error) {
	c, err := s.CurrChar()
	if err != nil {
		return false, err
	}
	return c == b, nil
}

// LengthTo returns the number of bytes between the cursor and the next
// occurrence of b (exclusive), or ErrNotFound if b does not occur before
// the window ends.
func (s *Stream) LengthTo(b byte) (int, error) {
	for i := s.pos; i < s.end; i++ {
		if s.buf[i] == b {
			return i - s.pos, nil
		}
	}
	return 0, ErrNotFound
}

// LengthToEither returns the number of bytes between the cursor and the
// first occurrence of any byte in set (exclusive), or ErrNotFound if
// none occur before the window ends.
func (s *Stream) LengthToEither(set []byte) (int, error) {
	for i := s.pos; i < s.end; i++ {
		for _, b := range set {
			if s.buf[i] == b {
				return i - s.pos, nil
			}
		}
	}
	return 0, ErrNotFound
}

// ReadRawStr returns a borrowed slice of the next n bytes and advances
// the cursor past them. It does not bounds-check against the window end;
// callers are expected to have derived n from LengthTo/LengthToEither.
func (s *Stream) ReadRawStr(n int) string {
	str := string(s.buf[s.pos : s.pos+n])
	s.pos += n
	return str
}

// SliceRegionRawStr returns a borrowed slice [a, b) of the underlying
// buffer without moving the cursor.
func (s *Stream) SliceRegionRawStr(a, b int) string {
	return string(s.buf[a:b])
}

// Pos1 is a 1-based (line, column) position, computed lazily from an
// absolute byte offset rather than tracked incrementally in the hot
// path. Columns count bytes, not codepoints or grapheme clusters; LF is
// the only recognized line separator.
type Pos1 struct {
	Line, Col uint32
}

// ErrorPos computes the 1-based (line, column) of the current cursor
// position, counting from the start of the whole underlying buffer (not
// just the window), so that a bounded Stream still reports positions
// absolute within the containing document.
func (s *Stream) ErrorPos() Pos1 {
	return PosAt(s.buf, s.pos)
}

// PosAt computes the 1-based (line, column) of the absolute byte offset
// off within buf.
func PosAt(buf []byte, off int) Pos1 {
	if off > len(buf) {
		off = len(buf)
	}
	line := uint32(1)
	lineStart := 0
	for i := 0; i < off; i++ {
		if buf[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return Pos1{Line: line, Col: uint32(off-lineStart) + 1}
}
