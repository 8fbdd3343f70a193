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

// Package simplecss implements a streaming, zero-copy CSS tokenizer.
//
// A [Tokenizer] converts UTF-8 CSS source bytes into a linear sequence
// of [token.Token] values suitable for downstream selector matching and
// declaration processing. Call [New] (or [NewBound] for CSS embedded in
// a larger document) and then call [Tokenizer.Next] repeatedly until it
// returns a token of kind token.EndOfStream.
//
// The tokenizer recognizes a context-sensitive grammar: the meaning of
// a byte depends on whether the cursor is in a rule head, a declaration
// block, or a nested block reached from within one. It never allocates
// for token payloads — every string field on a returned [token.Token]
// is a slice of the buffer the Tokenizer was constructed over — and it
// never recovers from an error: once [Tokenizer.Next] returns an error,
// the caller decides whether to continue.
package simplecss

import (
	"github.com/fschutt/simplecss/internal/bytestream"
	"github.com/fschutt/simplecss/token"
)

// mode selects which of the two consume procedures Next dispatches to.
// It cannot collapse to a single boolean because a nested rule
// re-enters selector syntax from within a declaration context: the
// DeclarationRule mode exists purely to remember, on the matching '}',
// that the enclosing context was itself a declaration block rather than
// the top-level rule mode.
type mode byte

const (
	modeRule mode = iota
	modeDeclaration
	modeDeclarationRule
)

// Tokenizer is a pull-style CSS tokenizer: each call to Next returns
// exactly one token or an error. A Tokenizer holds no heap data besides
// its nesting stack and borrows its source buffer read-only for its
// entire lifetime; it is not safe for concurrent use by multiple
// goroutines, but distinct Tokenizers over distinct buffers are fully
// independent (see package batch for running many of them concurrently).
type Tokenizer struct {
	stream *bytestream.Stream

	mode mode

	// afterSelector is set when the last emitted token completes a
	// compound selector, so that a following whitespace byte becomes a
	// descendant combinator instead of being silently skipped.
	afterSelector bool

	// hasAtRule is set while parsing the head of an @-rule, so that a
	// following '(' is consumed as a parenthesized AtStr group and a
	// following bare identifier is emitted as AtStr rather than
	// TypeSelector.
	hasAtRule bool

	// atStart is cleared after the first call to Next; only the very
	// first call skips leading whitespace before classifying the
	// current byte.
	atStart bool

	// nestingStack records, for each open '{', whether the block at
	// that depth was introduced by an @-rule. It is pushed on every
	// BlockStart and popped on every matching BlockEnd.
	nestingStack []bool
}

// New constructs a Tokenizer over text.
func New(text []byte) *Tokenizer {
	return &Tokenizer{
		stream:  bytestream.New(text),
		mode:    modeRule,
		atStart: true,
	}
}

// NewBound constructs a Tokenizer over the window [start, end) of text.
// This is useful when CSS data is embedded in a larger document, such
// as a <style> block in HTML: error positions reported by the resulting
// Tokenizer are absolute within text rather than relative to the
// window. See also package region, which locates such windows.
func NewBound(text []byte, start, end int) *Tokenizer {
	return &Tokenizer{
		stream:  bytestream.NewBounded(text, start, end),
		mode:    modeRule,
		atStart: true,
	}
}

// Pos returns the tokenizer's current absolute byte offset into the
// buffer it was constructed over. Useful for error recovery by a
// higher-level consumer that wants to resynchronize after an error.
func (t *Tokenizer) Pos() int {
	return t.stream.Pos()
}

// Next parses and returns the next token, or an error if the input at
// the cursor cannot be classified. EndOfStream is absorbing: once
// returned, every subsequent call to Next returns EndOfStream again
// without moving the cursor or allocating.
func (t *Tokenizer) Next() (token.Token, error) {
	if t.atStart {
		t.stream.SkipSpaces()
		t.atStart = false
	}

	if t.stream.AtEnd() {
		return token.EOF(), nil
	}

	switch t.mode {
	case modeRule:
		return t.consumeRule()
	default: // modeDeclaration, modeDeclarationRule
		return t.consumeDeclaration()
	}
}

// errAt builds an UnknownToken error at the stream's current position.
func (t *Tokenizer) errAt() error {
	return Error{Kind: UnknownToken, Pos: posFrom(t.stream.ErrorPos())}
}

// consumeIdent advances over a run of identifier bytes and returns the
// consumed slice. An empty match is an UnknownToken error at the
// position where classification failed.
func (t *Tokenizer) consumeIdent() (string, error) {
	start := t.stream.Pos()
	for !t.stream.AtEnd() && t.stream.IsIdentRaw() {
		if err := t.stream.Advance(1); err != nil {
			break
		}
	}
	if start == t.stream.Pos() {
		return "", t.errAt()
	}
	return t.stream.SliceRegionRawStr(start, t.stream.Pos()), nil
}

// consumeComment assumes the caller has not yet consumed the leading
// '/'. It returns true if a complete "/* ... */" comment was consumed,
// false if the '/' does not begin a comment at all (in which case the
// cursor has still advanced past the '/', and the caller raises
// UnknownToken).
func (t *Tokenizer) consumeComment() (bool, error) {
	t.stream.AdvanceRaw(1) // '/'

	isStar, err := t.stream.IsCharEq('*')
	if err != nil {
		return false, nil //nolint:nilerr // end of stream after '/' means "not a comment"
	}
	if !isStar {
		return false, nil
	}
	t.stream.AdvanceRaw(1) // '*'

	for !t.stream.AtEnd() {
		n, err := t.stream.LengthTo('*')
		if err != nil {
			return false, t.errAt()
		}
		if err := t.stream.Advance(n + 1); err != nil {
			return false, t.errAt()
		}
		closed, err := t.stream.IsCharEq('/')
		if err != nil {
			return false, t.errAt()
		}
		if closed {
			t.stream.AdvanceRaw(1)
			break
		}
	}
	return true, nil
}

// consumeParenthesized requires the cursor to be at '(' and scans a
// balanced group, skipping over single- or double-quoted strings with
// backslash escapes honored. It returns the slice from the opening '('
// through and including the matching ')'.
func (t *Tokenizer) consumeParenthesized() (string, error) {
	open, err := t.stream.IsCharEq('(')
	if err != nil || !open {
		return "", t.errAt()
	}

	start := t.stream.Pos()
	t.stream.AdvanceRaw(1)
	depth := 1

	for !t.stream.AtEnd() && depth > 0 {
		switch t.stream.CurrCharRaw() {
		case '(':
			depth++
			t.stream.AdvanceRaw(1)
		case ')':
			depth--
			t.stream.AdvanceRaw(1)
		case '"', '\'':
			quote := t.stream.CurrCharRaw()
			t.stream.AdvanceRaw(1)
			for !t.stream.AtEnd() {
				c := t.stream.CurrCharRaw()
				t.stream.AdvanceRaw(1)
				if c == quote {
					break
				}
				if c == '\\' && !t.stream.AtEnd() {
					t.stream.AdvanceRaw(1)
				}
			}
		default:
			t.stream.AdvanceRaw(1)
		}
	}

	if depth != 0 {
		return "", t.errAt()
	}

	end := t.stream.Pos()
	s := t.stream.SliceRegionRawStr(start, end)
	t.stream.SkipSpaces()
	return s, nil
}

// consumePseudo handles the ':' lead shared verbatim between
// consumeRule and consumeDeclaration: an optional second ':' makes it a
// DoublePseudoClass, followed by a name and an optional "(...)" argument.
func (t *Tokenizer) consumePseudo() (token.Token, error) {
	t.stream.AdvanceRaw(1) // ':'

	doubled, err := t.stream.IsCharEq(':')
	if err != nil {
		doubled = false
	}
	if doubled {
		t.stream.AdvanceRaw(1)
	}

	name, err := t.consumeIdent()
	if err != nil {
		return token.Token{}, err
	}

	isParen, _ := t.stream.IsCharEq('(')
	if isParen {
		t.stream.AdvanceRaw(1)
		n, err := t.stream.LengthTo(')')
		if err != nil {
			return token.Token{}, t.errAt()
		}
		inner := t.stream.ReadRawStr(n)
		t.stream.AdvanceRaw(1) // ')'
		if doubled {
			return token.DoublePseudo(name, inner, true), nil
		}
		return token.Pseudo(name, inner, true), nil
	}

	if doubled {
		return token.DoublePseudo(name, "", false), nil
	}
	return token.Pseudo(name, "", false), nil
}
