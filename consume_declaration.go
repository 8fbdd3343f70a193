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

import "github.com/fschutt/simplecss/token"

// consumeDeclaration parses one token from inside a declaration block:
// a nested selector, a nested at-rule, a property/value declaration, or
// a BlockStart/BlockEnd for further nesting.
func (t *Tokenizer) consumeDeclaration() (token.Token, error) {
	t.stream.SkipSpaces()

	switch t.stream.CurrCharRaw() {
	case '}':
		if len(t.nestingStack) > 0 {
			t.nestingStack = t.nestingStack[:len(t.nestingStack)-1]
		}
		switch t.mode {
		case modeDeclarationRule:
			t.mode = modeDeclaration
		case modeDeclaration:
			if len(t.nestingStack) == 0 {
				t.mode = modeRule
			} else {
				t.mode = modeDeclaration
			}
		}
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Block(false), nil

	case '{':
		t.nestingStack = append(t.nestingStack, t.hasAtRule)
		t.hasAtRule = false
		switch t.mode {
		case modeRule:
			t.mode = modeDeclaration
		case modeDeclaration:
			t.mode = modeDeclarationRule
		}
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Block(true), nil

	case '@':
		t.afterSelector = true
		t.hasAtRule = true
		t.stream.AdvanceRaw(1)
		ident, err := t.consumeIdent()
		if err != nil {
			return token.Token{}, err
		}
		t.stream.SkipSpaces()
		return token.At(ident), nil

	case ':':
		t.afterSelector = true
		t.hasAtRule = false
		return t.consumePseudo()

	case '.':
		t.afterSelector = true
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		ident, err := t.consumeIdent()
		if err != nil {
			return token.Token{}, err
		}
		return token.Class(ident), nil

	case '#':
		t.afterSelector = true
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		ident, err := t.consumeIdent()
		if err != nil {
			return token.Token{}, err
		}
		return token.ID(ident), nil

	case '*':
		t.afterSelector = true
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Universal(), nil

	case '[':
		t.afterSelector = true
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		n, err := t.stream.LengthTo(']')
		if err != nil {
			return token.Token{}, t.errAt()
		}
		raw := t.stream.ReadRawStr(n)
		t.stream.AdvanceRaw(1) // ']'
		t.stream.SkipSpaces()
		return token.Attribute(raw), nil

	case '>':
		t.afterSelector = false
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Comb(token.Child), nil

	case '+':
		t.afterSelector = false
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Comb(token.AdjacentSibling), nil

	case '~':
		t.afterSelector = false
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Comb(token.GeneralSibling), nil

	case ',':
		t.afterSelector = false
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.CommaTok(), nil

	case '(':
		if t.hasAtRule {
			raw, err := t.consumeParenthesized()
			if err != nil {
				return token.Token{}, err
			}
			t.afterSelector = true
			return token.AtGroup(raw), nil
		}
		return t.consumeDeclarationTail()

	case '/':
		ok, err := t.consumeComment()
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			return token.Token{}, t.errAt()
		}
		return t.Next()

	default:
		return t.consumeDeclarationTail()
	}
}

// consumeDeclarationTail handles the final "anything else" arm of
// consumeDeclaration: inside an @-rule head it is always an AtStr
// identifier; otherwise it reads a name and then decides, by what
// follows, whether that name starts a nested type selector or a
// property: value declaration.
func (t *Tokenizer) consumeDeclarationTail() (token.Token, error) {
	if t.hasAtRule {
		ident, err := t.consumeIdent()
		if err != nil {
			return token.Token{}, err
		}
		t.stream.SkipSpaces()
		t.afterSelector = true
		return token.AtIdent(ident), nil
	}

	name, err := t.consumeIdent()
	if err != nil {
		return token.Token{}, err
	}

	t.stream.SkipSpaces()

	isSlash, err := t.stream.IsCharEq('/')
	if err == nil && isSlash {
		ok, err := t.consumeComment()
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			return token.Token{}, t.errAt()
		}
	}

	isBrace, err := t.stream.IsCharEq('{')
	if err == nil && isBrace {
		if name == "" {
			return token.Token{}, t.errAt()
		}
		t.afterSelector = true
		return token.Type(name), nil
	}

	isColon, err := t.stream.IsCharEq(':')
	if err != nil || !isColon {
		// Not a declaration: treat the identifier as a nested type
		// selector. This also covers the case where the stream ended
		// right after the identifier.
		t.afterSelector = true
		return token.Type(name), nil
	}

	t.stream.AdvanceRaw(1) // ':'
	t.stream.SkipSpaces()

	isSlash, err = t.stream.IsCharEq('/')
	if err == nil && isSlash {
		ok, err := t.consumeComment()
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			return token.Token{}, t.errAt()
		}
	}

	n, err := t.stream.LengthToEither([]byte{';', '}'})
	if err != nil {
		return token.Token{}, t.errAt()
	}
	if n == 0 {
		return token.Token{}, t.errAt()
	}

	value := t.stream.ReadRawStr(n)
	value = rtrimSpace(value)

	t.stream.SkipSpaces()
	for {
		isSemi, err := t.stream.IsCharEq(';')
		if err != nil || !isSemi {
			break
		}
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
	}

	return token.Decl(name, value), nil
}

// rtrimSpace trims trailing ASCII whitespace (space, tab, LF, CR, FF),
// mirroring bytestream's whitespace class exactly so a declaration
// value's trailing trim never diverges from what SkipSpaces would skip.
func rtrimSpace(s string) string {
	i := len(s)
	for i > 0 {
		switch s[i-1] {
		case ' ', '\t', '\n', '\r', '\f':
			i--
			continue
		}
		break
	}
	return s[:i]
}
