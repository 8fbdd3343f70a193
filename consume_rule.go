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

// consumeRule parses one token from a rule head: selectors,
// combinators, and @-rule heads, up to (but not including) the '{'
// that starts a declaration block.
func (t *Tokenizer) consumeRule() (token.Token, error) {
	switch t.stream.CurrCharRaw() {
	case '@':
		t.afterSelector = true
		t.hasAtRule = true
		t.stream.AdvanceRaw(1)
		ident, err := t.consumeIdent()
		if err != nil {
			return token.Token{}, err
		}
		return token.At(ident), nil

	case '#':
		t.afterSelector = true
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		ident, err := t.consumeIdent()
		if err != nil {
			return token.Token{}, err
		}
		return token.ID(ident), nil

	case '.':
		t.afterSelector = true
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		ident, err := t.consumeIdent()
		if err != nil {
			return token.Token{}, err
		}
		return token.Class(ident), nil

	case '*':
		t.afterSelector = true
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Universal(), nil

	case ':':
		t.afterSelector = true
		t.hasAtRule = false
		return t.consumePseudo()

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

	case ',':
		t.afterSelector = false
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.CommaTok(), nil

	case '{':
		t.nestingStack = append(t.nestingStack, t.hasAtRule)
		t.afterSelector = false
		t.hasAtRule = false
		t.mode = modeDeclaration
		t.stream.AdvanceRaw(1)
		return token.Block(true), nil

	case '>':
		if !t.afterSelector {
			return token.Token{}, t.errAt()
		}
		t.afterSelector = false
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Comb(token.Child), nil

	case '+':
		if !t.afterSelector {
			return token.Token{}, t.errAt()
		}
		t.afterSelector = false
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Comb(token.AdjacentSibling), nil

	case '~':
		if !t.afterSelector {
			return token.Token{}, t.errAt()
		}
		t.afterSelector = false
		t.hasAtRule = false
		t.stream.AdvanceRaw(1)
		t.stream.SkipSpaces()
		return token.Comb(token.GeneralSibling), nil

	case '/':
		ok, err := t.consumeComment()
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			return token.Token{}, t.errAt()
		}
		return t.Next()

	case '(':
		if t.hasAtRule {
			raw, err := t.consumeParenthesized()
			if err != nil {
				return token.Token{}, err
			}
			t.afterSelector = true
			return token.AtGroup(raw), nil
		}
		return t.consumeRuleIdentOrSpace()

	default:
		return t.consumeRuleIdentOrSpace()
	}
}

// consumeRuleIdentOrSpace handles whitespace and the trailing "anything
// else" branch of consumeRule: either a descendant combinator, silently
// skipped insignificant whitespace, or an identifier (emitted as AtStr
// inside an @-rule head, TypeSelector otherwise).
func (t *Tokenizer) consumeRuleIdentOrSpace() (token.Token, error) {
	if t.stream.IsSpaceRaw() {
		t.stream.SkipSpaces()

		if !t.afterSelector {
			return t.Next()
		}

		c, err := t.stream.CurrChar()
		if err != nil {
			return token.Token{}, t.errAt()
		}
		switch c {
		case '{', '/', '>', '+', '~', '*', '(':
			return t.Next()
		default:
			t.afterSelector = false
			if !t.hasAtRule {
				return token.Comb(token.Space), nil
			}
		}
	}

	ident, err := t.consumeIdent()
	if err != nil {
		return token.Token{}, err
	}

	t.afterSelector = true
	if t.hasAtRule {
		return token.AtIdent(ident), nil
	}
	return token.Type(ident), nil
}
