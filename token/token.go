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

// Package token defines the token vocabulary produced by the CSS
// tokenizer: the [Kind] enumeration, the [Token] payload, and the
// [Combinator] sub-enumeration used by Combinator tokens.
//
// Every string field on a [Token] is a slice into the buffer the
// tokenizer was constructed over; it is never copied and its lifetime is
// tied to that buffer.
package token

import "fmt"

// Kind identifies which of the token variants a [Token] represents.
type Kind byte

const (
	// Unrecognized is the zero Kind; a valid Token never has this Kind.
	Unrecognized Kind = iota

	UniversalSelector  // `*`
	TypeSelector       // element name, in Ident
	IdSelector         // `#ident`, hash stripped, in Ident
	ClassSelector      // `.ident`, dot stripped, in Ident
	AttributeSelector  // contents between `[` and `]`, in Value
	PseudoClass        // `:name` or `:name(arg)`
	DoublePseudoClass  // `::name` or `::name(arg)`
	CombinatorTok      // descendant/child/sibling, see Combinator
	Comma              // selector-list separator
	BlockStart         // `{`
	BlockEnd           // `}`
	Declaration        // property: value, in Ident/Value
	AtRule             // `@ident`, at-sign stripped, in Ident
	AtStr              // identifier or parenthesized group in an at-rule head
	EndOfStream        // terminal token; idempotent
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case UniversalSelector:
		return "UniversalSelector"
	case TypeSelector:
		return "TypeSelector"
	case IdSelector:
		return "IdSelector"
	case ClassSelector:
		return "ClassSelector"
	case AttributeSelector:
		return "AttributeSelector"
	case PseudoClass:
		return "PseudoClass"
	case DoublePseudoClass:
		return "DoublePseudoClass"
	case CombinatorTok:
		return "Combinator"
	case Comma:
		return "Comma"
	case BlockStart:
		return "BlockStart"
	case BlockEnd:
		return "BlockEnd"
	case Declaration:
		return "Declaration"
	case AtRule:
		return "AtRule"
	case AtStr:
		return "AtStr"
	case EndOfStream:
		return "EndOfStream"
	default:
		return fmt.Sprintf("token.Kind(%d)", byte(k))
	}
}

// IsSelectorStart reports whether a token of this kind can complete a
// compound selector, i.e. whether a space immediately following it
// should be interpreted as a descendant [Combinator] rather than
// insignificant whitespace. This mirrors the set spec.md's property P5
// requires after a Combinator(Space) token.
func (k Kind) IsSelectorStart() bool {
	switch k {
	case TypeSelector, IdSelector, ClassSelector, UniversalSelector,
		AttributeSelector, PseudoClass, DoublePseudoClass:
		return true
	default:
		return false
	}
}

// Combinator identifies the relationship between two compound selectors.
type Combinator byte

const (
	// Space is the descendant combinator.
	Space Combinator = iota
	// Child is `>`.
	Child
	// AdjacentSibling is `+`.
	AdjacentSibling
	// GeneralSibling is `~`.
	GeneralSibling
)

// String implements [fmt.Stringer].
func (c Combinator) String() string {
	switch c {
	case Space:
		return "Space"
	case Child:
		return "Child"
	case AdjacentSibling:
		return "AdjacentSibling"
	case GeneralSibling:
		return "GeneralSibling"
	default:
		return fmt.Sprintf("token.Combinator(%d)", byte(c))
	}
}

// Token is a single lexical unit produced by the tokenizer. It is a flat
// struct rather than one Go type per variant because the fields are all
// borrowed string slices: a sum type built from interfaces would force
// an allocation (and an indirection) per token, defeating the zero-copy
// goal the tokenizer exists for. Which fields are meaningful depends on
// Kind; see the per-Kind comments.
type Token struct {
	Kind Kind

	// Ident holds the identifier payload for TypeSelector, IdSelector,
	// ClassSelector, AtRule, AtStr (identifier form), and the property
	// name of a Declaration.
	Ident string

	// Value holds the raw, unparsed payload for AttributeSelector, the
	// trimmed value of a Declaration, and the parenthesized group
	// (including its parentheses) of an AtStr in group form.
	Value string

	// Arg is the optional parenthesized argument of a PseudoClass or
	// DoublePseudoClass, e.g. "fr" in ":lang(fr)". HasArg distinguishes
	// a present-but-empty argument from no argument at all.
	Arg    string
	HasArg bool

	// Combinator is meaningful only when Kind == CombinatorTok.
	Combinator Combinator
}

// Universal returns a UniversalSelector token.
func Universal() Token { return Token{Kind: UniversalSelector} }

// Type returns a TypeSelector token for the given element name.
func Type(ident string) Token { return Token{Kind: TypeSelector, Ident: ident} }

// ID returns an IdSelector token for the given (hash-stripped) identifier.
func ID(ident string) Token { return Token{Kind: IdSelector, Ident: ident} }

// Class returns a ClassSelector token for the given (dot-stripped) identifier.
func Class(ident string) Token { return Token{Kind: ClassSelector, Ident: ident} }

// Attribute returns an AttributeSelector token for the raw bracket contents.
func Attribute(raw string) Token { return Token{Kind: AttributeSelector, Value: raw} }

// Pseudo returns a PseudoClass token, optionally with a parenthesized argument.
func Pseudo(name string, arg string, hasArg bool) Token {
	return Token{Kind: PseudoClass, Ident: name, Arg: arg, HasArg: hasArg}
}

// DoublePseudo returns a DoublePseudoClass token, optionally with a parenthesized argument.
func DoublePseudo(name string, arg string, hasArg bool) Token {
	return Token{Kind: DoublePseudoClass, Ident: name, Arg: arg, HasArg: hasArg}
}

// Comb returns a Combinator token of the given kind.
func Comb(c Combinator) Token { return Token{Kind: CombinatorTok, Combinator: c} }

// CommaTok returns a Comma token.
func CommaTok() Token { return Token{Kind: Comma} }

// Block returns a BlockStart or BlockEnd token.
func Block(start bool) Token {
	if start {
		return Token{Kind: BlockStart}
	}
	return Token{Kind: BlockEnd}
}

// Decl returns a Declaration token for the given already-trimmed
// property and value slices.
func Decl(property, value string) Token {
	return Token{Kind: Declaration, Ident: property, Value: value}
}

// At returns an AtRule token for the given (at-sign-stripped) identifier.
func At(ident string) Token { return Token{Kind: AtRule, Ident: ident} }

// AtIdent returns an AtStr token carrying a bare identifier.
func AtIdent(ident string) Token { return Token{Kind: AtStr, Ident: ident} }

// AtGroup returns an AtStr token carrying a parenthesized group, the
// slice including the outer parentheses.
func AtGroup(raw string) Token { return Token{Kind: AtStr, Value: raw} }

// EOF returns the terminal EndOfStream token.
func EOF() Token { return Token{Kind: EndOfStream} }

// String implements [fmt.Stringer] for debugging and test failure output.
func (t Token) String() string {
	switch t.Kind {
	case TypeSelector, IdSelector, ClassSelector, AtRule:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Ident)
	case AtStr:
		if t.Value != "" {
			return fmt.Sprintf("AtStr(%q)", t.Value)
		}
		return fmt.Sprintf("AtStr(%q)", t.Ident)
	case AttributeSelector:
		return fmt.Sprintf("AttributeSelector(%q)", t.Value)
	case PseudoClass, DoublePseudoClass:
		if t.HasArg {
			return fmt.Sprintf("%s{selector:%q, value:%q}", t.Kind, t.Ident, t.Arg)
		}
		return fmt.Sprintf("%s{selector:%q, value:<none>}", t.Kind, t.Ident)
	case CombinatorTok:
		return fmt.Sprintf("Combinator(%s)", t.Combinator)
	case Declaration:
		return fmt.Sprintf("Declaration(%q, %q)", t.Ident, t.Value)
	default:
		return t.Kind.String()
	}
}
