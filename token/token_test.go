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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fschutt/simplecss/token"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "TypeSelector", token.TypeSelector.String())
	require.Contains(t, token.Kind(200).String(), "token.Kind")
}

func TestIsSelectorStart(t *testing.T) {
	selStarts := []token.Kind{
		token.TypeSelector, token.IdSelector, token.ClassSelector,
		token.UniversalSelector, token.AttributeSelector,
		token.PseudoClass, token.DoublePseudoClass,
	}
	for _, k := range selStarts {
		require.True(t, k.IsSelectorStart(), k.String())
	}

	notStarts := []token.Kind{token.Comma, token.BlockStart, token.BlockEnd, token.CombinatorTok, token.AtRule}
	for _, k := range notStarts {
		require.False(t, k.IsSelectorStart(), k.String())
	}
}

func TestConstructorsRoundTrip(t *testing.T) {
	require.Equal(t, token.Token{Kind: token.TypeSelector, Ident: "div"}, token.Type("div"))
	require.Equal(t, token.Token{Kind: token.IdSelector, Ident: "x"}, token.ID("x"))
	require.Equal(t, token.Token{Kind: token.ClassSelector, Ident: "x"}, token.Class("x"))
	require.Equal(t, token.Token{Kind: token.AttributeSelector, Value: "a=b"}, token.Attribute("a=b"))
	require.Equal(t,
		token.Token{Kind: token.PseudoClass, Ident: "lang", Arg: "fr", HasArg: true},
		token.Pseudo("lang", "fr", true),
	)
	require.Equal(t, token.Token{Kind: token.CombinatorTok, Combinator: token.Child}, token.Comb(token.Child))
	require.Equal(t, token.Token{Kind: token.BlockStart}, token.Block(true))
	require.Equal(t, token.Token{Kind: token.BlockEnd}, token.Block(false))
	require.Equal(t, token.Token{Kind: token.Declaration, Ident: "color", Value: "red"}, token.Decl("color", "red"))
	require.Equal(t, token.Token{Kind: token.AtRule, Ident: "media"}, token.At("media"))
	require.Equal(t, token.Token{Kind: token.EndOfStream}, token.EOF())
}

func TestTokenString(t *testing.T) {
	require.Equal(t, `TypeSelector("div")`, token.Type("div").String())
	require.Equal(t, `Declaration("color", "red")`, token.Decl("color", "red").String())
	require.Equal(t, `Combinator(Child)`, token.Comb(token.Child).String())
	require.Contains(t, token.Pseudo("hover", "", false).String(), "value:<none>")
	require.Contains(t, token.Pseudo("lang", "fr", true).String(), `value:"fr"`)
}
