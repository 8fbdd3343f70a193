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

package simplecss_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/fschutt/simplecss"
	"github.com/fschutt/simplecss/token"
)

// collect runs t to EndOfStream, failing the test on any error.
func collect(tb testing.TB, tok *simplecss.Tokenizer) []token.Token {
	tb.Helper()
	var out []token.Token
	for {
		tk, err := tok.Next()
		require.NoError(tb, err)
		out = append(out, tk)
		if tk.Kind == token.EndOfStream {
			return out
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tk := range toks {
		ks[i] = tk.Kind
	}
	return ks
}

func TestSimpleRuleDeclaration(t *testing.T) {
	toks := collect(t, simplecss.New([]byte(`div { color: red; }`)))
	require.Equal(t, []token.Kind{
		token.TypeSelector,
		token.BlockStart,
		token.Declaration,
		token.BlockEnd,
		token.EndOfStream,
	}, kinds(toks))

	require.Equal(t, "div", toks[0].Ident)
	require.Equal(t, "color", toks[2].Ident)
	require.Equal(t, "red", toks[2].Value)
}

func TestCompoundSelectorAndCombinators(t *testing.T) {
	toks := collect(t, simplecss.New([]byte(`a.cls#id > b + c ~ d e {}`)))
	require.Equal(t, []token.Kind{
		token.TypeSelector,
		token.ClassSelector,
		token.IdSelector,
		token.CombinatorTok,
		token.TypeSelector,
		token.CombinatorTok,
		token.TypeSelector,
		token.CombinatorTok,
		token.TypeSelector,
		token.CombinatorTok,
		token.TypeSelector,
		token.BlockStart,
		token.BlockEnd,
		token.EndOfStream,
	}, kinds(toks))

	require.Equal(t, token.Child, toks[3].Combinator)
	require.Equal(t, token.AdjacentSibling, toks[5].Combinator)
	require.Equal(t, token.GeneralSibling, toks[7].Combinator)
	require.Equal(t, token.Space, toks[9].Combinator)
}

func TestSelectorList(t *testing.T) {
	toks := collect(t, simplecss.New([]byte(`h1, h2 {}`)))
	require.Equal(t, []token.Kind{
		token.TypeSelector,
		token.Comma,
		token.TypeSelector,
		token.BlockStart,
		token.BlockEnd,
		token.EndOfStream,
	}, kinds(toks))
}

func TestUniversalAndAttributeSelectors(t *testing.T) {
	toks := collect(t, simplecss.New([]byte(`*[data-x="y z"] {}`)))
	require.Equal(t, []token.Kind{
		token.UniversalSelector,
		token.AttributeSelector,
		token.BlockStart,
		token.BlockEnd,
		token.EndOfStream,
	}, kinds(toks))
	require.Equal(t, `data-x="y z"`, toks[1].Value)
}

func TestPseudoClassWithAndWithoutArg(t *testing.T) {
	toks := collect(t, simplecss.New([]byte(`a:hover::before(content) {}`)))
	require.Equal(t, []token.Kind{
		token.TypeSelector,
		token.PseudoClass,
		token.DoublePseudoClass,
		token.BlockStart,
		token.BlockEnd,
		token.EndOfStream,
	}, kinds(toks))

	require.Equal(t, "hover", toks[1].Ident)
	require.False(t, toks[1].HasArg)

	require.Equal(t, "before", toks[2].Ident)
	require.True(t, toks[2].HasArg)
	require.Equal(t, "content", toks[2].Arg)
}

func TestAtRuleWithGroupAndNestedBlock(t *testing.T) {
	toks := collect(t, simplecss.New([]byte(`@media (min-width: 100px) { div { color: red; } }`)))
	require.Equal(t, []token.Kind{
		token.AtRule,
		token.AtStr,
		token.BlockStart,
		token.TypeSelector,
		token.BlockStart,
		token.Declaration,
		token.BlockEnd,
		token.BlockEnd,
		token.EndOfStream,
	}, kinds(toks))

	require.Equal(t, "media", toks[0].Ident)
	require.Equal(t, "(min-width: 100px)", toks[1].Value)
}

func TestComment(t *testing.T) {
	toks := collect(t, simplecss.New([]byte(`/* leading */ div /* mid */ { /* in block */ color: red; }`)))
	require.Equal(t, []token.Kind{
		token.TypeSelector,
		token.BlockStart,
		token.Declaration,
		token.BlockEnd,
		token.EndOfStream,
	}, kinds(toks))
}

func TestDeeplyNestedBlocks(t *testing.T) {
	toks := collect(t, simplecss.New([]byte(`a { b { c { d: e; } } }`)))
	require.Equal(t, []token.Kind{
		token.TypeSelector,
		token.BlockStart,
		token.TypeSelector,
		token.BlockStart,
		token.TypeSelector,
		token.BlockStart,
		token.Declaration,
		token.BlockEnd,
		token.BlockEnd,
		token.BlockEnd,
		token.EndOfStream,
	}, kinds(toks))
}

func TestEndOfStreamIsIdempotent(t *testing.T) {
	tok := simplecss.New([]byte(`a {}`))
	for i := 0; i < 6; i++ {
		tk, err := tok.Next()
		require.NoError(t, err)
		if i >= 3 {
			require.Equal(t, token.EndOfStream, tk.Kind)
		}
	}
}

func TestUnknownTokenError(t *testing.T) {
	tok := simplecss.New([]byte(`div { color : red ; } }`))
	_, err := collectUntilError(tok)
	require.Error(t, err)

	var cssErr simplecss.Error
	require.ErrorAs(t, err, &cssErr)
	require.Equal(t, simplecss.UnknownToken, cssErr.Kind)
}

func collectUntilError(tok *simplecss.Tokenizer) ([]token.Token, error) {
	var out []token.Token
	for {
		tk, err := tok.Next()
		if err != nil {
			return out, err
		}
		out = append(out, tk)
		if tk.Kind == token.EndOfStream {
			return out, nil
		}
	}
}

func TestNewBoundReportsAbsolutePositions(t *testing.T) {
	doc := []byte("html { }\n<style>\ndiv { color ; }\n</style>")
	start := len("html { }\n<style>\n")
	end := start + len("div { color ; }\n")

	tok := simplecss.NewBound(doc, start, end)
	_, err := collectUntilError(tok)
	require.Error(t, err)

	var cssErr simplecss.Error
	require.ErrorAs(t, err, &cssErr)
	require.Equal(t, uint32(3), cssErr.Pos.Line)
}

func TestFullTokenStreamForAttributeSelector(t *testing.T) {
	toks := collect(t, simplecss.New([]byte(`input[type="checkbox"]:checked {}`)))

	want := []token.Token{
		token.Type("input"),
		token.Attribute(`type="checkbox"`),
		token.Pseudo("checked", "", false),
		token.Block(true),
		token.Block(false),
		token.EOF(),
	}

	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeSelectorIsSelectorStart(t *testing.T) {
	require.True(t, token.TypeSelector.IsSelectorStart())
	require.False(t, token.Comma.IsSelectorStart())
}
