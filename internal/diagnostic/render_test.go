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

package diagnostic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fschutt/simplecss"
	"github.com/fschutt/simplecss/internal/diagnostic"
	"github.com/fschutt/simplecss/token"
)

func TestLineExtractsContainingLine(t *testing.T) {
	src := []byte("div {\n  color : red\n}\n")
	require.Equal(t, "  color : red", diagnostic.Line(src, 10))
	require.Equal(t, "div {", diagnostic.Line(src, 0))
}

func TestRenderOnRealTokenizerError(t *testing.T) {
	src := []byte("div {\n  color : red ; } }\n")

	tok := simplecss.New(src)
	var cssErr simplecss.Error
	for {
		tk, err := tok.Next()
		if err != nil {
			require.True(t, errors.As(err, &cssErr))
			break
		}
		if tk.Kind == token.EndOfStream {
			t.Fatal("expected a tokenization error")
		}
	}

	out := diagnostic.Render(cssErr, src, "style.css")
	require.Contains(t, out, "style.css: UnknownToken at")
	require.Contains(t, out, "  color : red ; } }")
	require.Contains(t, out, "^")
}

func TestRenderWithoutName(t *testing.T) {
	src := []byte("a { $ }")

	tok := simplecss.New(src)
	var cssErr simplecss.Error
	for {
		tk, err := tok.Next()
		if err != nil {
			require.True(t, errors.As(err, &cssErr))
			break
		}
		if tk.Kind == token.EndOfStream {
			t.Fatal("expected a tokenization error")
		}
	}

	out := diagnostic.Render(cssErr, src, "")
	require.NotContains(t, out, ": UnknownToken")
	require.Contains(t, out, "UnknownToken at")
}
