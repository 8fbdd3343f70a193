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
	"strings"
	"testing"

	"github.com/fschutt/simplecss"
	"github.com/fschutt/simplecss/internal/corpus"
	"github.com/fschutt/simplecss/token"
)

// TestCorpus runs every testdata/corpus/*.css fixture through the
// tokenizer and compares its rendered token stream against the
// sibling *.tokens golden file. Run with
// CSSLEX_REFRESH_CORPUS=1 go test ./... to regenerate the golden
// files after an intentional behavior change.
func TestCorpus(t *testing.T) {
	corpus.Corpus{
		Root:    "testdata/corpus",
		Refresh: "CSSLEX_REFRESH_CORPUS",
	}.Run(t, func(t *testing.T, path string, src []byte) string {
		tok := simplecss.New(src)
		var lines []string
		for {
			tk, err := tok.Next()
			if err != nil {
				t.Fatalf("tokenizing %s: %v", path, err)
			}
			lines = append(lines, tk.String())
			if tk.Kind == token.EndOfStream {
				break
			}
		}
		return strings.Join(lines, "\n") + "\n"
	})
}
