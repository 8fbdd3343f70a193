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

// Package corpus provides a small file-based golden test harness: a
// directory of *.css fixtures, each paired with a *.tokens file
// holding the expected rendering of its token stream.
//
// Set the environment variable named by [Corpus.Refresh] to a nonempty
// value to regenerate every *.tokens file from the current tokenizer
// output instead of comparing against it.
package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of golden CSS fixtures.
type Corpus struct {
	// Root is the directory to search, relative to the test binary's
	// working directory (ordinarily the package directory under `go
	// test`).
	Root string

	// Refresh names an environment variable that, when set to a
	// nonempty value, causes Run to overwrite each fixture's *.tokens
	// file with freshly rendered output instead of comparing it.
	Refresh string
}

// Run finds every *.css file under c.Root and calls render on its
// contents, then compares the result against the sibling *.tokens file
// of the same base name (byte-for-byte, after trimming all trailing
// newlines from each side).
func (c Corpus) Run(t *testing.T, render func(t *testing.T, path string, src []byte) string) {
	t.Helper()

	matches, err := doublestar.Glob(os.DirFS(c.Root), "*.css")
	if err != nil {
		t.Fatalf("corpus: glob failed: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("corpus: no *.css fixtures found under %q", c.Root)
	}

	refresh := c.Refresh != "" && os.Getenv(c.Refresh) != ""

	for _, name := range matches {
		name := name
		t.Run(name, func(t *testing.T) {
			cssPath := filepath.Join(c.Root, name)
			src, err := os.ReadFile(cssPath)
			if err != nil {
				t.Fatalf("corpus: reading %q: %v", cssPath, err)
			}

			got := render(t, cssPath, src)

			goldenPath := strings.TrimSuffix(cssPath, ".css") + ".tokens"
			if refresh {
				if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
					t.Fatalf("corpus: writing %q: %v", goldenPath, err)
				}
				return
			}

			wantBytes, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("corpus: reading golden %q: %v (run with %s=1 to create it)", goldenPath, err, c.Refresh)
			}

			want := strings.TrimRight(string(wantBytes), "\n")
			gotTrimmed := strings.TrimRight(got, "\n")
			if want == gotTrimmed {
				return
			}

			diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(want),
				B:        difflib.SplitLines(gotTrimmed),
				FromFile: goldenPath,
				ToFile:   "got",
				Context:  3,
			})
			t.Errorf("corpus: %s mismatch:\n%s", cssPath, diff)
		})
	}
}
