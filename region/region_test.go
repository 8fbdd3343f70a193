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

package region_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fschutt/simplecss"
	"github.com/fschutt/simplecss/region"
	"github.com/fschutt/simplecss/token"
)

func TestFindSingleRegion(t *testing.T) {
	doc := []byte("<html><head><style>div { color: red; }</style></head></html>")
	set := region.Find(doc)
	require.Equal(t, 1, set.Len())

	var got region.Range
	for r := range set.All() {
		got = r
	}
	require.Equal(t, "div { color: red; }", string(doc[got.Start:got.End]))
}

func TestFindMultipleRegionsInDocumentOrder(t *testing.T) {
	doc := []byte("<STYLE>a{}</STYLE>text<style>b{}</style>")
	set := region.Find(doc)
	require.Equal(t, 2, set.Len())

	var texts []string
	for r := range set.All() {
		texts = append(texts, string(doc[r.Start:r.End]))
	}
	require.Equal(t, []string{"a{}", "b{}"}, texts)
}

func TestFindIgnoresUnterminatedTag(t *testing.T) {
	doc := []byte("<style>div{}")
	set := region.Find(doc)
	require.Equal(t, 0, set.Len())
}

func TestFindNoRegions(t *testing.T) {
	doc := []byte("<html></html>")
	set := region.Find(doc)
	require.Equal(t, 0, set.Len())
}

func TestRegionFeedsTokenizerNewBound(t *testing.T) {
	doc := []byte("<p>hi</p><style>a { color: red; }</style>")
	set := region.Find(doc)
	require.Equal(t, 1, set.Len())

	for r := range set.All() {
		tok := simplecss.NewBound(doc, r.Start, r.End)
		tk, err := tok.Next()
		require.NoError(t, err)
		require.Equal(t, token.TypeSelector, tk.Kind)
		require.Equal(t, "a", tk.Ident)
	}
}
