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

// Package region locates embedded CSS regions in a larger document,
// such as <style>...</style> blocks in HTML, and exposes them as
// (start, end) byte ranges that can be fed directly to
// [github.com/fschutt/simplecss.NewBound].
//
// Region discovery is a literal, case-insensitive scan for "<style"
// and its matching "</style>" close tag; it does not parse HTML and
// does not understand comments, CDATA sections, or malformed markup.
// Regions that overlap (which a well-formed document never produces)
// are kept in a [github.com/tidwall/btree] ordered set so that
// iteration with Set.All is always in document order regardless of
// the order regions were discovered in.
package region

import (
	"iter"

	"github.com/tidwall/btree"
)

// Range is a half-open byte range [Start, End) of CSS source within a
// containing document.
type Range struct {
	Start, End int
}

// Len returns the number of bytes spanned by r.
func (r Range) Len() int { return r.End - r.Start }

// Set is an ordered collection of non-overlapping [Range] values,
// keyed by their End offset so that All yields them in document order.
type Set struct {
	tree btree.Map[int, Range]
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add inserts r into the set. Overlap with an already-present range is
// not checked or merged; callers that build a Set via [Find] never
// produce overlapping ranges.
func (s *Set) Add(r Range) {
	s.tree.Set(r.End, r)
}

// Len returns the number of ranges in the set.
func (s *Set) Len() int { return s.tree.Len() }

// All returns an iterator over the set's ranges in ascending order of
// their End offset (equivalently, document order for non-overlapping
// ranges).
func (s *Set) All() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		s.tree.Scan(func(_ int, r Range) bool { return yield(r) })
	}
}

// tagOpen and tagClose are the literal markers region discovery scans
// for. They are matched case-insensitively byte-by-byte; no attempt is
// made to validate that "<style" is followed by a well-formed tag.
const (
	tagOpen  = "<style"
	tagClose = "</style>"
)

// Find scans doc for <style>...</style> regions and returns them as a
// [Set] of byte ranges covering each region's content, excluding the
// tags themselves. Unterminated <style> tags (no matching </style>
// before the end of doc) are silently dropped, matching the original
// crate's documented preference to ignore malformed embedding sites
// rather than fail the whole document.
func Find(doc []byte) *Set {
	set := NewSet()

	pos := 0
	for pos < len(doc) {
		openAt := indexFold(doc, tagOpen, pos)
		if openAt < 0 {
			break
		}

		contentStart := indexByte(doc, '>', openAt+len(tagOpen))
		if contentStart < 0 {
			break
		}
		contentStart++

		closeAt := indexFold(doc, tagClose, contentStart)
		if closeAt < 0 {
			pos = contentStart
			continue
		}

		set.Add(Range{Start: contentStart, End: closeAt})
		pos = closeAt + len(tagClose)
	}

	return set
}

func indexByte(doc []byte, b byte, from int) int {
	for i := from; i < len(doc); i++ {
		if doc[i] == b {
			return i
		}
	}
	return -1
}

// indexFold finds the first case-insensitive occurrence of needle in
// doc at or after from.
func indexFold(doc []byte, needle string, from int) int {
	n := len(needle)
	for i := from; i+n <= len(doc); i++ {
		if equalFold(doc[i:i+n], needle) {
			return i
		}
	}
	return -1
}

func equalFold(a []byte, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
