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

// Package batch runs many independent tokenizations concurrently,
// bounded by a weighted semaphore, and collects their results in the
// caller-supplied order regardless of completion order.
//
// Distinct [github.com/fschutt/simplecss.Tokenizer] values over
// distinct buffers share no state, so this package exists purely as a
// scheduling convenience: it does not change tokenization semantics,
// only the order of work.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/fschutt/simplecss"
	"github.com/fschutt/simplecss/token"
)

// Source is one named input to tokenize.
type Source struct {
	// Name identifies the source for Result and for log output; it is
	// not interpreted (it need not be a file path).
	Name string
	Text []byte
}

// Result is the outcome of tokenizing one [Source] to completion.
type Result struct {
	Name   string
	Tokens []token.Token
	Err    error
}

// Options controls how [Tokenize] schedules work.
type Options struct {
	// MaxParallelism bounds the number of sources tokenized at once. If
	// zero or negative, min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// is used, matching the default the compiler stage of most
	// parallel build pipelines in this ecosystem uses.
	MaxParallelism int

	// FailFast cancels remaining work as soon as one source returns a
	// tokenization error. Sources already in flight still run to
	// completion; their results (including a possible error of their
	// own) are still reported.
	FailFast bool

	// Logger, if non-nil, receives one line per completed source.
	Logger Logger
}

// Logger is the minimal logging surface batch needs; *log.Logger
// satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// Tokenize runs each source's tokenizer to completion (collecting
// every token up to and including EndOfStream, or stopping at the
// first error) and returns one [Result] per source, in the same order
// as sources. Concurrency is bounded by opts.MaxParallelism.
//
// Tokenize itself never returns an error: per-source failures are
// reported through Result.Err. A canceled ctx (including one canceled
// internally by FailFast) surfaces as context.Canceled on whichever
// sources had not yet acquired a semaphore permit.
func Tokenize(ctx context.Context, sources []Source, opts Options) ([]Result, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	par := opts.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := semaphore.NewWeighted(int64(par))
	results := make([]Result, len(sources))
	done := make(chan int, len(sources))

	for i, src := range sources {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = Result{Name: src.Name, Err: ctx.Err()}
			done <- i
			continue
		}

		go func(i int, src Source) {
			defer sem.Release(1)
			results[i] = tokenizeOne(src)
			if opts.Logger != nil {
				if results[i].Err != nil {
					opts.Logger.Printf("batch: %s: error: %v", src.Name, results[i].Err)
				} else {
					opts.Logger.Printf("batch: %s: %d tokens", src.Name, len(results[i].Tokens))
				}
			}
			if opts.FailFast && results[i].Err != nil {
				cancel()
			}
			done <- i
		}(i, src)
	}

	for range sources {
		<-done
	}

	return results, nil
}

func tokenizeOne(src Source) Result {
	t := simplecss.New(src.Text)
	var toks []token.Token
	for {
		tok, err := t.Next()
		if err != nil {
			return Result{Name: src.Name, Tokens: toks, Err: err}
		}
		toks = append(toks, tok)
		if tok.Kind == token.EndOfStream {
			break
		}
	}
	return Result{Name: src.Name, Tokens: toks}
}
