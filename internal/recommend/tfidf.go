// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	_ "embed"
	"math"
	"strings"
	"unicode"
)

//go:embed stopwords_en.txt
var stopwordsEN string

//go:embed stopwords_fa.txt
var stopwordsFA string

// stopwords merges the English and Persian lists. Artist descriptions are
// English prose but routinely quote Farsi names and phrases.
var stopwords = func() map[string]struct{} {
	m := make(map[string]struct{}, 256)
	for _, raw := range []string{stopwordsEN, stopwordsFA} {
		for _, line := range strings.Split(raw, "\n") {
			w := strings.TrimSpace(line)
			if w != "" {
				m[w] = struct{}{}
			}
		}
	}
	return m
}()

// termVector is a sparse L2-normalized TF-IDF vector.
type termVector map[string]float64

// tokenize lowercases, splits on anything that is not a letter or digit,
// and drops stop words. Unicode-aware so Farsi text tokenizes too.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// vectorize builds TF-IDF vectors for a document corpus.
//
// IDF uses add-one smoothing on both counts, idf = ln((1+N)/(1+df)) + 1, so
// a term present in every document still contributes and an empty corpus
// cannot divide by zero. Vectors are L2-normalized; a document whose tokens
// are all stop words yields an empty vector, which scores 0 against
// everything.
func vectorize(docs []string) []termVector {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokenized[i] = tokenize(doc)
		seen := make(map[string]struct{}, len(tokenized[i]))
		for _, tok := range tokenized[i] {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}

	vectors := make([]termVector, len(docs))
	for i, tokens := range tokenized {
		vec := make(termVector, len(tokens))
		for _, tok := range tokens {
			vec[tok]++
		}
		var norm float64
		for term := range vec {
			vec[term] *= idf[term]
			norm += vec[term] * vec[term]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vec {
				vec[term] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// cosine is the dot product of two L2-normalized sparse vectors.
func cosine(a, b termVector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, av := range a {
		if bv, ok := b[term]; ok {
			dot += av * bv
		}
	}
	return dot
}
