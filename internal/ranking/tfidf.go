package ranking

import (
	"math"
	"sort"
	"strings"
)

// Vectorizer builds TF-IDF vector spaces over small in-memory corpora.
// Terms are unigrams and bigrams of whitespace-delimited tokens, with stop
// words removed before bigrams are formed.
type Vectorizer struct {
	// MaxNGram is the longest n-gram included in the vocabulary (1 or 2).
	MaxNGram int
	// StopWords reports whether a token is excluded from the vocabulary.
	StopWords func(string) bool
}

// NewVectorizer returns a Vectorizer using unigrams, bigrams and the English stop word list.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{MaxNGram: 2, StopWords: IsStopWord}
}

// Vector is a sparse, L2-normalized TF-IDF vector keyed by term.
type Vector map[string]float64

// Space is a fitted TF-IDF space: one vector per input document, in input order.
type Space struct {
	vectors []Vector
	idf     map[string]float64
}

// Fit computes term weights for every document in docs. Documents are
// expected to be normalized already. Weights are raw term counts scaled by the
// smoothed inverse document frequency ln((1+n)/(1+df)) + 1.
func (v *Vectorizer) Fit(docs []string) *Space {
	n := len(docs)
	counts := make([]map[string]int, n)
	df := make(map[string]int)

	for i, doc := range docs {
		tc := make(map[string]int)
		for _, term := range v.terms(doc) {
			tc[term]++
		}
		for term := range tc {
			df[term]++
		}
		counts[i] = tc
	}

	idf := make(map[string]float64, len(df))
	for term, d := range df {
		idf[term] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	space := &Space{vectors: make([]Vector, n), idf: idf}
	for i, tc := range counts {
		vec := make(Vector, len(tc))
		var norm float64
		for _, term := range sortedKeys(tc) {
			w := float64(tc[term]) * idf[term]
			vec[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vec {
				vec[term] /= norm
			}
		}
		space.vectors[i] = vec
	}
	return space
}

// terms splits a normalized document into its vocabulary terms.
func (v *Vectorizer) terms(doc string) []string {
	tokens := strings.Fields(doc)
	kept := tokens[:0:0]
	for _, tok := range tokens {
		if v.StopWords != nil && v.StopWords(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	terms := append([]string(nil), kept...)
	if v.MaxNGram >= 2 {
		for i := 0; i+1 < len(kept); i++ {
			terms = append(terms, kept[i]+" "+kept[i+1])
		}
	}
	return terms
}

// Len returns the number of documents in the space.
func (s *Space) Len() int {
	return len(s.vectors)
}

// Vector returns the vector of document i.
func (s *Space) Vector(i int) Vector {
	return s.vectors[i]
}

// vocabularySize returns the number of distinct terms across the corpus.
func (s *Space) vocabularySize() int {
	return len(s.idf)
}

// Cosine returns the cosine similarity of two vectors, clamped to [0, 1].
// Either vector being zero yields 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}

	// Sums run in term order so equal inputs give bit-identical scores.
	var dot, na, nb float64
	for _, term := range sortedKeys(a) {
		wa := a[term]
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
		na += wa * wa
	}
	for _, term := range sortedKeys(b) {
		nb += b[term] * b[term]
	}
	if na == 0 || nb == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if sim > 1 {
		return 1
	}
	if sim < 0 {
		return 0
	}
	return sim
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
