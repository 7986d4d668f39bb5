package ranking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizer_Terms(t *testing.T) {
	v := NewVectorizer()

	tests := []struct {
		name     string
		doc      string
		expected []string
	}{
		{"empty", "", []string{}},
		{"single token", "python", []string{"python"}},
		{"bigrams", "power bi tableau", []string{"power", "bi", "tableau", "power bi", "bi tableau"}},
		{"stop words removed before bigrams", "design of system apis", []string{"design", "apis", "design apis"}},
		{"all stop words", "the and of", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.terms(tt.doc)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVectorizer_UnigramsOnly(t *testing.T) {
	v := &Vectorizer{MaxNGram: 1, StopWords: IsStopWord}
	assert.Equal(t, []string{"power", "bi"}, v.terms("power bi"))
}

func TestFit_IDFAndNormalization(t *testing.T) {
	space := NewVectorizer().Fit([]string{"python docker", "python", "rust"})
	require.Equal(t, 3, space.Len())

	// n=3: idf(python) = ln(4/3)+1, idf(docker) = ln(4/2)+1, idf(python docker) = ln(4/2)+1
	idfPython := math.Log(4.0/3.0) + 1
	idfDocker := math.Log(2) + 1
	norm := math.Sqrt(idfPython*idfPython + 2*idfDocker*idfDocker)

	vec := space.Vector(0)
	assert.InDelta(t, idfPython/norm, vec["python"], 1e-12)
	assert.InDelta(t, idfDocker/norm, vec["docker"], 1e-12)
	assert.InDelta(t, idfDocker/norm, vec["python docker"], 1e-12)

	assert.InDelta(t, 1.0, space.Vector(1)["python"], 1e-12)
	assert.Equal(t, 4, space.vocabularySize())
}

func TestFit_TermFrequency(t *testing.T) {
	space := NewVectorizer().Fit([]string{"go go rust", "rust"})

	// "go" is a stop word; "rust" appears in both documents.
	vec := space.Vector(0)
	assert.Len(t, vec, 1)
	assert.InDelta(t, 1.0, vec["rust"], 1e-12)
}

func TestFit_EmptyCorpusAndDocuments(t *testing.T) {
	space := NewVectorizer().Fit(nil)
	assert.Equal(t, 0, space.Len())

	space = NewVectorizer().Fit([]string{"", "the of"})
	assert.Empty(t, space.Vector(0))
	assert.Empty(t, space.Vector(1))
	assert.Equal(t, 0, space.vocabularySize())
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected float64
	}{
		{"identical", Vector{"x": 0.6, "y": 0.8}, Vector{"x": 0.6, "y": 0.8}, 1},
		{"orthogonal", Vector{"x": 1}, Vector{"y": 1}, 0},
		{"zero vector", Vector{}, Vector{"x": 1}, 0},
		{"both nil", nil, nil, 0},
		{"unnormalized", Vector{"x": 3, "y": 4}, Vector{"x": 1}, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.a, tt.b), 1e-12)
			assert.InDelta(t, tt.expected, Cosine(tt.b, tt.a), 1e-12)
		})
	}
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("system"))
	assert.False(t, IsStopWord("python"))
	assert.False(t, IsStopWord("The"), "stop words are matched on normalized tokens")
}
