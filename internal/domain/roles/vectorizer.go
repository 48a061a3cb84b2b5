package roles

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Default document frequency bounds for the vocabulary.
const (
	defaultMinDocFreq = 2
	defaultMaxDocFreq = 0.9
)

// Matrix is a dense TF-IDF matrix: one L2-normalised row per document, one
// column per vocabulary term. Terms are sorted lexicographically.
type Matrix struct {
	Terms []string
	Rows  [][]float64
}

// Vectorizer builds TF-IDF features over unigrams and bigrams.
type Vectorizer struct {
	tokenizer  Tokenizer
	stopWords  map[string]struct{}
	minDocFreq int     // absolute number of documents
	maxDocFreq float64 // fraction of documents
}

// NewVectorizer creates a vectorizer. minDocFreq is an absolute document
// count; maxDocFreq is a fraction of the corpus in (0, 1].
func NewVectorizer(minDocFreq int, maxDocFreq float64) *Vectorizer {
	if minDocFreq < 1 {
		minDocFreq = 1
	}
	if maxDocFreq <= 0 || maxDocFreq > 1 {
		maxDocFreq = 1
	}
	return &Vectorizer{
		tokenizer:  WordTokenizer{},
		stopWords:  englishStopWords,
		minDocFreq: minDocFreq,
		maxDocFreq: maxDocFreq,
	}
}

// FitTransform learns the vocabulary from docs and returns their TF-IDF rows.
func (v *Vectorizer) FitTransform(docs []string) (*Matrix, error) {
	counts := make([]map[string]int, len(docs))
	docFreq := make(map[string]int)
	for i, doc := range docs {
		tf := make(map[string]int)
		for _, term := range ngrams(v.tokenizer.Tokenize(doc), v.stopWords) {
			tf[term]++
		}
		for term := range tf {
			docFreq[term]++
		}
		counts[i] = tf
	}
	if len(docFreq) == 0 {
		return nil, ErrEmptyVocabulary
	}

	n := float64(len(docs))
	maxDocs := v.maxDocFreq * n
	if maxDocs < float64(v.minDocFreq) {
		return nil, fmt.Errorf("%w: max %.1f < min %d", ErrInvalidDocFreq, maxDocs, v.minDocFreq)
	}

	terms := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df >= v.minDocFreq && float64(df) <= maxDocs {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, ErrNoTermsAfterPruning
	}
	sort.Strings(terms)

	idf := make([]float64, len(terms))
	for j, term := range terms {
		idf[j] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	rows := make([][]float64, len(docs))
	for i, tf := range counts {
		row := make([]float64, len(terms))
		for j, term := range terms {
			if c, ok := tf[term]; ok {
				row[j] = float64(c) * idf[j]
			}
		}
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
		rows[i] = row
	}

	return &Matrix{Terms: terms, Rows: rows}, nil
}
