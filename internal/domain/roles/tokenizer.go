package roles

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLength drops single-character tokens such as "a" or the "c" in "c++".
const minTokenLength = 2

// Tokenizer splits text into terms.
type Tokenizer interface {
	Tokenize(text string) []string
}

// WordTokenizer splits on anything that is not a letter, digit or
// underscore, lower-cases, and drops tokens shorter than two characters.
type WordTokenizer struct{}

// Tokenize implements Tokenizer.
func (WordTokenizer) Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsNumber(c) && c != '_'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenLength {
			continue
		}
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// ngrams removes stop words and returns unigrams followed by the bigrams of
// the remaining tokens.
func ngrams(tokens []string, stopWords map[string]struct{}) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, stop := stopWords[t]; stop {
			continue
		}
		kept = append(kept, t)
	}
	out := make([]string, 0, 2*len(kept))
	out = append(out, kept...)
	for i := 0; i+1 < len(kept); i++ {
		out = append(out, kept[i]+" "+kept[i+1])
	}
	return out
}
