package charlm

import (
	"os"
	"unicode"
)

// A Corpus is a normalized training text: lowercase with all
// newline characters removed.
// It is built once and never mutated.
type Corpus []rune

// ReadCorpus reads a UTF-8 text file fully into memory and
// normalizes it.
func ReadCorpus(path string) (Corpus, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewCorpus(string(contents)), nil
}

// NewCorpus normalizes a raw text: every character is
// lowercased and newlines ("\n" and "\r") are dropped.
func NewCorpus(text string) Corpus {
	res := make(Corpus, 0, len(text))
	for _, ch := range text {
		if ch == '\n' || ch == '\r' {
			continue
		}
		res = append(res, unicode.ToLower(ch))
	}
	return res
}

// Len returns the number of characters in the corpus.
func (c Corpus) Len() int {
	return len(c)
}

// At returns the character at index i.
func (c Corpus) At(i int) rune {
	return c[i]
}

// Slice returns the characters in the range [start, end).
// The result shares memory with the corpus and must not be
// modified.
func (c Corpus) Slice(start, end int) []rune {
	return c[start:end]
}

// Alphabet returns the set of distinct characters appearing
// in the corpus, in unspecified order.
func (c Corpus) Alphabet() []rune {
	seen := map[rune]bool{}
	var res []rune
	for _, ch := range c {
		if !seen[ch] {
			seen[ch] = true
			res = append(res, ch)
		}
	}
	return res
}

func (c Corpus) String() string {
	return string(c)
}
