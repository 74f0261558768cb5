package charlm

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/unixpickle/num-analysis/linalg"
	"github.com/unixpickle/serializer"
)

func init() {
	var v Vocab
	serializer.RegisterTypedDeserializer(v.SerializerType(), DeserializeVocab)
}

// A Vocab is a bijection between the distinct characters of a
// corpus and the integer range [0, Size).
// It is built once from a corpus and read-only afterward.
//
// Indices are assigned in sorted rune order, so the mapping is
// deterministic for a given corpus.
type Vocab struct {
	chars   []rune
	indices map[rune]int
}

// NewVocab builds a vocabulary from the distinct characters of
// a corpus.
func NewVocab(c Corpus) *Vocab {
	chars := c.Alphabet()
	sort.Slice(chars, func(i, j int) bool {
		return chars[i] < chars[j]
	})
	indices := make(map[rune]int, len(chars))
	for i, ch := range chars {
		indices[ch] = i
	}
	return &Vocab{chars: chars, indices: indices}
}

// DeserializeVocab deserializes a Vocab.
func DeserializeVocab(d []byte) (*Vocab, error) {
	var chars string
	if err := json.Unmarshal(d, &chars); err != nil {
		return nil, fmt.Errorf("deserialize vocab: %s", err)
	}
	return NewVocab(Corpus([]rune(chars))), nil
}

// Size returns the number of characters in the vocabulary.
func (v *Vocab) Size() int {
	return len(v.chars)
}

// Index returns the integer index of a character.
// It fails if the character never appeared in the corpus the
// vocabulary was built from.
func (v *Vocab) Index(ch rune) (int, error) {
	idx, ok := v.indices[ch]
	if !ok {
		return 0, fmt.Errorf("character %q is not in the vocabulary", ch)
	}
	return idx, nil
}

// Char returns the character at an integer index.
func (v *Vocab) Char(idx int) (rune, error) {
	if idx < 0 || idx >= len(v.chars) {
		return 0, fmt.Errorf("vocabulary index out of range: %d", idx)
	}
	return v.chars[idx], nil
}

// Contains reports whether every character of s is in the
// vocabulary.
func (v *Vocab) Contains(s []rune) bool {
	for _, ch := range s {
		if _, ok := v.indices[ch]; !ok {
			return false
		}
	}
	return true
}

// OneHot returns the indicator vector for an index: a vector of
// length Size with a one at the index and zeroes elsewhere.
func (v *Vocab) OneHot(idx int) linalg.Vector {
	vec := make(linalg.Vector, len(v.chars))
	vec[idx] = 1
	return vec
}

// Encode one-hot encodes a run of characters.
// It fails on the first character outside the vocabulary.
func (v *Vocab) Encode(chars []rune) ([]linalg.Vector, error) {
	res := make([]linalg.Vector, len(chars))
	for i, ch := range chars {
		idx, err := v.Index(ch)
		if err != nil {
			return nil, err
		}
		res[i] = v.OneHot(idx)
	}
	return res, nil
}

// MarshalJSON encodes the vocabulary as its character string in
// index order.
func (v *Vocab) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v.chars))
}

// UnmarshalJSON decodes a vocabulary encoded by MarshalJSON.
func (v *Vocab) UnmarshalJSON(d []byte) error {
	dec, err := DeserializeVocab(d)
	if err != nil {
		return err
	}
	*v = *dec
	return nil
}

// SerializerType returns the unique ID used to serialize
// Vocabs with the serializer package.
func (v *Vocab) SerializerType() string {
	return "github.com/unixpickle/charlm.Vocab"
}

// Serialize serializes the Vocab.
func (v *Vocab) Serialize() ([]byte, error) {
	return v.MarshalJSON()
}
