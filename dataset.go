package charlm

import (
	"fmt"

	"github.com/unixpickle/sgd"
	"github.com/unixpickle/weakai/rnn/seqtoseq"
)

// A Window is one training example: a fixed-length run of
// consecutive corpus characters and the single character
// immediately following it.
type Window struct {
	// Offset is the index in the corpus at which the context
	// begins.
	Offset int

	// Context is the model input, length fixed per dataset.
	Context []rune

	// Target is the character the model should predict.
	Target rune
}

// Windows slides a window of the given length over the corpus
// at the given stride, pairing each window with its successor
// character.
// The result is deterministic for a given corpus, length, and
// stride, and contains (corpusLen-length)/stride windows.
func Windows(c Corpus, length, stride int) ([]Window, error) {
	if length < 1 {
		return nil, fmt.Errorf("window length must be positive: %d", length)
	}
	if stride < 1 {
		return nil, fmt.Errorf("window stride must be positive: %d", stride)
	}
	if length >= c.Len() {
		return nil, fmt.Errorf("window length %d is not less than corpus length %d",
			length, c.Len())
	}
	count := (c.Len() - length) / stride
	res := make([]Window, count)
	for i := range res {
		off := i * stride
		res[i] = Window{
			Offset:  off,
			Context: c.Slice(off, off+length),
			Target:  c.At(off + length),
		}
	}
	return res, nil
}

// NewSampleSet converts a corpus into a training sample set for
// a next-character model.
//
// Each sample's inputs are the one-hot encoded window and each
// sample's outputs are the one-hot encoded characters shifted
// forward by one, so the output at the final timestep is the
// window's target character.
func NewSampleSet(c Corpus, v *Vocab, length, stride int) (sgd.SampleSet, error) {
	windows, err := Windows(c, length, stride)
	if err != nil {
		return nil, err
	}
	var res sgd.SliceSampleSet
	for _, w := range windows {
		inputs, err := v.Encode(w.Context)
		if err != nil {
			return nil, err
		}
		outputs, err := v.Encode(c.Slice(w.Offset+1, w.Offset+length+1))
		if err != nil {
			return nil, err
		}
		res = append(res, seqtoseq.Sample{
			Inputs:  inputs,
			Outputs: outputs,
		})
	}
	return res, nil
}
