package charlm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/weakai/rnn/seqtoseq"
)

func TestWindowsCount(t *testing.T) {
	tests := []struct {
		CorpusLen int
		Length    int
		Stride    int
	}{
		{12, 4, 1},
		{12, 4, 3},
		{100, 7, 3},
		{101, 7, 3},
		{5, 4, 10},
	}
	for _, test := range tests {
		corpus := NewCorpus(strings.Repeat("abc", (test.CorpusLen+2)/3)[:test.CorpusLen])
		windows, err := Windows(corpus, test.Length, test.Stride)
		require.NoError(t, err)
		expected := (test.CorpusLen - test.Length) / test.Stride
		assert.Equal(t, expected, len(windows))
	}
}

func TestWindowsContiguity(t *testing.T) {
	corpus := NewCorpus("the quick brown fox jumps over the lazy dog")
	windows, err := Windows(corpus, 5, 2)
	require.NoError(t, err)
	for _, w := range windows {
		assert.Len(t, w.Context, 5)
		joined := string(w.Context) + string(w.Target)
		at := string(corpus.Slice(w.Offset, w.Offset+6))
		assert.Equal(t, at, joined)
	}
}

func TestWindowsEndToEnd(t *testing.T) {
	corpus := NewCorpus("abcabcabcabc")
	windows, err := Windows(corpus, 4, 1)
	require.NoError(t, err)
	require.Equal(t, 8, len(windows))
	for i, w := range windows {
		assert.Equal(t, i, w.Offset)
		assert.Equal(t, string(corpus.Slice(i, i+4)), string(w.Context))
		assert.Equal(t, corpus.At(i+4), w.Target)
	}
	assert.Equal(t, 3, NewVocab(corpus).Size())
}

func TestWindowsErrors(t *testing.T) {
	corpus := NewCorpus("abcabc")
	_, err := Windows(corpus, 0, 1)
	assert.Error(t, err)
	_, err = Windows(corpus, 4, 0)
	assert.Error(t, err)
	_, err = Windows(corpus, 6, 1)
	assert.Error(t, err)
	_, err = Windows(corpus, 10, 1)
	assert.Error(t, err)
}

func TestNewSampleSet(t *testing.T) {
	corpus := NewCorpus("abcabcabcabc")
	vocab := NewVocab(corpus)
	samples, err := NewSampleSet(corpus, vocab, 4, 1)
	require.NoError(t, err)
	require.Equal(t, 8, samples.Len())

	for i := 0; i < samples.Len(); i++ {
		sample, ok := samples.GetSample(i).(seqtoseq.Sample)
		require.True(t, ok)
		require.Len(t, sample.Inputs, 4)
		require.Len(t, sample.Outputs, 4)
		for j, in := range sample.Inputs {
			idx, err := vocab.Index(corpus.At(i + j))
			require.NoError(t, err)
			assert.Equal(t, 1.0, in[idx])
		}
		// outputs are the inputs shifted forward by one; the final
		// output is the window's target character
		for j, out := range sample.Outputs {
			idx, err := vocab.Index(corpus.At(i + j + 1))
			require.NoError(t, err)
			assert.Equal(t, 1.0, out[idx])
		}
	}
}
