package charlm

import (
	"errors"
	"math"

	"github.com/unixpickle/num-analysis/linalg"
	"github.com/unixpickle/weakai/rnn"
)

// A Generator extends a seed string one character at a time by
// sampling from a model's next-character distribution.
type Generator struct {
	Model   *Model
	Sampler *Sampler
}

// Generate produces exactly n new characters following the
// seed.
//
// The seed is normalized the same way a corpus is, and every
// seed character must be in the model's vocabulary. At each
// step the rolling window of the most recent characters (never
// longer than the model's window size) is fed through the
// model, one character is sampled from the resulting
// distribution, and the window slides forward by one.
func (g *Generator) Generate(seed string, n int) (string, error) {
	window := NewCorpus(seed)
	if len(window) == 0 {
		return "", errors.New("generation seed is empty after normalization")
	}
	if !g.Model.Vocab.Contains(window) {
		return "", errors.New("generation seed contains characters outside the vocabulary")
	}
	if len(window) > g.Model.WindowSize {
		window = window[len(window)-g.Model.WindowSize:]
	}

	runner := &rnn.Runner{Block: g.Model.Block}
	var out []rune
	for i := 0; i < n; i++ {
		probs, err := g.step(runner, window)
		if err != nil {
			return "", err
		}
		idx, err := g.Sampler.Sample(probs)
		if err != nil {
			return "", err
		}
		ch, err := g.Model.Vocab.Char(idx)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
		window = append(window, ch)
		if len(window) > g.Model.WindowSize {
			window = window[1:]
		}
	}
	return string(out), nil
}

// step evaluates the model on a window of characters and
// returns the next-character probability distribution.
func (g *Generator) step(runner *rnn.Runner, window Corpus) (linalg.Vector, error) {
	inputs, err := g.Model.Vocab.Encode(window)
	if err != nil {
		return nil, err
	}
	runner.Reset()
	var logProbs linalg.Vector
	for _, in := range inputs {
		logProbs = runner.StepTime(in)
	}
	probs := make(linalg.Vector, len(logProbs))
	for i, lp := range logProbs {
		probs[i] = math.Exp(lp)
	}
	return probs, nil
}
