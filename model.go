package charlm

import (
	"errors"
	"os"

	"github.com/unixpickle/autofunc"
	"github.com/unixpickle/serializer"
	"github.com/unixpickle/sgd"
	"github.com/unixpickle/weakai/neuralnet"
	"github.com/unixpickle/weakai/rnn"
	"github.com/unixpickle/weakai/rnn/seqtoseq"
)

// maxTrainingLanes caps how many sequences the gradienter
// evaluates simultaneously.
const maxTrainingLanes = 16

func init() {
	var m Model
	serializer.RegisterTypedDeserializer(m.SerializerType(), DeserializeModel)
}

// A Model is a character-level next-character predictor: one
// LSTM layer followed by a fully-connected layer with
// log-softmax outputs over the vocabulary.
//
// The parameters are mutated only by Train; during generation
// the model is read-only.
type Model struct {
	Vocab      *Vocab
	WindowSize int
	Block      rnn.StackedBlock
}

// NewModel creates a randomly-initialized model for the given
// vocabulary, input window length, and hidden layer size.
func NewModel(v *Vocab, windowSize, hiddenSize int) *Model {
	outNet := neuralnet.Network{
		&neuralnet.DenseLayer{
			InputCount:  hiddenSize,
			OutputCount: v.Size(),
		},
		&neuralnet.LogSoftmaxLayer{},
	}
	outNet.Randomize()
	return &Model{
		Vocab:      v,
		WindowSize: windowSize,
		Block: rnn.StackedBlock{
			rnn.NewLSTM(v.Size(), hiddenSize),
			rnn.NewNetworkBlock(outNet, 0),
		},
	}
}

// DeserializeModel deserializes a Model.
func DeserializeModel(d []byte) (*Model, error) {
	slice, err := serializer.DeserializeSlice(d)
	if err != nil {
		return nil, err
	}
	if len(slice) != 3 {
		return nil, errors.New("invalid Model slice")
	}
	vocab, ok1 := slice[0].(*Vocab)
	window, ok2 := slice[1].(serializer.Int)
	block, ok3 := slice[2].(rnn.StackedBlock)
	if !ok1 || !ok2 || !ok3 {
		return nil, errors.New("invalid Model slice")
	}
	return &Model{
		Vocab:      vocab,
		WindowSize: int(window),
		Block:      block,
	}, nil
}

// ReadModel reads a serialized model from a file.
func ReadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DeserializeModel(data)
}

// Gradienter creates an sgd.Gradienter which computes
// Adam-adjusted gradients of the cross-entropy objective.
func (m *Model) Gradienter() sgd.Gradienter {
	return &sgd.Adam{
		Gradienter: &seqtoseq.Gradienter{
			SeqFunc:  &rnn.BlockSeqFunc{B: m.Block},
			Learner:  m.Block,
			CostFunc: neuralnet.DotCost{},
			MaxLanes: maxTrainingLanes,
		},
	}
}

// Train runs mini-batch training epochs over a sample set,
// shuffling before each epoch.
// After each epoch, statusFn (if non-nil) receives the epoch
// index and the average per-character cost.
func (m *Model) Train(samples sgd.SampleSet, stepSize float64, batchSize, epochs int,
	statusFn func(epoch int, cost float64)) {
	grad := m.Gradienter()
	for epoch := 0; epoch < epochs; epoch++ {
		sgd.ShuffleSampleSet(samples)
		sgd.SGD(grad, samples, stepSize, 1, batchSize)
		if statusFn != nil {
			statusFn(epoch, m.Cost(samples, batchSize))
		}
	}
}

// Cost measures the average per-character cross entropy of the
// model on a sample set.
func (m *Model) Cost(samples sgd.SampleSet, batchSize int) float64 {
	total := seqtoseq.TotalCostBlock(m.Block, batchSize, samples, neuralnet.DotCost{})
	return total / float64(samples.Len()*m.WindowSize)
}

// Parameters returns the parameters of the model's layers.
func (m *Model) Parameters() []*autofunc.Variable {
	return m.Block.Parameters()
}

// SerializerType returns the unique ID used to serialize
// Models with the serializer package.
func (m *Model) SerializerType() string {
	return "github.com/unixpickle/charlm.Model"
}

// Serialize serializes the model's vocabulary, window size,
// and parameters.
func (m *Model) Serialize() ([]byte, error) {
	return serializer.SerializeSlice([]serializer.Serializer{
		m.Vocab,
		serializer.Int(m.WindowSize),
		m.Block,
	})
}

// WriteFile serializes the model and writes it to a file.
func (m *Model) WriteFile(path string) error {
	data, err := m.Serialize()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
