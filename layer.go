package neuralnetwork

import (
	"github.com/jpuck/neural-network/dataset"
	"github.com/jpuck/neural-network/initializers"
	"github.com/jpuck/neural-network/penalties"
	"github.com/jpuck/neural-network/rng"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// NewLayer returns a Layer with the given number of inputs and outputs. Its weights and biases are
// zero until Init is called.
func NewLayer(inputs, outputs int) *Layer {
	l := newLayer(inputs, outputs)
	return &l
}

func newLayer(inputs, outputs int) Layer {
	w := dataset.New()
	w.SetSize(outputs, inputs)

	return Layer{
		weights:    w,
		bias:       make([]float64, outputs),
		net:        make([]float64, outputs),
		activation: make([]float64, outputs),
		deltas:     make([]float64, outputs),
	}
}

// Inputs returns the number of input values to the Layer.
func (l *Layer) Inputs() int {
	return l.weights.Cols()
}

// Outputs returns the number of units in the Layer.
func (l *Layer) Outputs() int {
	return len(l.bias)
}

// Weights returns the weight matrix of the Layer, with one row per unit and one column per input.
// The returned Matrix is not a copy.
func (l *Layer) Weights() *dataset.Matrix {
	return l.weights
}

// Bias returns the bias of every unit. The returned slice is not a copy.
func (l *Layer) Bias() []float64 {
	return l.bias
}

// Net returns the net value (weighted sum plus bias) of every unit from the last call to
// Forward. The returned slice is not a copy.
func (l *Layer) Net() []float64 {
	return l.net
}

// Activation returns the output of every unit from the last call to Forward. The returned slice
// is not a copy, and will be overwritten by the next call to Forward.
func (l *Layer) Activation() []float64 {
	return l.activation
}

// Deltas returns the error term of every unit from the last backward pass. The returned slice is
// not a copy.
func (l *Layer) Deltas() []float64 {
	return l.deltas
}

// Init sets every weight, then every bias, with the default Initializer.
func (l *Layer) Init(r *rng.Stream) {
	l.InitWith(r, initializers.Default())
}

// InitWith sets every weight, row by row, then every bias, with the given Initializer.
func (l *Layer) InitWith(r *rng.Stream, init initializers.Initializer) {
	fanIn := l.Inputs()
	for i := 0; i < l.Outputs(); i++ {
		init.Set(r, fanIn, l.weights.Row(i))
	}
	init.Set(r, fanIn, l.bias)
}

// Forward computes the net value and activation of every unit for the given input, which must have
// length Inputs().
func (l *Layer) Forward(input []float64) error {
	if len(input) != l.Inputs() {
		return errors.WithStack(SizeMismatchError{l.Inputs(), len(input), "inputs"})
	}

	for i := range l.net {
		l.net[i] = floats.Dot(l.weights.Row(i), input) + l.bias[i]
		l.activation[i] = squash(l.net[i])
	}

	return nil
}

// Backward computes the error terms of the Layer from those of the layer immediately after it,
// which must already have been computed. The inputs of downstream must be the outputs of l.
func (l *Layer) Backward(downstream *Layer) error {
	if downstream.Inputs() != l.Outputs() {
		return errors.WithStack(SizeMismatchError{l.Outputs(), downstream.Inputs(), "downstream inputs"})
	}

	for i := range l.deltas {
		var sum float64
		for j, d := range downstream.deltas {
			sum += downstream.weights.At(j, i) * d
		}

		// the derivative doesn't depend on j, so it's applied once
		l.deltas[i] = sum * squashDeriv(l.activation[i])
	}

	return nil
}

// SetPenalty sets the regularization applied to the weights by UpdateWeights. A nil Penalty
// removes it.
func (l *Layer) SetPenalty(p penalties.Penalty) {
	l.penalty = p
}

// UpdateWeights moves every weight by learningRate * error term * input, and every bias by
// learningRate * error term. input must be the same values that were given to Forward.
//
// If the Layer has a Penalty, every weight w also moves by -learningRate * Penalize(w).
func (l *Layer) UpdateWeights(input []float64, learningRate float64) error {
	if len(input) != l.Inputs() {
		return errors.WithStack(SizeMismatchError{l.Inputs(), len(input), "inputs"})
	}

	for j, d := range l.deltas {
		row := l.weights.Row(j)
		if l.penalty == nil {
			floats.AddScaled(row, learningRate*d, input)
		} else {
			alpha := learningRate * d
			for i, x := range input {
				row[i] += alpha*x - learningRate*l.penalty.Penalize(row[i])
			}
		}

		l.bias[j] += learningRate * d
	}

	return nil
}
