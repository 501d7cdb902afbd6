package neuralnetwork

import (
	"github.com/jpuck/neural-network/dataset"
	"github.com/jpuck/neural-network/initializers"
	"github.com/jpuck/neural-network/penalties"
	"github.com/jpuck/neural-network/rng"
	"github.com/sirupsen/logrus"
)

// noCopy lets `go vet` report copies of the structs that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Network is a multilayer perceptron: an ordered chain of Layers, where the outputs of each layer
// are the inputs of the next.
type Network struct {
	_ noCopy

	// addr is the address of the Network, for detecting copies
	addr *Network

	// shared with other users; not owned by the Network
	rand *rng.Stream

	// owned exclusively by the Network. For every i > 0, layers[i].Inputs() equals
	// layers[i-1].Outputs()
	layers []Layer

	init initializers.Initializer
	cf   CostFunction
	log  logrus.FieldLogger

	// scratch space for the derivative of the cost w.r.t. the outputs
	costDerivs []float64
}

// Layer is a single fully-connected layer of tanh units.
type Layer struct {
	// rows correspond to output units, columns to inputs
	weights *dataset.Matrix

	bias []float64

	// these are overwritten by every call to Forward
	net        []float64
	activation []float64

	// the error term of each unit, overwritten by every backward pass. It is the negative
	// derivative of the cost w.r.t. the unit's net value.
	deltas []float64

	// nil unless the weights are regularized
	penalty penalties.Penalty
}
