package neuralnetwork

import (
	"github.com/pkg/errors"
)

// InputCount returns the number of input values the Network expects.
func (net *Network) InputCount() int {
	return net.layers[0].Inputs()
}

// OutputCount returns the number of values the Network produces.
func (net *Network) OutputCount() int {
	return net.layers[len(net.layers)-1].Outputs()
}

// NumLayers returns the number of Layers in the Network; one fewer than the number of sizes it was
// built from.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// Layer returns the Layer at the given index, with 0 being the first one to see the inputs. The
// Layer is owned by the Network and can't outlive it.
func (net *Network) Layer(index int) *Layer {
	return &net.layers[index]
}

// ForwardProp feeds the input through every Layer in turn, and returns the activation of the last
// one. The returned slice is not a copy: it is overwritten by the next pass through the Network.
//
// If the input doesn't have InputCount() values, ForwardProp returns type SizeMismatchError.
func (net *Network) ForwardProp(input []float64) ([]float64, error) {
	net.copyCheck()

	in := input
	for i := range net.layers {
		l := &net.layers[i]
		if err := l.Forward(in); err != nil {
			return nil, errors.Wrapf(err, "Can't feed forward through layer %d", i)
		}

		if err := trap(l.activation, "activation", i); err != nil {
			return nil, err
		}
		if err := trap(l.net, "net value", i); err != nil {
			return nil, err
		}

		in = l.activation
	}

	return in, nil
}

// Predict returns a copy of the outputs of the Network for the given input. If the input doesn't
// have InputCount() values, Predict returns type SizeMismatchError.
func (net *Network) Predict(input []float64) ([]float64, error) {
	outs, err := net.ForwardProp(input)
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), outs...), nil
}
