package neuralnetwork

import (
	"github.com/jpuck/neural-network/costfuncs"
	"github.com/jpuck/neural-network/initializers"
	"github.com/jpuck/neural-network/penalties"
	"github.com/jpuck/neural-network/rng"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// New builds a Network with one Layer for each adjacent pair of the given sizes, then initializes
// it from r. The first size is the number of inputs and the last the number of outputs, so at
// least two are required, and every size must be at least 1.
//
// r is used for every random draw the Network makes; it is not owned by the Network.
func New(r *rng.Stream, sizes ...int) (*Network, error) {
	if r == nil {
		panic(NilArgError{"rng.Stream"})
	}

	if len(sizes) < 2 {
		return nil, errors.Wrapf(ErrTooFewLayers, "Can't make a Network from %d sizes", len(sizes))
	}
	for i, s := range sizes {
		if s < 1 {
			return nil, errors.Wrapf(ErrLayerSize, "Can't make a Network, size %d is %d", i, s)
		}
	}

	net := &Network{
		rand: r,
		init: initializers.Default(),
		cf:   costfuncs.SquaredError(),
		log:  logrus.StandardLogger(),
	}
	net.addr = net

	for i := 1; i < len(sizes); i++ {
		net.layers = append(net.layers, newLayer(sizes[i-1], sizes[i]))
	}
	net.costDerivs = make([]float64, sizes[len(sizes)-1])

	net.Init()
	return net, nil
}

// copyCheck panics if net is a copy of another Network.
func (net *Network) copyCheck() {
	if net.addr != net {
		panic(ErrCopied)
	}
}

// Init sets the weights and biases of every Layer, in order, from the Network's random stream.
func (net *Network) Init() {
	net.copyCheck()
	for i := range net.layers {
		net.layers[i].InitWith(net.rand, net.init)
	}
}

// SetInitializer changes the Initializer used by Init (and so by Train). It does not reinitialize
// the Network. If init is nil, SetInitializer will panic with type NilArgError.
func (net *Network) SetInitializer(init initializers.Initializer) *Network {
	if init == nil {
		panic(NilArgError{"Initializer"})
	}

	net.copyCheck()
	net.init = init
	return net
}

// SetLogger changes where the Network writes its log entries. By default, it is the standard
// logrus logger. If log is nil, SetLogger will panic with type NilArgError.
func (net *Network) SetLogger(log logrus.FieldLogger) *Network {
	if log == nil {
		panic(NilArgError{"Logger"})
	}

	net.copyCheck()
	net.log = log
	return net
}

// SetPenalty sets the regularization applied to the weights of every Layer during training. A nil
// Penalty, the default, leaves the updates as plain backpropagation.
func (net *Network) SetPenalty(p penalties.Penalty) *Network {
	net.copyCheck()
	for i := range net.layers {
		net.layers[i].SetPenalty(p)
	}
	return net
}
