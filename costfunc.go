package neuralnetwork

// CostFunction measures how far the outputs of a Network are from their targets. Package costfuncs
// provides the implementations; the default is costfuncs.SquaredError.
type CostFunction interface {
	// Cost returns the cost of the given outputs w.r.t. the targets. arguments: actual values,
	// target values.
	Cost([]float64, []float64) (float64, error)

	// Deriv sets the derivative of the cost w.r.t. each output. args: actual values, target
	// values, destination. All three have the same length.
	Deriv([]float64, []float64, []float64) error
}

// SetCostFunction changes the CostFunction that training minimizes. If cf is nil, SetCostFunction
// will panic with type NilArgError.
func (net *Network) SetCostFunction(cf CostFunction) *Network {
	if cf == nil {
		panic(NilArgError{"CostFunction"})
	}

	net.copyCheck()
	net.cf = cf
	return net
}
