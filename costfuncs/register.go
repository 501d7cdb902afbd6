// Package costfuncs provides the cost functions that a Network can be trained against. Each one
// implements neuralnetwork.CostFunction.
package costfuncs

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// CostFunction is the interface that every cost function in this package satisfies. It is
// identical to neuralnetwork.CostFunction, with the addition of TypeString.
type CostFunction interface {
	TypeString() string

	// Cost returns the cost of the given outputs w.r.t. the targets.
	Cost(outs, targets []float64) (float64, error)

	// Deriv sets ds to the derivative of the cost w.r.t. each output.
	Deriv(outs, targets, ds []float64) error
}

var list = map[string]func() CostFunction{
	SquaredError().TypeString(): func() CostFunction { return SquaredError() },
	Abs().TypeString():          func() CostFunction { return Abs() },
	Huber(1).TypeString():       func() CostFunction { return Huber(1) },
}

// ByName returns the cost function with the given TypeString, with default parameters.
func ByName(name string) (CostFunction, error) {
	f, ok := list[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("Unknown cost function %q, expected one of %s", name, strings.Join(Names(), ", "))
	}

	return f(), nil
}

// Names returns the TypeString of every cost function, in sorted order.
func Names() []string {
	names := make([]string, 0, len(list))
	for n := range list {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func checkLengths(name string, outs, targets []float64) error {
	if len(outs) != len(targets) {
		return errors.Errorf("Can't get cost of %q, len(outs) != len(targets) (%d != %d)", name, len(outs), len(targets))
	}
	return nil
}

func checkDerivLengths(name string, outs, targets, ds []float64) error {
	if len(outs) != len(targets) || len(ds) != len(outs) {
		return errors.Errorf("Can't get derivative of %q, mismatched lengths (%d, %d, %d)", name, len(outs), len(targets), len(ds))
	}
	return nil
}
