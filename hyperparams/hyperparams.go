// Package hyperparams provides schedules for values that change over the course of training, such
// as the learning rate. Schedules are indexed by epoch.
package hyperparams

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// HyperParameter gives the value of a hyperparameter at a given epoch, starting from 0.
type HyperParameter interface {
	// TypeString returns the name of the type of schedule, e.g. "constant"
	TypeString() string

	Value(epoch int) float64
}

var constructors = map[string]func([]float64) (HyperParameter, error){
	"constant": func(args []float64) (HyperParameter, error) {
		if len(args) != 1 {
			return nil, errors.Errorf("constant takes 1 argument, got %d", len(args))
		}
		return Constant(args[0]), nil
	},
	"decay": func(args []float64) (HyperParameter, error) {
		if len(args) != 2 {
			return nil, errors.Errorf("decay takes 2 arguments, got %d", len(args))
		}
		return Decay(args[0], args[1]), nil
	},
	"step": func(args []float64) (HyperParameter, error) {
		if len(args)%2 != 1 {
			return nil, errors.Errorf("step takes a base value followed by epoch/value pairs, got %d arguments", len(args))
		}

		s := Step(args[0])
		for i := 1; i < len(args); i += 2 {
			s.Add(int(args[i]), args[i+1])
		}
		return s, nil
	},
}

// Parse builds a HyperParameter from a textual description of the form "<type>:<arg>,<arg>...",
// for example "constant:0.05", "decay:0.1,0.997" or "step:0.1,100,0.05,200,0.01".
func Parse(desc string) (HyperParameter, error) {
	name, list, ok := strings.Cut(desc, ":")
	if !ok {
		return nil, errors.Errorf("Can't parse hyperparameter %q, expected <type>:<args>", desc)
	}

	ctor := constructors[strings.ToLower(strings.TrimSpace(name))]
	if ctor == nil {
		return nil, errors.Errorf("Can't parse hyperparameter %q, unknown type %q", desc, name)
	}

	var args []float64
	for _, field := range strings.Split(list, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't parse hyperparameter %q", desc)
		}
		args = append(args, f)
	}

	hp, err := ctor(args)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't parse hyperparameter %q", desc)
	}
	return hp, nil
}
