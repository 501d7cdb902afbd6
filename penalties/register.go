// Package penalties provides regularization terms that pull weights towards zero during training.
// Biases are never penalized.
package penalties

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Penalty gives the derivative of a regularization term w.r.t. a single weight. Training
// subtracts learningRate * Penalize(w) from every weight, in addition to the usual update.
type Penalty interface {
	TypeString() string

	Penalize(w float64) float64
}

// Parse builds a Penalty from a textual description: "l1:<λ>", "l2:<λ>" or
// "elastic-net:<α>,<λ>". The empty string and "none" give a nil Penalty.
func Parse(desc string) (Penalty, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" || strings.EqualFold(desc, "none") {
		return nil, nil
	}

	name, list, _ := strings.Cut(desc, ":")
	var args []float64
	for _, f := range strings.Split(list, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't parse penalty %q", desc)
		}
		args = append(args, v)
	}

	want := 1
	var p Penalty
	switch strings.ToLower(name) {
	case "l1", "lasso", L1(0).TypeString():
		if len(args) == want {
			p = L1(args[0])
		}
	case "l2", "ridge", L2(0).TypeString():
		if len(args) == want {
			p = L2(args[0])
		}
	case ElasticNet(0, 0).TypeString():
		if want = 2; len(args) == want {
			p = ElasticNet(args[0], args[1])
		}
	default:
		return nil, errors.Errorf("Can't parse penalty %q, unknown type %q", desc, name)
	}

	if p == nil {
		return nil, errors.Errorf("Can't parse penalty %q, expected %d arguments, got %d", desc, want, len(args))
	}
	return p, nil
}
