package neuralnetwork

import (
	"math"
	"time"

	"github.com/jpuck/neural-network/costfuncs"
	"github.com/jpuck/neural-network/dataset"
	"github.com/jpuck/neural-network/hyperparams"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Refine presents one example to the Network: it feeds the feature forward, computes the error
// terms of the output layer from the label, propagates them back through every Layer, then
// adjusts every weight by the given learning rate.
//
// The feature must have InputCount() values and the label OutputCount(); otherwise Refine returns
// type SizeMismatchError and leaves the weights untouched.
func (net *Network) Refine(feature, label []float64, learningRate float64) error {
	if len(label) != net.OutputCount() {
		return errors.WithStack(SizeMismatchError{net.OutputCount(), len(label), "label values"})
	}

	outs, err := net.ForwardProp(feature)
	if err != nil {
		return err
	}

	if err = net.outputDeltas(outs, label); err != nil {
		return err
	}

	if err = net.backpropagate(); err != nil {
		return err
	}

	return net.descend(feature, learningRate)
}

// outputDeltas sets the error terms of the last Layer: (target - output) * (1 - output^2).
func (net *Network) outputDeltas(outs, label []float64) error {
	if err := net.cf.Deriv(outs, label, net.costDerivs); err != nil {
		return errors.Wrapf(err, "Can't compute output error terms")
	}

	last := len(net.layers) - 1
	out := &net.layers[last]
	for i, d := range net.costDerivs {
		out.deltas[i] = -d * squashDeriv(out.activation[i])
	}

	return trap(out.deltas, "error term", last)
}

// backpropagate computes the error terms of every Layer but the last, from the last towards the
// first.
func (net *Network) backpropagate() error {
	for i := len(net.layers) - 1; i > 0; i-- {
		if err := net.layers[i-1].Backward(&net.layers[i]); err != nil {
			return errors.Wrapf(err, "Can't backpropagate from layer %d to layer %d", i, i-1)
		}

		if err := trap(net.layers[i-1].deltas, "error term", i-1); err != nil {
			return err
		}
	}

	return nil
}

// descend updates the weights of every Layer, each using the values that were fed to it on the
// last forward pass.
func (net *Network) descend(input []float64, learningRate float64) error {
	in := input
	for i := range net.layers {
		l := &net.layers[i]
		if err := l.UpdateWeights(in, learningRate); err != nil {
			return errors.Wrapf(err, "Can't update the weights of layer %d", i)
		}

		in = l.activation
	}

	return nil
}

// TrainArgs are the settings of a training run.
type TrainArgs struct {
	// Epochs is the number of passes over the training data.
	Epochs int

	// LearningRate gives the learning rate to use for each epoch.
	LearningRate hyperparams.HyperParameter

	// StatusEvery is the number of epochs between progress log entries. 0 disables them.
	StatusEvery int
}

const (
	defaultEpochs       int     = 500
	defaultLearningRate float64 = 0.1
	defaultDecay        float64 = 0.997
	defaultStatusEvery  int     = 50
)

// DefaultTrainArgs returns the settings used by Train: 500 epochs, with a learning rate that
// starts at 0.1 and is multiplied by 0.997 after every epoch.
func DefaultTrainArgs() TrainArgs {
	return TrainArgs{
		Epochs:       defaultEpochs,
		LearningRate: hyperparams.Decay(defaultLearningRate, defaultDecay),
		StatusEvery:  defaultStatusEvery,
	}
}

// Train trains the Network with DefaultTrainArgs. See TrainWith.
func (net *Network) Train(features, labels *dataset.Matrix) error {
	return net.TrainWith(features, labels, DefaultTrainArgs())
}

// TrainWith reinitializes the Network, then trains it for args.Epochs epochs over the rows of
// features and labels, where each row of labels holds the targets for the same row of features.
// Every epoch presents the rows in a new order, given by a Fisher-Yates shuffle drawn from the
// Network's random stream.
//
// TrainWith returns type SizeMismatchError if features and labels have different numbers of rows,
// or if their columns don't match the inputs and outputs of the Network.
func (net *Network) TrainWith(features, labels *dataset.Matrix, args TrainArgs) error {
	net.copyCheck()

	if features == nil {
		panic(NilArgError{"features"})
	} else if labels == nil {
		panic(NilArgError{"labels"})
	}

	if features.Rows() != labels.Rows() {
		return errors.WithStack(SizeMismatchError{features.Rows(), labels.Rows(), "label rows"})
	} else if features.Cols() != net.InputCount() {
		return errors.WithStack(SizeMismatchError{net.InputCount(), features.Cols(), "feature columns"})
	} else if labels.Cols() != net.OutputCount() {
		return errors.WithStack(SizeMismatchError{net.OutputCount(), labels.Cols(), "label columns"})
	}

	if args.LearningRate == nil {
		return errors.WithStack(NilArgError{"TrainArgs.LearningRate"})
	} else if args.Epochs < 0 {
		return errors.Errorf("Can't train for a negative number of epochs (%d)", args.Epochs)
	}

	net.Init()

	rows := features.Rows()
	indexes := make([]int, rows)
	for i := range indexes {
		indexes[i] = i
	}

	log := net.log.WithFields(logrus.Fields{
		"rows":   rows,
		"epochs": args.Epochs,
		"layers": net.NumLayers(),
	})
	log.Debug("Starting training")
	start := time.Now()

	for epoch := 0; epoch < args.Epochs; epoch++ {
		for j := rows - 1; j > 0; j-- {
			k, err := net.rand.NextN(uint64(j + 1))
			if err != nil {
				return err
			}
			indexes[j], indexes[k] = indexes[k], indexes[j]
		}

		learningRate := args.LearningRate.Value(epoch)
		if args.StatusEvery > 0 && epoch%args.StatusEvery == 0 {
			log.WithFields(logrus.Fields{
				"epoch":         epoch,
				"learning_rate": learningRate,
			}).Debug("Training")
		}

		for _, index := range indexes {
			if err := net.Refine(features.Row(index), labels.Row(index), learningRate); err != nil {
				return errors.Wrapf(err, "Training failed on epoch %d, row %d", epoch, index)
			}
		}
	}

	log.WithField("elapsed", time.Since(start)).Debug("Done training")
	return nil
}

// Test returns the root-mean-square error of the Network over the rows of features and labels:
// the square root of the total squared error of all outputs, divided by the number of rows. It is
// measured the same way whatever CostFunction the Network is trained against.
func (net *Network) Test(features, labels *dataset.Matrix) (float64, error) {
	if features.Rows() != labels.Rows() {
		return 0, errors.WithStack(SizeMismatchError{features.Rows(), labels.Rows(), "label rows"})
	} else if features.Rows() == 0 {
		return 0, errors.Errorf("Can't test on zero rows")
	}

	var sse float64
	for r := 0; r < features.Rows(); r++ {
		outs, err := net.ForwardProp(features.Row(r))
		if err != nil {
			return 0, errors.Wrapf(err, "Can't test row %d", r)
		}

		cost, err := costfuncs.SquaredError().Cost(outs, labels.Row(r))
		if err != nil {
			return 0, errors.Wrapf(err, "Can't test row %d", r)
		}
		sse += cost
	}

	return math.Sqrt(sse / float64(features.Rows())), nil
}
