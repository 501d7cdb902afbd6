// Package neuralnetwork provides a small multilayer perceptron, trained one example at a time by
// stochastic backpropagation. For brevity, it is usually imported as 'nn'.
//
// Creating Networks
//
// A Network is a chain of fully-connected layers with hyperbolic-tangent activation. It is built
// from the number of units in every layer, inputs first and outputs last, and is initialized from
// a shared random stream:
//
//		r := rng.New(0)
//		net, err := nn.New(r, 3, 16, 2)
//		if err != nil {
//			return err
//		}
//
// The Network does not own the rng.Stream; the same stream may be used elsewhere, for example to
// shuffle a dataset. For the results to be reproducible, draws from the stream must happen in the
// same order from run to run.
//
// Training and Predicting
//
// Refine presents a single example to the Network, doing one forward pass, one backward pass and
// one update of every weight:
//
//		err := net.Refine(input, target, 0.02)
//
// Train does a whole training run over a pair of dataset.Matrix values, one row per example. It
// reinitializes the weights, then does 500 epochs over the rows in a freshly shuffled order, with
// a learning rate that starts at 0.1 and decays by a factor of 0.997 after every epoch. TrainWith
// allows a different number of epochs or a different schedule (see package hyperparams).
//
// Predict feeds an input through the Network and returns a copy of its outputs:
//
//		outs, err := net.Predict(input)
//
// Errors
//
// Every dimension mismatch is reported as an error and aborts the operation. The only panic is
// ErrCopied, for a Network that has been copied by value. EnableNumericTraps makes every forward
// and backward pass check for NaN and Inf values and fail with ErrNumericTrap as soon as one
// appears.
package neuralnetwork
