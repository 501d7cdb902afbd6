package neuralnetwork

import (
	"strconv"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrTooFewLayers = Error{"a Network needs at least an input and an output size"}
	ErrLayerSize    = Error{"layer sizes must be at least 1"}
	ErrNumericTrap  = Error{"non-finite value encountered"}
	ErrCopied       = Error{"Network copied by value; big objects should be passed by reference"}
)

// SizeMismatchError documents errors resulting from the length of some set of values not
// matching what was expected. What names the values, for example "inputs".
type SizeMismatchError struct {
	Expected, Got int
	What          string
}

func (err SizeMismatchError) Error() string {
	return "mismatched number of " + err.What + ": expected " + strconv.Itoa(err.Expected) + ", got " + strconv.Itoa(err.Got)
}

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}
