package hyperparams

type step struct {
	Epoch int
	Val   float64
}

type stepper []step

// Step returns a HyperParameter that starts at base and changes to new values at chosen epochs,
// given by Add. Steps must be added in increasing order of epoch.
func Step(base float64) *stepper {
	s := stepper{{0, base}}
	return &s
}

// Add adds a step to the HyperParameter: from the given epoch onwards, its value is value.
func (s *stepper) Add(epoch int, value float64) *stepper {
	*s = append(*s, step{epoch, value})
	return s
}

func (s *stepper) TypeString() string {
	return "step"
}

func (s *stepper) Value(epoch int) float64 {
	sl := []step(*s)
	for i := 1; i < len(sl); i++ {
		if sl[i].Epoch > epoch {
			return sl[i-1].Val
		}
	}

	return sl[len(sl)-1].Val
}
