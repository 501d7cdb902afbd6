package rng

import (
	"math"

	"github.com/pkg/errors"
)

func invalid(dist string, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, "Can't draw from %s distribution, "+format, append([]interface{}{dist}, args...)...)
}

// Normal returns a value from the standard normal distribution, generated by the polar form of the
// Box-Muller transform. Multiply by the deviation and add the mean to get an arbitrary normal.
func (s *Stream) Normal() float64 {
	var x, y, mag float64
	for {
		x = s.Uniform()*2 - 1
		y = s.Uniform()*2 - 1
		mag = x*x + y*y
		if mag < 1 && mag != 0 {
			break
		}
	}

	return y * math.Sqrt(-2*math.Log(mag)/mag)
}

// Exponential returns a value from the standard exponential distribution. Divide by the rate (or
// multiply by the scale) for an arbitrary exponential distribution.
func (s *Stream) Exponential() float64 {
	return -math.Log(s.Uniform())
}

// Cauchy returns a value from the standard Cauchy distribution.
func (s *Stream) Cauchy() float64 {
	return s.Normal() / s.Normal()
}

// Logistic returns a value from the standard logistic distribution. Multiply by the scale and add
// the mean for an arbitrary logistic distribution.
func (s *Stream) Logistic() float64 {
	y := s.Uniform()
	return math.Log(y) - math.Log(1-y)
}

// LogNormal returns a value from a log-normal distribution whose logarithm has the given mean and
// deviation. The deviation must be positive.
func (s *Stream) LogNormal(mean, dev float64) (float64, error) {
	if dev <= 0 {
		return 0, invalid("log-normal", "deviation must be > 0 (%v)", dev)
	}

	return math.Exp(s.Normal()*dev + mean), nil
}

// Gamma returns a value from a gamma distribution with the given shape and a scale of 1. Multiply
// the result by theta for an arbitrary scale. alpha must be positive.
//
// For alpha < 1 the Ahrens-Dieter acceptance/rejection method is used; for alpha > 1 it is
// Cheng's ratio-of-uniforms method (with the faster squeeze for alpha > 2.5).
func (s *Stream) Gamma(alpha float64) (float64, error) {
	if alpha <= 0 {
		return 0, invalid("gamma", "alpha must be > 0 (%v)", alpha)
	}

	if alpha == 1 {
		return s.Exponential(), nil
	}

	if alpha < 1 {
		aa := (alpha + math.E) / math.E
		for {
			r1 := s.Uniform()
			r2 := s.Uniform()
			if r1 > 1/aa {
				x := -math.Log(aa * (1 - r1) / alpha)
				if r2 < math.Pow(x, alpha-1) {
					return x, nil
				}
			} else {
				x := math.Pow(aa*r1, 1/alpha)
				if r2 < math.Exp(-x) {
					return x, nil
				}
			}
		}
	}

	c1 := alpha - 1
	c2 := (alpha - 1/(6*alpha)) / c1
	c3 := 2 / c1
	c4 := c3 + 2
	c5 := 1 / math.Sqrt(alpha)
	for {
		var r1, r2 float64
		for {
			r1 = s.Uniform()
			r2 = s.Uniform()
			if alpha > 2.5 {
				r1 = r2 + c5*(1-1.86*r1)
			}

			if r1 > 0 && r1 < 1 {
				break
			}
		}

		w := c2 * r2 / r1
		if c3*r1+w+1/w <= c4 {
			return c1 * w, nil
		}
		if c3*math.Log(r1)-math.Log(w)+w < 1 {
			return c1 * w, nil
		}
	}
}

// Beta returns a value from a beta distribution. Both parameters must be positive.
func (s *Stream) Beta(alpha, beta float64) (float64, error) {
	if alpha <= 0 || beta <= 0 {
		return 0, invalid("beta", "alpha and beta must be > 0 (%v, %v)", alpha, beta)
	}

	r, err := s.Gamma(alpha)
	if err != nil {
		return 0, err
	}
	q, err := s.Gamma(beta)
	if err != nil {
		return 0, err
	}
	return r / (r + q), nil
}

// ChiSquare returns a value from a chi-squared distribution with t degrees of freedom.
func (s *Stream) ChiSquare(t float64) (float64, error) {
	if t <= 0 {
		return 0, invalid("chi-squared", "degrees of freedom must be > 0 (%v)", t)
	}

	g, err := s.Gamma(t / 2)
	if err != nil {
		return 0, err
	}

	return 2 * g, nil
}

// Student returns a value from Student's t-distribution with t degrees of freedom.
func (s *Stream) Student(t float64) (float64, error) {
	if t <= 0 {
		return 0, invalid("Student's t", "degrees of freedom must be > 0 (%v)", t)
	}

	n := s.Normal()
	c, err := s.ChiSquare(t)
	if err != nil {
		return 0, err
	}
	return n / math.Sqrt(c/t), nil
}

// F returns a value from an F-distribution with t and u degrees of freedom.
func (s *Stream) F(t, u float64) (float64, error) {
	if t <= 0 || u <= 0 {
		return 0, invalid("F", "degrees of freedom must be > 0 (%v, %v)", t, u)
	}

	ct, err := s.ChiSquare(t)
	if err != nil {
		return 0, err
	}
	cu, err := s.ChiSquare(u)
	if err != nil {
		return 0, err
	}
	return ct * u / (t * cu), nil
}

// Weibull returns a value from a Weibull distribution with the given shape and lambda = 1.
func (s *Stream) Weibull(gamma float64) (float64, error) {
	if gamma <= 0 {
		return 0, invalid("Weibull", "shape must be > 0 (%v)", gamma)
	}

	return math.Pow(s.Exponential(), 1/gamma), nil
}

// SoftImpulse returns a value from the soft-impulse distribution, with support [0, 1]. Its
// cumulative distribution is the soft-step function 1/((1/x-1)^s+1); the mean is always 0.5, where
// the density is s.
func (s *Stream) SoftImpulse(steepness float64) (float64, error) {
	if steepness <= 0 {
		return 0, invalid("soft-impulse", "steepness must be > 0 (%v)", steepness)
	}

	y := s.Uniform()
	return 1 / (1 + math.Pow(1/y-1, 1/steepness)), nil
}

// smallPoisson is the largest mean for which Poisson uses Knuth's multiplication method.
const smallPoisson = 30

// Poisson returns a value from a Poisson distribution with mean mu. Small means multiply uniforms
// until the product drops below e^-mu; large means use the rejection method of Atkinson.
func (s *Stream) Poisson(mu float64) (int, error) {
	if mu <= 0 {
		return 0, invalid("Poisson", "mean must be > 0 (%v)", mu)
	}

	if mu < smallPoisson {
		limit := math.Exp(-mu)
		p := 1.0
		n := 0
		for {
			p *= s.Uniform()
			n++
			if p < limit {
				return n - 1, nil
			}
		}
	}

	c := 0.767 - 3.36/mu
	b := math.Pi / math.Sqrt(3*mu)
	a := b * mu
	k := math.Log(c) - mu - math.Log(b)
	for {
		var x float64
		for {
			u1 := s.Uniform()
			x = (a - math.Log(0.1e-18+(1-u1)/u1)) / b
			if x > -0.5 {
				break
			}
		}

		n := int(x + 0.5)
		u2 := s.Uniform()
		y := 1 + math.Exp(a-b*x)
		lhs := a - b*x + math.Log(0.1e-18+u2/(y*y))
		lg, _ := math.Lgamma(float64(n) + 1)
		rhs := k + float64(n)*math.Log(0.1e-18+mu) - lg
		if lhs <= rhs {
			return n, nil
		}
	}
}

// Binomial returns the number of successes among n independent trials, each succeeding with
// probability p.
func (s *Stream) Binomial(n int, p float64) (int, error) {
	if n < 0 {
		return 0, invalid("binomial", "number of trials must be >= 0 (%d)", n)
	} else if p < 0 || p > 1 {
		return 0, invalid("binomial", "probability must be in [0, 1] (%v)", p)
	}

	c := 0
	for i := 0; i < n; i++ {
		if s.Uniform() < p {
			c++
		}
	}

	return c, nil
}

// Geometric returns a value from a geometric distribution with support {0, 1, 2, ...}: the number
// of failures before the first success, where each trial succeeds with probability p.
func (s *Stream) Geometric(p float64) (int, error) {
	if p <= 0 || p > 1 {
		return 0, invalid("geometric", "probability must be in (0, 1] (%v)", p)
	}

	return int(math.Floor(-s.Exponential() / math.Log(1-p))), nil
}

// Categorical returns an index drawn according to the given vector of category probabilities.
// If the probabilities sum to less than the uniform value drawn, Categorical returns
// ErrUnnormalized.
func (s *Stream) Categorical(probabilities []float64) (int, error) {
	d := s.Uniform()
	for i, p := range probabilities {
		d -= p
		if d < 0 {
			return i, nil
		}
	}

	return len(probabilities) - 1, errors.Wrapf(ErrUnnormalized, "Can't draw from categorical distribution over %d values", len(probabilities))
}

// Dirichlet fills out with a value from a Dirichlet distribution with the given parameters. out
// and params must have the same length, and every parameter must be positive.
func (s *Stream) Dirichlet(out, params []float64) error {
	if len(out) != len(params) {
		return invalid("Dirichlet", "output and parameters differ in length (%d != %d)", len(out), len(params))
	}

	var sum float64
	for i, p := range params {
		g, err := s.Gamma(p)
		if err != nil {
			return errors.Wrapf(err, "Dirichlet parameter %d", i)
		}

		out[i] = g
		sum += g
	}

	scale(out, 1/sum)
	return nil
}
