// Command converge trains a Network on a synthetic regression problem, or on a pair of ARFF files,
// and reports the root-mean-square error on held-out rows.
//
// With no ARFF files, the inputs are three independent uniforms in [0, 1) and the targets are the
// mean of the inputs and the product of the first two minus the third.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	nn "github.com/jpuck/neural-network"
	"github.com/jpuck/neural-network/costfuncs"
	"github.com/jpuck/neural-network/dataset"
	"github.com/jpuck/neural-network/hyperparams"
	"github.com/jpuck/neural-network/initializers"
	"github.com/jpuck/neural-network/penalties"
	"github.com/jpuck/neural-network/rng"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type config struct {
	seed      uint64
	samples   int
	held      int
	hidden    string
	epochs    int
	rate      string
	init      string
	cost      string
	penalty   string
	features  string
	labels    string
	statusGap int
	traps     bool
	verbose   bool
}

func parseFlags() config {
	var c config
	flag.Uint64Var(&c.seed, "seed", 0, "seed of the random stream")
	flag.IntVar(&c.samples, "samples", 100000, "number of synthetic training rows")
	flag.IntVar(&c.held, "test", 100, "number of rows held out for testing")
	flag.StringVar(&c.hidden, "hidden", "16", "comma-separated sizes of the hidden layers")
	flag.IntVar(&c.epochs, "epochs", 500, "number of training epochs")
	flag.StringVar(&c.rate, "rate", "decay:0.1,0.997", "learning rate schedule, as <type>:<args>")
	flag.StringVar(&c.init, "init", "scaled-normal", "weight initializer, one of "+strings.Join(initializers.Names(), ", "))
	flag.StringVar(&c.cost, "cost", "squared-error", "cost function, one of "+strings.Join(costfuncs.Names(), ", "))
	flag.StringVar(&c.penalty, "penalty", "none", "weight penalty: none, l1:<λ>, l2:<λ> or elastic-net:<α>,<λ>")
	flag.StringVar(&c.features, "features", "", "ARFF file of features; requires -labels")
	flag.StringVar(&c.labels, "labels", "", "ARFF file of labels, one row per row of -features")
	flag.IntVar(&c.statusGap, "status", 50, "epochs between progress log entries")
	flag.BoolVar(&c.traps, "fpe", false, "fail at the first NaN or infinity")
	flag.BoolVar(&c.verbose, "v", false, "log training progress")
	flag.Parse()
	return c
}

// synthesize fills a features and labels matrix with the synthetic problem
func synthesize(r *rng.Stream, rows int) (features, labels *dataset.Matrix) {
	features, labels = dataset.New(), dataset.New()
	features.SetSize(rows, 3)
	labels.SetSize(rows, 2)
	for i := 0; i < rows; i++ {
		x := features.Row(i)
		for j := range x {
			x[j] = r.Uniform()
		}

		y := labels.Row(i)
		y[0] = (x[0] + x[1] + x[2]) / 3
		y[1] = x[0]*x[1] - x[2]
	}

	return
}

func load(c config, r *rng.Stream) (features, labels *dataset.Matrix, err error) {
	if c.features == "" && c.labels == "" {
		features, labels = synthesize(r, c.samples+c.held)
		return
	} else if c.features == "" || c.labels == "" {
		return nil, nil, errors.Errorf("-features and -labels must be given together")
	}

	features, labels = dataset.New(), dataset.New()
	if err = features.LoadARFF(c.features); err != nil {
		return nil, nil, err
	}
	if err = labels.LoadARFF(c.labels); err != nil {
		return nil, nil, err
	}

	// loaded rows may be in any order; hold out a random selection
	if err = features.Shuffle(r, labels); err != nil {
		return nil, nil, err
	}
	return
}

// split returns the first rows of m, and the remaining held rows
func split(m *dataset.Matrix, held int) (train, test *dataset.Matrix, err error) {
	train, test = dataset.New(), dataset.New()
	n := m.Rows() - held
	if err = train.CopyPart(m, 0, 0, n, m.Cols()); err != nil {
		return nil, nil, err
	}
	if err = test.CopyPart(m, n, 0, held, m.Cols()); err != nil {
		return nil, nil, err
	}
	return
}

func sizes(inputs int, hidden string, outputs int) ([]int, error) {
	s := []int{inputs}
	if hidden != "" {
		for _, f := range strings.Split(hidden, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, errors.Wrapf(err, "Can't parse hidden layer size %q", f)
			}
			s = append(s, n)
		}
	}
	return append(s, outputs), nil
}

func run(c config) error {
	if c.traps {
		nn.EnableNumericTraps()
	}

	rate, err := hyperparams.Parse(c.rate)
	if err != nil {
		return err
	}
	initializer, err := initializers.ByName(c.init)
	if err != nil {
		return err
	}
	cf, err := costfuncs.ByName(c.cost)
	if err != nil {
		return err
	}
	penalty, err := penalties.Parse(c.penalty)
	if err != nil {
		return err
	}

	r := rng.New(c.seed)
	features, labels, err := load(c, r)
	if err != nil {
		return err
	}
	if c.held < 1 || c.held >= features.Rows() {
		return errors.Errorf("Can't hold out %d of %d rows", c.held, features.Rows())
	}

	trainF, testF, err := split(features, c.held)
	if err != nil {
		return err
	}
	trainL, testL, err := split(labels, c.held)
	if err != nil {
		return err
	}

	s, err := sizes(features.Cols(), c.hidden, labels.Cols())
	if err != nil {
		return err
	}
	net, err := nn.New(r, s...)
	if err != nil {
		return err
	}
	net.SetInitializer(initializer).SetCostFunction(cf).SetLogger(log.StandardLogger())
	net.SetPenalty(penalty)

	log.WithFields(log.Fields{
		"sizes":   s,
		"rows":    trainF.Rows(),
		"held":    testF.Rows(),
		"rate":    c.rate,
		"init":    initializer.TypeString(),
		"cost":    cf.TypeString(),
		"penalty": c.penalty,
		"epochs":  c.epochs,
		"seed":    c.seed,
	}).Info("Training")

	args := nn.TrainArgs{Epochs: c.epochs, LearningRate: rate, StatusEvery: c.statusGap}
	if err = net.TrainWith(trainF, trainL, args); err != nil {
		return err
	}

	rmse, err := net.Test(testF, testL)
	if err != nil {
		return err
	}

	fmt.Printf("held-out RMSE: %.6f\n", rmse)
	return nil
}

func main() {
	c := parseFlags()

	log.SetOutput(os.Stderr)
	if c.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(c); err != nil {
		log.Fatalf("%+v", err)
	}
}
