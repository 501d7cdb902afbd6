package neuralnetwork

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/jpuck/neural-network/costfuncs"
	"github.com/jpuck/neural-network/dataset"
	"github.com/jpuck/neural-network/hyperparams"
	"github.com/jpuck/neural-network/rng"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func TestNewErrors(t *testing.T) {
	if _, err := New(rng.New(0), 3); errors.Cause(err) != ErrTooFewLayers {
		t.Errorf("New(3): error = %v, want ErrTooFewLayers", err)
	}
	if _, err := New(rng.New(0), 3, 0, 2); errors.Cause(err) != ErrLayerSize {
		t.Errorf("New(3, 0, 2): error = %v, want ErrLayerSize", err)
	}

	net, err := New(rng.New(0), 3, 16, 2)
	if err != nil {
		t.Fatal(err)
	}
	if net.NumLayers() != 2 || net.InputCount() != 3 || net.OutputCount() != 2 {
		t.Errorf("got %d layers, %d inputs, %d outputs", net.NumLayers(), net.InputCount(), net.OutputCount())
	}
	if l := net.Layer(1); l.Inputs() != 16 || l.Outputs() != 2 {
		t.Errorf("layer 1 is %d -> %d", l.Inputs(), l.Outputs())
	}
}

func TestInitDrawsInOrder(t *testing.T) {
	net, err := New(rng.New(11), 2, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	// weights row by row, then biases, first layer first
	r := rng.New(11)
	for i := 0; i < net.NumLayers(); i++ {
		l := net.Layer(i)
		dev := math.Max(0.3, 1/float64(l.Inputs()))
		for j := 0; j < l.Outputs(); j++ {
			for k := 0; k < l.Inputs(); k++ {
				if want := dev * r.Normal(); l.Weights().At(j, k) != want {
					t.Fatalf("layer %d weight (%d, %d) = %v, want %v", i, j, k, l.Weights().At(j, k), want)
				}
			}
		}
		for j, b := range l.Bias() {
			if want := dev * r.Normal(); b != want {
				t.Fatalf("layer %d bias %d = %v, want %v", i, j, b, want)
			}
		}
	}
}

func TestPredictSizeMismatch(t *testing.T) {
	net, err := New(rng.New(0), 3, 4, 1)
	if err != nil {
		t.Fatal(err)
	}

	_, err = net.Predict([]float64{1, 2})
	if sm, ok := errors.Cause(err).(SizeMismatchError); !ok || sm.Expected != 3 || sm.Got != 2 {
		t.Errorf("Predict with 2 inputs: error = %v", err)
	}

	outs, err := net.Predict([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != 1 || outs[0] <= -1 || outs[0] >= 1 {
		t.Errorf("Predict = %v", outs)
	}

	// Predict returns a copy
	outs[0] = 5
	if net.Layer(1).Activation()[0] == 5 {
		t.Errorf("Predict returned the Layer's own slice")
	}
}

func TestRefineMovesTowardsTarget(t *testing.T) {
	net, err := New(rng.New(5), 2, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	in, target := []float64{0.5, -0.25}, []float64{0.7}
	before, _ := net.Predict(in)
	for i := 0; i < 20; i++ {
		if err := net.Refine(in, target, 0.05); err != nil {
			t.Fatal(err)
		}
	}
	after, _ := net.Predict(in)

	if math.Abs(after[0]-0.7) >= math.Abs(before[0]-0.7) {
		t.Errorf("Refine did not reduce the error: %v -> %v", before[0], after[0])
	}

	if err := net.Refine(in, []float64{1, 2}, 0.05); err == nil {
		t.Errorf("Refine accepted 2 targets for 1 output")
	}
}

func TestRefineOutputDeltas(t *testing.T) {
	net, err := New(rng.New(8), 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	in, target := []float64{0.3, 0.9}, []float64{0.25, -0.5}
	if err := net.Refine(in, target, 0); err != nil {
		t.Fatal(err)
	}

	l := net.Layer(0)
	for i, a := range l.Activation() {
		if want := (target[i] - a) * (1 - a*a); l.Deltas()[i] != want {
			t.Errorf("delta %d = %v, want %v", i, l.Deltas()[i], want)
		}
	}
}

// xorData returns the four rows of XOR, scaled to the range of tanh
func xorData() (features, labels *dataset.Matrix) {
	features, labels = dataset.New(), dataset.New()
	features.SetSize(4, 2)
	labels.SetSize(4, 1)
	for r, row := range [][]float64{{-1, -1, -0.8}, {-1, 1, 0.8}, {1, -1, 0.8}, {1, 1, -0.8}} {
		features.Set(r, 0, row[0])
		features.Set(r, 1, row[1])
		labels.Set(r, 0, row[2])
	}
	return
}

func TestTrainSizeMismatch(t *testing.T) {
	net, err := New(rng.New(0), 2, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	features, labels := xorData()
	short := dataset.New()
	short.SetSize(3, 1)
	if err := net.Train(features, short); err == nil {
		t.Errorf("Train accepted 4 feature rows and 3 label rows")
	}

	wide := dataset.New()
	wide.SetSize(4, 2)
	if err := net.Train(features, wide); err == nil {
		t.Errorf("Train accepted 2 label columns for 1 output")
	}
	if err := net.Train(labels, labels); err == nil {
		t.Errorf("Train accepted 1 feature column for 2 inputs")
	}
}

func TestTrainXOR(t *testing.T) {
	net, err := New(rng.New(1), 2, 8, 1)
	if err != nil {
		t.Fatal(err)
	}

	features, labels := xorData()
	args := TrainArgs{Epochs: 5000, LearningRate: hyperparams.Constant(0.1)}
	if err := net.TrainWith(features, labels, args); err != nil {
		t.Fatal(err)
	}

	rmse, err := net.Test(features, labels)
	if err != nil {
		t.Fatal(err)
	}
	if rmse > 0.1 {
		t.Errorf("RMSE after training on XOR = %v", rmse)
	}
}

func TestTrainingIsDeterministic(t *testing.T) {
	features, labels := xorData()
	args := TrainArgs{Epochs: 50, LearningRate: hyperparams.Decay(0.1, 0.99)}

	var outs [2][]float64
	for i := range outs {
		net, err := New(rng.New(77), 2, 4, 1)
		if err != nil {
			t.Fatal(err)
		}
		if err := net.TrainWith(features, labels, args); err != nil {
			t.Fatal(err)
		}
		if outs[i], err = net.Predict([]float64{0.2, -0.6}); err != nil {
			t.Fatal(err)
		}
	}

	if outs[0][0] != outs[1][0] {
		t.Errorf("same seed gave %v and %v", outs[0][0], outs[1][0])
	}
}

func TestTrainLogs(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	net, err := New(rng.New(2), 2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	net.SetLogger(log)

	features, labels := xorData()
	args := TrainArgs{Epochs: 10, LearningRate: hyperparams.Constant(0.1), StatusEvery: 5}
	if err := net.TrainWith(features, labels, args); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, s := range []string{"Starting training", "epoch=5", "Done training"} {
		if !strings.Contains(out, s) {
			t.Errorf("log is missing %q:\n%s", s, out)
		}
	}
}

func TestSetCostFunction(t *testing.T) {
	net, err := New(rng.New(4), 2, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	net.SetCostFunction(costfuncs.Huber(0.5))

	features, labels := xorData()
	args := TrainArgs{Epochs: 5000, LearningRate: hyperparams.Constant(0.1)}
	if err := net.TrainWith(features, labels, args); err != nil {
		t.Fatal(err)
	}
	if rmse, _ := net.Test(features, labels); rmse > 0.2 {
		t.Errorf("RMSE after training with huber = %v", rmse)
	}
}

func TestNumericTraps(t *testing.T) {
	net, err := New(rng.New(0), 2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := net.Predict([]float64{math.NaN(), 0}); err != nil {
		t.Fatalf("NaN input failed without traps: %v", err)
	}

	EnableNumericTraps()
	defer DisableNumericTraps()
	if !NumericTrapsEnabled() {
		t.Fatal("traps are not enabled")
	}

	if _, err := net.Predict([]float64{math.NaN(), 0}); errors.Cause(err) != ErrNumericTrap {
		t.Errorf("NaN input: error = %v, want ErrNumericTrap", err)
	}
	if err := net.Refine([]float64{0, 0}, []float64{math.Inf(1)}, 0.1); errors.Cause(err) != ErrNumericTrap {
		t.Errorf("infinite target: error = %v, want ErrNumericTrap", err)
	}
}

func TestCopyByValuePanics(t *testing.T) {
	net, err := New(rng.New(0), 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if r := recover(); r != ErrCopied {
			t.Errorf("recovered %v, want ErrCopied", r)
		}
	}()

	c := *net
	c.Predict([]float64{0, 0})
	t.Errorf("using a copied Network did not panic")
}

// the mean of the inputs, and the product of the first two minus the third
func convergenceTarget(x []float64) []float64 {
	return []float64{
		(x[0] + x[1] + x[2]) / 3,
		x[0]*x[1] - x[2],
	}
}

func TestConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping a full training run in short mode")
	}

	const samples, held = 100000, 100

	r := rng.New(0)
	features, labels := dataset.New(), dataset.New()
	features.SetSize(samples+held, 3)
	labels.SetSize(samples+held, 2)
	for i := 0; i < samples+held; i++ {
		x := features.Row(i)
		for j := range x {
			x[j] = r.Uniform()
		}
		copy(labels.Row(i), convergenceTarget(x))
	}

	trainF, trainL, testF, testL := dataset.New(), dataset.New(), dataset.New(), dataset.New()
	for _, p := range []struct {
		dst, src *dataset.Matrix
		begin    int
		count    int
	}{
		{trainF, features, 0, samples}, {trainL, labels, 0, samples},
		{testF, features, samples, held}, {testL, labels, samples, held},
	} {
		if err := p.dst.CopyPart(p.src, p.begin, 0, p.count, p.src.Cols()); err != nil {
			t.Fatal(err)
		}
	}

	net, err := New(r, 3, 16, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := net.Train(trainF, trainL); err != nil {
		t.Fatal(err)
	}

	rmse, err := net.Test(testF, testL)
	if err != nil {
		t.Fatal(err)
	}
	if rmse >= 0.05 {
		t.Errorf("held-out RMSE = %v, want < 0.05", rmse)
	}
}
