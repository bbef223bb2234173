package powerlaw

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Classification thresholds for the KS statistic. These are fixed policy
// constants, not computed significance levels.
const (
	closeFitThreshold    = 0.05
	moderateFitThreshold = 0.1
)

var (
	// ErrNoData signals an empty distribution sample.
	ErrNoData = errors.New("no data available")

	// ErrNonFiniteMean signals a corrupt sample whose mean is NaN or infinite.
	ErrNonFiniteMean = errors.New("mean is not finite")
)

// FitQuality classifies how well a distribution follows a power law.
type FitQuality int

const (
	FollowsClosely FitQuality = iota
	FollowsModerately
	FollowsWeakly
)

func (q FitQuality) String() string {
	switch q {
	case FollowsClosely:
		return "close"
	case FollowsModerately:
		return "moderate"
	default:
		return "weak"
	}
}

// Description returns the human-readable classification line.
func (q FitQuality) Description() string {
	switch q {
	case FollowsClosely:
		return "The distribution closely follows a power-law (p < 0.05)"
	case FollowsModerately:
		return "The distribution moderately follows a power-law (0.05 <= p < 0.1)"
	default:
		return "The distribution does not strongly follow a power-law (p >= 0.1)"
	}
}

// ClassifyFit maps a KS statistic onto the three-tier fit quality ladder.
func ClassifyFit(ks float64) FitQuality {
	switch {
	case ks < closeFitThreshold:
		return FollowsClosely
	case ks < moderateFitThreshold:
		return FollowsModerately
	default:
		return FollowsWeakly
	}
}

// Fit holds the estimated power-law parameters and goodness of fit for one
// distribution. XMin is in log space; report exp(XMin) to undo the transform.
type Fit struct {
	Alpha   float64
	XMin    float64
	KS      float64
	Quality FitQuality
}

// Report summarizes one distribution sample. Fit is nil when no positive
// values survived the log transform.
type Report struct {
	Size   int
	Mean   float64
	StdDev float64
	Min    int
	Max    int
	Fit    *Fit
}

// Options control analysis behavior.
type Options struct {
	// SortKSInput sorts the log-transformed data ascending before empirical
	// CDF ranks are assigned. When false the original positional-rank
	// computation is reproduced instead.
	SortKSInput bool
}

// Analyze computes summary statistics for a sample of non-negative counts
// and, when the sample has positive values, fits a power-law model to the
// log-transformed data. An empty sample yields ErrNoData; a non-finite
// mean yields ErrNonFiniteMean.
func Analyze(sample []int, opts Options) (*Report, error) {
	if len(sample) == 0 {
		return nil, ErrNoData
	}

	raw := make([]float64, len(sample))
	minVal, maxVal := sample[0], sample[0]
	for i, v := range sample {
		raw[i] = float64(v)
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	mean := stat.Mean(raw, nil)
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, ErrNonFiniteMean
	}

	report := &Report{
		Size:   len(sample),
		Mean:   mean,
		StdDev: stat.PopStdDev(raw, nil),
		Min:    minVal,
		Max:    maxVal,
	}

	logData := make([]float64, 0, len(sample))
	for _, v := range sample {
		if v > 0 {
			logData = append(logData, math.Log(float64(v)))
		}
	}
	if len(logData) == 0 {
		return report, nil
	}

	alpha, xMin := EstimateParameters(logData)
	ks := KolmogorovSmirnov(logData, alpha, xMin, opts.SortKSInput)
	report.Fit = &Fit{
		Alpha:   alpha,
		XMin:    xMin,
		KS:      ks,
		Quality: ClassifyFit(ks),
	}

	return report, nil
}

// EstimateParameters fits the continuous power-law MLE formula to data that
// is already log-transformed: alpha = 1 + n/(S - n*ln(xMin)) with
// xMin = min(logData). Reusing ln on the log-space minimum is the
// convention this analysis was defined with, not the textbook estimator
// applied to raw counts. A sample of one or fewer values has no defined
// estimate and yields NaN for both parameters.
func EstimateParameters(logData []float64) (alpha, xMin float64) {
	n := float64(len(logData))
	if n <= 1 {
		return math.NaN(), math.NaN()
	}

	sum := floats.Sum(logData)
	xMin = floats.Min(logData)
	alpha = 1.0 + n/(sum-n*math.Log(xMin))
	return alpha, xMin
}

// KolmogorovSmirnov returns the maximum absolute difference between the
// theoretical power-law CDF and the empirical CDF over the values >= xMin.
// With sortInput false, empirical ranks follow the input order the values
// arrived in, which understates or overstates the deviation whenever the
// data is unsorted.
func KolmogorovSmirnov(logData []float64, alpha, xMin float64, sortInput bool) float64 {
	filtered := make([]float64, 0, len(logData))
	for _, x := range logData {
		if x >= xMin {
			filtered = append(filtered, x)
		}
	}
	if sortInput {
		sort.Float64s(filtered)
	}

	m := float64(len(filtered))
	maxDiff := 0.0
	for i, x := range filtered {
		theoretical := 1.0 - math.Pow(x/xMin, 1.0-alpha)
		empirical := float64(i+1) / m
		if diff := math.Abs(theoretical - empirical); diff > maxDiff {
			maxDiff = diff
		}
	}
	return maxDiff
}
