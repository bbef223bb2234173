package powerlaw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmptySample(t *testing.T) {
	report, err := Analyze(nil, Options{SortKSInput: true})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAnalyzeSummaryStatistics(t *testing.T) {
	report, err := Analyze([]int{1, 2, 3, 4}, Options{SortKSInput: true})
	require.NoError(t, err)

	assert.Equal(t, 4, report.Size)
	assert.InDelta(t, 2.5, report.Mean, 1e-12)
	// Population standard deviation, not the sample estimator.
	assert.InDelta(t, math.Sqrt(1.25), report.StdDev, 1e-12)
	assert.Equal(t, 1, report.Min)
	assert.Equal(t, 4, report.Max)
}

func TestAnalyzeAllZeroSample(t *testing.T) {
	report, err := Analyze([]int{0, 0, 0}, Options{SortKSInput: true})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, report.Mean, 1e-12)
	assert.Equal(t, 0, report.Min)
	assert.Equal(t, 0, report.Max)
	assert.Nil(t, report.Fit, "no positive values means no power-law fit")
}

func TestAnalyzeSinglePositiveValue(t *testing.T) {
	// One value survives the log transform: the estimate is undefined and
	// must come back NaN, never a silently finite number.
	report, err := Analyze([]int{0, 0, 5}, Options{SortKSInput: true})
	require.NoError(t, err)
	require.NotNil(t, report.Fit)

	assert.True(t, math.IsNaN(report.Fit.Alpha))
	assert.True(t, math.IsNaN(report.Fit.XMin))
}

func TestEstimateParametersDegenerate(t *testing.T) {
	alpha, xMin := EstimateParameters(nil)
	assert.True(t, math.IsNaN(alpha))
	assert.True(t, math.IsNaN(xMin))

	alpha, xMin = EstimateParameters([]float64{1.5})
	assert.True(t, math.IsNaN(alpha))
	assert.True(t, math.IsNaN(xMin))
}

func TestEstimateParametersKnownValues(t *testing.T) {
	logData := []float64{
		math.Log(2), math.Log(2), math.Log(4), math.Log(8),
	}
	alpha, xMin := EstimateParameters(logData)

	assert.InDelta(t, math.Log(2), xMin, 1e-12)
	// alpha = 1 + 4/(S - 4*ln(ln 2)) with S = sum of the log values.
	assert.InDelta(t, 1.6331, alpha, 1e-4)
}

func TestKolmogorovSmirnovBounds(t *testing.T) {
	samples := [][]int{
		{2, 2, 4, 8},
		{1, 1, 1, 2, 3, 5, 8, 13},
		{7, 3, 9, 2, 5, 4},
	}
	for _, sample := range samples {
		for _, sorted := range []bool{true, false} {
			report, err := Analyze(sample, Options{SortKSInput: sorted})
			require.NoError(t, err)
			require.NotNil(t, report.Fit)

			assert.GreaterOrEqual(t, report.Fit.KS, 0.0)
			assert.LessOrEqual(t, report.Fit.KS, 1.0)
		}
	}
}

func TestKolmogorovSmirnovSortedVersusLegacy(t *testing.T) {
	// Unsorted input assigns empirical ranks positionally, so the two
	// modes disagree whenever the data is out of order.
	logData := []float64{math.Log(8), math.Log(2), math.Log(4), math.Log(2)}
	alpha, xMin := EstimateParameters(logData)

	sorted := KolmogorovSmirnov(logData, alpha, xMin, true)
	legacy := KolmogorovSmirnov(logData, alpha, xMin, false)

	assert.NotEqual(t, sorted, legacy)
	assert.LessOrEqual(t, sorted, legacy)
}

func TestKolmogorovSmirnovNaNParameters(t *testing.T) {
	// NaN cutoff filters everything out; the statistic collapses to zero.
	ks := KolmogorovSmirnov([]float64{1.0}, math.NaN(), math.NaN(), true)
	assert.Zero(t, ks)
}

func TestClassifyFit(t *testing.T) {
	tests := []struct {
		ks   float64
		want FitQuality
	}{
		{0.0, FollowsClosely},
		{0.049, FollowsClosely},
		{0.05, FollowsModerately},
		{0.099, FollowsModerately},
		{0.1, FollowsWeakly},
		{0.75, FollowsWeakly},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyFit(tt.ks), "ks=%v", tt.ks)
	}
}

func TestFitQualityDescriptions(t *testing.T) {
	assert.Contains(t, FollowsClosely.Description(), "closely")
	assert.Contains(t, FollowsModerately.Description(), "moderately")
	assert.Contains(t, FollowsWeakly.Description(), "not strongly")
}
