package pipeline

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/camdenr/job-similarity-graph/pkg/config"
	"github.com/camdenr/job-similarity-graph/pkg/dataset"
	"github.com/camdenr/job-similarity-graph/pkg/plotting"
	"github.com/camdenr/job-similarity-graph/pkg/powerlaw"
	"github.com/camdenr/job-similarity-graph/pkg/simgraph"
)

// Pipeline runs the load -> build -> analyze -> plot stages in order.
// Every run gets a fresh identifier on its logger.
type Pipeline struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// New creates a pipeline from configuration.
func New(cfg *config.Config) *Pipeline {
	logger := cfg.CreateLogger().With().
		Str("run_id", uuid.New().String()).
		Logger()
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run executes the full analysis. Failures loading the input or writing a
// plot abort the run; statistical degeneracy only skips that
// distribution's deeper analysis.
func (p *Pipeline) Run() error {
	records, err := dataset.Load(p.cfg.InputPath(), p.logger)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	p.logger.Info().
		Int("records", len(records)).
		Str("path", p.cfg.InputPath()).
		Msg("dataset loaded")

	graph := simgraph.Build(records, p.cfg.SimilarityThreshold())
	p.logger.Info().
		Int("nodes", graph.NodeCount()).
		Int("edges", graph.EdgeCount()).
		Msg("similarity graph built")
	fmt.Printf("Graph created with %d nodes and %d edges.\n", graph.NodeCount(), graph.EdgeCount())

	degrees := simgraph.Degrees(graph)
	twoHop := simgraph.TwoHopCounts(graph)

	p.analyze("Degree Distribution", degrees)
	p.analyze("Two-Hop Neighbors Distribution", twoHop)

	plots := []struct {
		title  string
		sample []int
		file   string
	}{
		{"Degree Distribution", degrees, p.cfg.DegreePlotFile()},
		{"Two-Hop Neighbors Distribution", twoHop, p.cfg.TwoHopPlotFile()},
	}
	for _, pl := range plots {
		path := filepath.Join(p.cfg.OutputDir(), pl.file)
		if err := plotting.Scatter(pl.title, pl.sample, path, p.cfg.PlotWidthInches(), p.cfg.PlotHeightInches()); err != nil {
			return err
		}
		p.logger.Info().Str("path", path).Msg("plot written")
	}

	return nil
}

// analyze prints the summary report for one distribution.
func (p *Pipeline) analyze(name string, sample []int) {
	opts := powerlaw.Options{SortKSInput: p.cfg.SortKSInput()}
	report, err := powerlaw.Analyze(sample, opts)
	if err != nil {
		if errors.Is(err, powerlaw.ErrNoData) {
			fmt.Printf("No data available for %s\n", name)
			return
		}
		p.logger.Warn().
			Str("distribution", name).
			Err(err).
			Msg("distribution analysis skipped")
		fmt.Println("Mean calculation resulted in NaN or infinite value.")
		return
	}

	fmt.Printf("%s Analysis:\n", name)
	fmt.Printf("  Mean: %.2f\n", report.Mean)
	fmt.Printf("  Standard Deviation: %.2f\n", report.StdDev)
	fmt.Printf("  Minimum: %d\n", report.Min)
	fmt.Printf("  Maximum: %d\n", report.Max)

	if report.Fit == nil {
		p.logger.Warn().
			Str("distribution", name).
			Msg("no positive values in sample")
		fmt.Println("Insufficient data for power law analysis")
		return
	}

	fmt.Println("  Estimated Power Law Parameters:")
	fmt.Printf("    alpha: %.2f\n", report.Fit.Alpha)
	fmt.Printf("    x_min: %.2f\n", math.Exp(report.Fit.XMin))
	fmt.Printf("  Kolmogorov-Smirnov Statistic: %.4f\n", report.Fit.KS)
	fmt.Printf("  %s\n", report.Fit.Quality.Description())
}
