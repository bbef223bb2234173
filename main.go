package main

import (
	"os"

	"github.com/camdenr/job-similarity-graph/pkg/config"
	"github.com/camdenr/job-similarity-graph/pkg/pipeline"
)

const configFile = "jobgraph.yaml"

func main() {
	cfg := config.NewConfig()
	if _, err := os.Stat(configFile); err == nil {
		if err := cfg.LoadFromFile(configFile); err != nil {
			logger := cfg.CreateLogger()
			logger.Fatal().Err(err).Msg("failed to load configuration")
		}
	}

	if err := pipeline.New(cfg).Run(); err != nil {
		logger := cfg.CreateLogger()
		logger.Fatal().Err(err).Msg("pipeline failed")
	}
}
