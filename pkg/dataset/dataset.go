package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// JobCategory is one input record: an occupation name and the percentage
// of male workers in it. Records are immutable after loading.
type JobCategory struct {
	Name           string
	MalePercentage float64
}

// Load reads job categories from a whitespace-delimited file. The first
// line is a header and is skipped. On each remaining line the last token
// is the male percentage and all preceding tokens form the category name.
// Lines with fewer than two tokens are skipped; lines whose trailing token
// does not parse as a float are dropped with a warning.
func Load(path string, logger zerolog.Logger) ([]JobCategory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var data []JobCategory
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			continue // header
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		name := strings.Join(parts[:len(parts)-1], " ")
		pct, err := strconv.ParseFloat(parts[len(parts)-1], 64)
		if err != nil {
			logger.Warn().
				Int("line", lineNum).
				Str("category", name).
				Msg("could not parse male percentage, record dropped")
			continue
		}

		data = append(data, JobCategory{Name: name, MalePercentage: pct})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return data, nil
}
