// Package main fails when a function in coverage.out falls below the
// required statement coverage.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// minFunctionCoverage applies to every function not listed in exclusions.
const minFunctionCoverage = 90.0

func main() {
	coverageFile := "coverage.out"
	if len(os.Args) > 1 {
		coverageFile = os.Args[1]
	}

	output, err := runCoverTool(coverageFile)
	if err != nil {
		fmt.Printf("❌ Error running go tool cover: %v\n", err)
		os.Exit(1)
	}

	failures, totalCoverage := parseCoverageOutput(output)

	if len(failures) > 0 {
		fmt.Printf("❌ Coverage check failed! The following functions have less than %.0f%% coverage:\n",
			minFunctionCoverage)
		for _, f := range failures {
			fmt.Printf("  %s\n", f)
		}
		os.Exit(1)
	}

	fmt.Printf("✅ All non-main functions have at least %.0f%% coverage!\n", minFunctionCoverage)
	if totalCoverage != "" {
		fmt.Printf("📊 %s\n", totalCoverage)
	}
}

func runCoverTool(coverageFile string) ([]byte, error) {
	cmd := exec.Command("go", "tool", "cover", "-func", coverageFile)
	return cmd.Output()
}

func parseCoverageOutput(output []byte) (failures []string, totalCoverage string) {
	scanner := bufio.NewScanner(strings.NewReader(string(output)))

	// Path-prefix exclusions with their own floor
	exclusions := map[string]float64{
		// os.Executable failure cannot be provoked from a test
		"github.com/fusecore/stagefmt/internal/app/manager.go:": 75.0,
		// signal handling and os.Exit
		"github.com/fusecore/stagefmt/cmd/stagefmt/": 0.0,
		// the log file open failure depends on filesystem permissions
		"github.com/fusecore/stagefmt/internal/app/logger.go:": 80.0,
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "total:") {
			totalCoverage = line
			continue
		}

		if shouldSkipLine(line) {
			continue
		}

		if isLineExcluded(line, exclusions) {
			continue
		}

		if percent, ok := coverageOf(line); ok && percent < minFunctionCoverage {
			failures = append(failures, line)
		}
	}

	return failures, totalCoverage
}

func shouldSkipLine(line string) bool {
	if !strings.Contains(line, ":") {
		return true
	}
	if strings.Contains(line, "/scripts/") {
		return true
	}
	if strings.Contains(line, "main.go") && strings.Contains(line, "main") {
		return true
	}
	return false
}

func isLineExcluded(line string, exclusions map[string]float64) bool {
	for pattern, threshold := range exclusions {
		if !strings.Contains(line, pattern) {
			continue
		}

		if percent, ok := coverageOf(line); ok && percent >= threshold {
			return true
		}
	}
	return false
}

// coverageOf parses the trailing percentage of a `go tool cover -func` line.
func coverageOf(line string) (float64, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return 0, false
	}
	var percent float64
	if _, err := fmt.Sscanf(strings.TrimSuffix(parts[len(parts)-1], "%"), "%f", &percent); err != nil {
		return 0, false
	}
	return percent, true
}
