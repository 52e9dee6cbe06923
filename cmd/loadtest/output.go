package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
)

func writeJSONReport(path string, result report) error {
	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return errors.New("output path must point to a file")
	}
	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output path must be inside current directory: %s", path)
	}

	// #nosec G304 -- путь к отчёту задаётся флагом запуска.
	file, err := os.Create(cleanPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func printReport(w io.Writer, result report, cfg config) {
	s := result.Scenarios
	_, _ = fmt.Fprintf(w, "Load test summary: mode=%s run=%s\n", cfg.mode, cfg.target())
	_, _ = fmt.Fprintf(w, "scenarios=%d success=%d failed=%d error_rate=%.4f duration=%.2fs rps=%.2f\n",
		s.Calls, s.Success, s.Failed, s.ErrorRate, result.DurationSeconds, result.RPS)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "METHOD\tCALLS\tFAILED\tERR%\tAVG ms\tP50 ms\tP95 ms\tP99 ms")
	writeRow(tw, scenarioMethod, s)

	names := make([]string, 0, len(result.Methods))
	for name := range result.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeRow(tw, name, result.Methods[name])
	}
	_ = tw.Flush()
}

func writeRow(w io.Writer, name string, m methodReport) {
	_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
		name, m.Calls, m.Failed, m.ErrorRate*100, m.LatencyMs.Avg, m.LatencyMs.P50, m.LatencyMs.P95, m.LatencyMs.P99)
}
