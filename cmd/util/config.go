package util

import (
	"fmt"
	"strconv"
	"strings"
)

// BenchConfig holds all configuration parameters for a benchmark run
type BenchConfig struct {
	// Formats selected for this run
	Formats []string
	// Skip lists formats excluded from the run
	Skip []string
	// Quick switches from the full benchmark engine to the in-process sampler
	Quick bool
	// Samples is the number of trials per phase in quick mode
	Samples int
	// CSVPath is an optional export location for the results
	CSVPath string

	// Logging configuration
	LogLevel string
}

// ReportConfig holds all configuration parameters for a report run
type ReportConfig struct {
	// Dir is the root of the criterion-style timing source tree
	Dir string
	// Groups are the benchmark group names to aggregate
	Groups []string

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *BenchConfig) String() string {
	var sb strings.Builder

	addSection, addField := sectionHelpers(&sb)

	addSection("Benchmark")
	addField("Formats", strings.Join(c.Formats, ", "))
	addField("Skip", strings.Join(c.Skip, ", "))
	addField("Quick Mode", strconv.FormatBool(c.Quick))
	if c.Quick {
		addField("Samples", strconv.Itoa(c.Samples))
	}
	if c.CSVPath != "" {
		addField("CSV Export", c.CSVPath)
	}

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// String returns a formatted string representation of the configuration
func (c *ReportConfig) String() string {
	var sb strings.Builder

	addSection, addField := sectionHelpers(&sb)

	addSection("Report")
	addField("Timing Source", c.Dir)
	addField("Groups", strings.Join(c.Groups, ", "))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// sectionHelpers creates helper functions for consistent formatting
func sectionHelpers(sb *strings.Builder) (func(string), func(string, string)) {
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	return addSection, addField
}
