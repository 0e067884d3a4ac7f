package cssguide

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema.
type JSONOutput struct {
	Version      string         `json:"version"`
	Timestamp    string         `json:"timestamp"`
	Summary      JSONSummary    `json:"summary"`
	Stats        JSONStats      `json:"stats"`
	Issues       []JSONIssue    `json:"issues"`
	TopOffenders []JSONOffender `json:"top_offenders"`
}

// JSONSummary contains high-level issue counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains conformance statistics.
type JSONStats struct {
	TokensChecked         int            `json:"classes_checked"`
	ValidTokens           int            `json:"conforming"`
	ConformancePercentage float64        `json:"conformance_percentage"`
	NamespaceCounts       map[string]int `json:"namespace_counts"`
}

// JSONIssue represents a single linting issue.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// JSONOffender represents a frequently failing class name.
type JSONOffender struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
	Message     string `json:"message"`
}

// WriteJSON writes the lint result as JSON.
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a LintResult to the export schema.
func buildJSONOutput(result *LintResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	offenders := make([]JSONOffender, len(result.TopOffenders))
	for i, offender := range result.TopOffenders {
		offenders[i] = JSONOffender{
			Class:       offender.ClassName,
			Occurrences: offender.Occurrences,
			Message:     offender.Message,
		}
	}

	namespaceCounts := make(map[string]int, len(result.NamespaceCounts))
	for ns, count := range result.NamespaceCounts {
		namespaceCounts[string(ns)] = count
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			TokensChecked:         result.TokensChecked,
			ValidTokens:           result.ValidTokens,
			ConformancePercentage: result.ConformancePercentage,
			NamespaceCounts:       namespaceCounts,
		},
		Issues:       jsonIssues,
		TopOffenders: offenders,
	}
}
