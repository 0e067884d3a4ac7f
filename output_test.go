package cssguide

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag  string
		quiet bool
		want  OutputFormat
	}{
		{"issues", false, OutputIssues},
		{"summary", false, OutputSummary},
		{"full", false, OutputFull},
		{"json", false, OutputJSON},
		{"markdown", false, OutputMarkdown},
		{"md", false, OutputMarkdown},
		{"", false, OutputIssues},
		{"bogus", false, OutputIssues},
		{"json", true, OutputIssues}, // quiet wins
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet), "flag=%q quiet=%v", tt.flag, tt.quiet)
	}
}

func sampleResult() *LintResult {
	return &LintResult{
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Text:        `malformed class name "Btn": invalid identifier segment "Btn"`,
				Severity:    SeverityError,
				SourceLines: []string{`<div class="Btn">`},
				Pos:         IssuePos{Filename: "index.html", Line: 3, Column: 13},
			},
			{
				FromLinter: LinterName,
				Text:       `class "js-nav": js- hook classes should not carry style rules`,
				Severity:   SeverityInfo,
				Pos:        IssuePos{Filename: "main.css", Line: 9, Column: 2},
			},
		},
		FilesScanned:          2,
		TokensChecked:         10,
		ValidTokens:           8,
		ConformancePercentage: 80,
		NamespaceCounts: map[Namespace]int{
			NamespaceComponent: 6,
			NamespaceNone:      4,
		},
		TopOffenders: []Offender{
			{ClassName: "Btn", Occurrences: 3, Message: `invalid identifier segment "Btn"`},
		},
		ErrorCount:   1,
		WarningCount: 0,
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)

	assert.Equal(t, 2, out.Summary.TotalIssues)
	assert.Equal(t, 1, out.Summary.Errors)
	assert.Equal(t, 0, out.Summary.Warnings)
	assert.Equal(t, 2, out.Summary.FilesScanned)

	assert.Equal(t, 10, out.Stats.TokensChecked)
	assert.Equal(t, 8, out.Stats.ValidTokens)
	assert.Equal(t, 80.0, out.Stats.ConformancePercentage)
	assert.Equal(t, map[string]int{"component": 6, "none": 4}, out.Stats.NamespaceCounts)

	require.Len(t, out.Issues, 2)
	assert.Equal(t, "index.html", out.Issues[0].File)
	assert.Equal(t, 3, out.Issues[0].Line)
	assert.Equal(t, 13, out.Issues[0].Column)
	assert.Equal(t, "error", out.Issues[0].Severity)
	assert.Equal(t, `<div class="Btn">`, out.Issues[0].Source)
	assert.Equal(t, "bemlint", out.Issues[0].Linter)
	assert.Empty(t, out.Issues[1].Source)

	require.Len(t, out.TopOffenders, 1)
	assert.Equal(t, "Btn", out.TopOffenders[0].Class)
	assert.Equal(t, 3, out.TopOffenders[0].Occurrences)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "# Class Naming Lint Report")
	assert.Contains(t, out, "| Files scanned | 2 |")
	assert.Contains(t, out, "| Classes checked | 10 |")
	assert.Contains(t, out, "| Conforming | 8 (80.0%) |")
	assert.Contains(t, out, "| index.html:3:13 | error |")
	assert.Contains(t, out, "| main.css:9:2 | info |")
	assert.Contains(t, out, "| `Btn` | 3 |")
	assert.NotContains(t, out, "truncated")
}

func TestWriteMarkdownTruncationNote(t *testing.T) {
	result := sampleResult()
	result.TruncatedCount = 7

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, result))

	assert.Contains(t, buf.String(), "_7 issues truncated by output limits._")
}

func TestWriteOutputIssuesFormat(t *testing.T) {
	var buf bytes.Buffer
	WriteOutput(&buf, sampleResult(), OutputIssues, Config{
		PrintIssuedLines: true,
		PrintLinterName:  true,
	})

	out := buf.String()
	assert.Contains(t, out, "index.html:3:13:")
	assert.Contains(t, out, "(bemlint)")
	assert.Contains(t, out, "2 issues")
	assert.Contains(t, out, "Hint: Run with --output-format full")
}

func TestWriteOutputFullOmitsHint(t *testing.T) {
	var buf bytes.Buffer
	WriteOutput(&buf, sampleResult(), OutputFull, Config{
		PrintIssuedLines: true,
		PrintLinterName:  true,
	})

	out := buf.String()
	// The statistics are already on screen, so no hint to switch formats.
	assert.NotContains(t, out, "Hint:")
	assert.Contains(t, out, "Class Naming Statistics")
	assert.Contains(t, out, "Top Offenders")
}
