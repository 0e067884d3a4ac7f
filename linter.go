package cssguide

import (
	"fmt"
	"sort"
	"strings"
)

// Config holds linting configuration.
type Config struct {
	Variant          string               // naming variant name or alias
	CustomNamespaces map[string]Namespace // optional prefix extensions
	Strict           bool                 // advisories become errors
	ScanPaths        []string             // glob patterns to scan
	Verbose          bool

	// golangci-style output configuration
	MaxIssues        int  // 0 = unlimited
	MaxSameIssues    int  // 0 = unlimited
	PrintIssuedLines bool // show source lines with issues (default: true)
	PrintLinterName  bool // show (bemlint) suffix (default: true)
	UseColors        bool // force color output (default: auto-detect)
}

// LintResult contains linting analysis results.
type LintResult struct {
	// Issues in golangci-lint format
	Issues           []Issue
	IssuesBySeverity map[string][]Issue

	// Statistics
	FilesScanned          int
	TokensChecked         int // class tokens validated
	ValidTokens           int
	ConformancePercentage float64 // valid / checked
	NamespaceCounts       map[Namespace]int

	TopOffenders   []Offender // most frequent failing class names
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // issues removed due to limits
	Warnings       []string
}

// Offender is a failing class name ranked by occurrence count.
type Offender struct {
	ClassName   string
	Occurrences int
	Message     string // first violation message seen for this class
}

// Lint scans the configured paths and validates every class token found.
// Configuration problems (unknown variant, malformed custom namespace
// table) fail fast before any file is read.
func Lint(config Config) (*LintResult, error) {
	validator, err := ForVariant(config.Variant,
		WithStrict(config.Strict),
		WithCustomNamespaces(config.CustomNamespaces))
	if err != nil {
		return nil, fmt.Errorf("invalid lint configuration: %w", err)
	}

	refs, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	result := analyzeReferences(validator, refs)
	result.FilesScanned = stats.FilesScanned

	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// analyzeReferences validates every token of every reference and builds
// the issue list and statistics.
func analyzeReferences(validator *Validator, refs []ClassReference) *LintResult {
	result := &LintResult{
		NamespaceCounts: make(map[Namespace]int),
	}

	offenderCounts := make(map[string]int)
	offenderMessages := make(map[string]string)
	var issues []Issue

	for _, ref := range refs {
		for _, token := range strings.Fields(ref.FullClassValue) {
			res := validator.Validate(token)
			result.TokensChecked++
			result.NamespaceCounts[res.Class.Namespace]++

			violations := res.Violations
			if ref.InStylesheet {
				if advisory := styleAdvisory(validator, res); advisory != "" {
					violations = append(violations, Violation{Kind: KindAdvisory, Message: advisory})
				}
			}

			if len(violations) == 0 {
				result.ValidTokens++
				continue
			}

			column := findClassColumn(ref.Location.Text, token)
			if column == 0 {
				column = ref.Location.Column
			}

			for _, viol := range violations {
				issues = append(issues, Issue{
					FromLinter:  LinterName,
					Text:        issueText(token, viol),
					Severity:    issueSeverity(viol.Kind, validator.Strict()),
					SourceLines: []string{ref.Location.Text},
					Pos: IssuePos{
						Filename: ref.Location.File,
						Line:     ref.Location.Line,
						Column:   column,
					},
				})
			}

			offenderCounts[token]++
			if _, seen := offenderMessages[token]; !seen {
				offenderMessages[token] = violations[0].Message
			}
		}
	}

	if result.TokensChecked > 0 {
		result.ConformancePercentage = float64(result.ValidTokens) / float64(result.TokensChecked) * 100
	}

	result.Issues = issues
	result.IssuesBySeverity = make(map[string][]Issue)
	for _, issue := range issues {
		result.IssuesBySeverity[issue.Severity] = append(result.IssuesBySeverity[issue.Severity], issue)
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	result.TopOffenders = rankOffenders(offenderCounts, offenderMessages)

	return result
}

// styleAdvisory returns the namespace's stylesheet advisory for a token
// that parsed cleanly, or "".
func styleAdvisory(validator *Validator, res Result) string {
	for _, viol := range res.Violations {
		if viol.Kind == KindSyntax {
			return ""
		}
	}
	return validator.Variant().rule(res.Class.Namespace).StyleAdvisory
}

// issueText formats the message for one violation.
func issueText(token string, viol Violation) string {
	if viol.Kind == KindSyntax {
		return fmt.Sprintf(IssueMalformedClass, token, viol.Message)
	}
	return fmt.Sprintf(IssueNamespaceRule, token, viol.Message)
}

// issueSeverity maps violation kinds to report severities. Strict mode
// promotes advisories to errors.
func issueSeverity(kind ViolationKind, strict bool) string {
	switch kind {
	case KindSyntax:
		return SeverityError
	case KindSemantic:
		return SeverityWarning
	case KindAdvisory:
		if strict {
			return SeverityError
		}
		return SeverityInfo
	}
	return SeverityInfo
}

// rankOffenders converts the frequency map into a sorted top-10 slice.
func rankOffenders(counts map[string]int, messages map[string]string) []Offender {
	offenders := make([]Offender, 0, len(counts))
	for name, count := range counts {
		offenders = append(offenders, Offender{
			ClassName:   name,
			Occurrences: count,
			Message:     messages[name],
		})
	}

	sort.Slice(offenders, func(i, j int) bool {
		if offenders[i].Occurrences != offenders[j].Occurrences {
			return offenders[i].Occurrences > offenders[j].Occurrences
		}
		return offenders[i].ClassName < offenders[j].ClassName
	})

	if len(offenders) > 10 {
		offenders = offenders[:10]
	}

	return offenders
}

// limitIssues applies max-issues and max-same-issues constraints.
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears.
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
