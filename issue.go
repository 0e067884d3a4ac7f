package cssguide

// Issue represents a single linting violation in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "bemlint"
	Text        string   `json:"Text"`        // `malformed class name "btn__": invalid identifier segment ""`
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the class token
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName is the suffix printed after each issue.
const LinterName = "bemlint"

// Issue text formats matching linter categories
const (
	IssueMalformedClass = "malformed class name %q: %s"
	IssueNamespaceRule  = "class %q: %s"
)
