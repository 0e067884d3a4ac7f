package cssguide

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	css := `.c-card { color: red; }
.l-grid__cell { display: flex; }
.Bad_Class { color: blue; }
.js-nav { color: green; }
`
	html := `<div class="c-card c-card--dark">
  <span class="is-active--on">hi</span>
</div>
`

	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte(css), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(html), 0644))

	return dir
}

func fixtureConfig(dir string) Config {
	return Config{
		Variant: "double-underscore",
		ScanPaths: []string{
			filepath.Join(dir, "**/*.css"),
			filepath.Join(dir, "**/*.html"),
		},
		PrintIssuedLines: true,
		PrintLinterName:  true,
	}
}

func TestLint(t *testing.T) {
	dir := writeProjectFixture(t)

	result, err := Lint(fixtureConfig(dir))
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 7, result.TokensChecked)
	assert.Equal(t, 3, result.ValidTokens)
	assert.InDelta(t, 42.86, result.ConformancePercentage, 0.01)

	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 2, result.WarningCount)
	require.Len(t, result.Issues, 4)

	assert.Equal(t, map[Namespace]int{
		NamespaceComponent: 3,
		NamespaceLayout:    1,
		NamespaceState:     1,
		NamespaceJSHook:    1,
		NamespaceNone:      1,
	}, result.NamespaceCounts)

	texts := make(map[string]string)
	for _, issue := range result.Issues {
		texts[issue.Text] = issue.Severity
		assert.Equal(t, LinterName, issue.FromLinter)
		assert.NotEmpty(t, issue.SourceLines)
		assert.Greater(t, issue.Pos.Line, 0)
		assert.Greater(t, issue.Pos.Column, 0)
	}

	assert.Equal(t, SeverityError,
		texts[`malformed class name "Bad_Class": invalid identifier segment "Bad_Class"`])
	assert.Equal(t, SeverityWarning,
		texts[`class "l-grid__cell": namespace forbids descendants/modifiers`])
	assert.Equal(t, SeverityWarning,
		texts[`class "is-active--on": namespace forbids descendants/modifiers`])
	assert.Equal(t, SeverityInfo,
		texts[`class "js-nav": js- hook classes should not carry style rules`])
}

func TestLintStrictPromotesAdvisories(t *testing.T) {
	dir := writeProjectFixture(t)

	config := fixtureConfig(dir)
	config.Strict = true

	result, err := Lint(config)
	require.NoError(t, err)

	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 2, result.WarningCount)
}

func TestLintIssuePositions(t *testing.T) {
	dir := writeProjectFixture(t)

	result, err := Lint(fixtureConfig(dir))
	require.NoError(t, err)

	var badClass *Issue
	for i := range result.Issues {
		if result.Issues[i].Text == `malformed class name "Bad_Class": invalid identifier segment "Bad_Class"` {
			badClass = &result.Issues[i]
		}
	}
	require.NotNil(t, badClass)
	assert.Equal(t, filepath.Join(dir, "styles.css"), badClass.Pos.Filename)
	assert.Equal(t, 3, badClass.Pos.Line)
	assert.Equal(t, 2, badClass.Pos.Column)
	assert.Equal(t, ".Bad_Class { color: blue; }", badClass.SourceLines[0])
}

func TestLintTopOffenders(t *testing.T) {
	dir := writeProjectFixture(t)

	result, err := Lint(fixtureConfig(dir))
	require.NoError(t, err)

	require.Len(t, result.TopOffenders, 4)
	// Same occurrence count, so names sort alphabetically.
	assert.Equal(t, "Bad_Class", result.TopOffenders[0].ClassName)
	assert.Equal(t, 1, result.TopOffenders[0].Occurrences)
	assert.Equal(t, `invalid identifier segment "Bad_Class"`, result.TopOffenders[0].Message)
	assert.Equal(t, "is-active--on", result.TopOffenders[1].ClassName)
	assert.Equal(t, "js-nav", result.TopOffenders[2].ClassName)
	assert.Equal(t, "l-grid__cell", result.TopOffenders[3].ClassName)
}

func TestLintUnknownVariant(t *testing.T) {
	_, err := Lint(Config{Variant: "smacss"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestLintMaxIssues(t *testing.T) {
	dir := writeProjectFixture(t)

	config := fixtureConfig(dir)
	config.MaxIssues = 2

	result, err := Lint(config)
	require.NoError(t, err)

	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 2, result.TruncatedCount)
}

func TestLimitIssues(t *testing.T) {
	same := Issue{Text: "dup", Pos: IssuePos{Filename: "a.css"}}
	other := Issue{Text: "other", Pos: IssuePos{Filename: "a.css"}}
	issues := []Issue{same, same, same, other}

	limited, truncated := limitIssues(issues, Config{MaxSameIssues: 2})
	assert.Len(t, limited, 3)
	assert.Equal(t, 1, truncated)

	limited, truncated = limitIssues(issues, Config{MaxIssues: 1})
	assert.Len(t, limited, 1)
	assert.Equal(t, 3, truncated)

	limited, truncated = limitIssues(issues, Config{MaxSameIssues: 1, MaxIssues: 1})
	assert.Len(t, limited, 1)
	assert.Equal(t, "dup", limited[0].Text)
	assert.Equal(t, 3, truncated)
}

func TestIssueSeverity(t *testing.T) {
	assert.Equal(t, SeverityError, issueSeverity(KindSyntax, false))
	assert.Equal(t, SeverityWarning, issueSeverity(KindSemantic, false))
	assert.Equal(t, SeverityInfo, issueSeverity(KindAdvisory, false))
	assert.Equal(t, SeverityError, issueSeverity(KindAdvisory, true))
	assert.Equal(t, SeverityWarning, issueSeverity(KindSemantic, true))
}

func TestStyleAdvisorySkipsMalformedTokens(t *testing.T) {
	v, err := ForVariant("double-underscore")
	require.NoError(t, err)

	// A syntactically broken js- token gets the syntax error only.
	res := v.Validate("js-")
	assert.Empty(t, styleAdvisory(v, res))

	res = v.Validate("js-nav")
	assert.Equal(t, "js- hook classes should not carry style rules", styleAdvisory(v, res))

	res = v.Validate("c-card")
	assert.Empty(t, styleAdvisory(v, res))
}
