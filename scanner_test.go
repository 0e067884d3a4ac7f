package cssguide

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classValues(refs []ClassReference) []string {
	if len(refs) == 0 {
		return nil
	}
	values := make([]string, len(refs))
	for i, ref := range refs {
		values[i] = ref.FullClassValue
	}
	return values
}

func TestExtractClassesFromLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "double quoted class attribute",
			line: `<div class="app-sidebar">`,
			want: []string{"app-sidebar"},
		},
		{
			name: "multiple tokens stay in one reference",
			line: `<button class="c-btn c-btn--primary">`,
			want: []string{"c-btn c-btn--primary"},
		},
		{
			name: "single quoted class attribute",
			line: `<div class='l-grid u-hidden'>`,
			want: []string{"l-grid u-hidden"},
		},
		{
			name: "two attributes on one line",
			line: `<a class="c-nav"><span class="c-nav__label">`,
			want: []string{"c-nav", "c-nav__label"},
		},
		{
			name: "templ brace expression with string literal",
			line: `<div class={ "c-card" }>`,
			want: []string{"c-card"},
		},
		{
			name: "templ.Classes string arguments only",
			line: `<div class={ templ.Classes("c-btn", styles.Primary, "is-active") }>`,
			want: []string{"c-btn", "is-active"},
		},
		{
			name: "templ.KV takes only the first argument",
			line: `<div class={ templ.KV("c-menu--open", isOpen) }>`,
			want: []string{"c-menu--open"},
		},
		{
			name: "line comment is skipped",
			line: `// class="ignored"`,
			want: nil,
		},
		{
			name: "html comment is skipped",
			line: `<!-- <div class="ignored"> -->`,
			want: nil,
		},
		{
			name: "no class attribute",
			line: `<div id="main">`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractClassesFromLine(tt.line, 1, "test.html")
			assert.Equal(t, tt.want, classValues(refs))
		})
	}
}

func TestExtractClassesFromLineLocation(t *testing.T) {
	line := `  <div class="c-card">`
	refs := extractClassesFromLine(line, 7, "view.html")

	require.Len(t, refs, 1)
	ref := refs[0]
	assert.Equal(t, "view.html", ref.Location.File)
	assert.Equal(t, 7, ref.Location.Line)
	assert.Equal(t, `<div class="c-card">`, ref.LineContent)
	assert.False(t, ref.InStylesheet)
}

func TestFindClassColumn(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		className string
		want      int
	}{
		{
			name:      "inside class attribute",
			line:      `<div class="c-card c-card--dark">`,
			className: "c-card--dark",
			want:      20,
		},
		{
			name:      "first token in attribute",
			line:      `<div class="c-card c-card--dark">`,
			className: "c-card",
			want:      13,
		},
		{
			name:      "quoted occurrence without attribute",
			line:      `templ.Classes("c-btn")`,
			className: "c-btn",
			want:      16,
		},
		{
			name:      "direct occurrence",
			line:      `.c-card { }`,
			className: "c-card",
			want:      2,
		},
		{
			name:      "not found",
			line:      `<div>`,
			className: "c-card",
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findClassColumn(tt.line, tt.className))
		})
	}
}

func TestSplitCallArgs(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`"a", "b"`, []string{`"a"`, ` "b"`}},
		{`"a"`, []string{`"a"`}},
		{`fn(x, y), "b"`, []string{`fn(x, y)`, ` "b"`}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitCallArgs(tt.input))
	}
}

func TestIsTemplGenerated(t *testing.T) {
	assert.True(t, isTemplGenerated("views/home_templ.go"))
	assert.True(t, isTemplGenerated("views/home.templ.go"))
	assert.False(t, isTemplGenerated("views/home.templ"))
	assert.False(t, isTemplGenerated("views/home.go"))
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name, content string) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	writeFile("index.html", `<div class="c-card">`+"\n")
	writeFile("styles/main.css", ".c-card { color: red; }\n")
	writeFile("views/home_templ.go", `x := "<div class=\"ignored\">"`+"\n")
	writeFile("views/home.templ", `<div class="c-card__body">`+"\n")

	patterns := []string{
		filepath.Join(dir, "**/*.html"),
		filepath.Join(dir, "**/*.css"),
		filepath.Join(dir, "**/*.templ"),
		filepath.Join(dir, "**/*.go"),
	}

	refs, stats, err := ScanFiles(patterns)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)

	assert.ElementsMatch(t,
		[]string{"c-card", "c-card", "c-card__body"},
		classValues(refs))

	for _, ref := range refs {
		if filepath.Ext(ref.Location.File) == ".css" {
			assert.True(t, ref.InStylesheet)
		} else {
			assert.False(t, ref.InStylesheet)
		}
	}
}

func TestScanFilesDeduplicatesOverlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte(`<p class="c-note">`), 0644))

	refs, stats, err := ScanFiles([]string{
		filepath.Join(dir, "*.html"),
		filepath.Join(dir, "**/*.html"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesScanned)
	assert.Len(t, refs, 1)
}
