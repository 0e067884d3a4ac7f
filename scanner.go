package cssguide

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference is a class-attribute value (or stylesheet selector)
// found in a scanned file. FullClassValue may hold several
// space-separated tokens; the linter validates each one.
type ClassReference struct {
	FullClassValue string
	Location       FileLocation
	LineContent    string // full line for context
	InStylesheet   bool   // true when extracted from a CSS/SCSS selector
}

// FileLocation tracks where a class reference was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based
	Text   string // full line content for source display
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern represents a regex for finding class references in markup
// and template sources.
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Ordered from most specific to least specific.
	markupPatterns = []scanPattern{
		{
			name:  "class attribute with quotes",
			regex: regexp.MustCompile(`class="([^"]+)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`class='([^']+)'`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`class=\{\s*"([^"]+)"`),
		},
	}

	// templ.Classes and templ.KV take comma-separated arguments and need
	// their own extraction.
	templClassesCall = regexp.MustCompile(`templ\.Classes\(([^)]+)\)`)
	templKVCall      = regexp.MustCompile(`templ\.KV\(([^)]+)\)`)

	// Comment lines to skip
	commentPattern = regexp.MustCompile(`^\s*(//|<!--)`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// stylesheetExts are routed through the CSS lexer instead of the markup
// patterns.
var stylesheetExts = map[string]bool{
	".css":  true,
	".scss": true,
}

// isTemplGenerated checks if a file is a templ-generated Go file.
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile filters generated and gitignored files. Gitignore rules
// only apply to relative paths (paths within the project).
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given glob patterns for class
// references. Stylesheets go through the CSS lexer, everything else
// through line-based markup patterns.
func ScanFiles(patterns []string) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []ClassReference
	for _, file := range files {
		var refs []ClassReference
		var err error
		if stylesheetExts[filepath.Ext(file)] {
			refs, err = scanStylesheetFile(file)
		} else {
			refs, err = scanMarkupFile(file)
		}
		if err != nil {
			// Unreadable files are skipped, not fatal
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands glob patterns to deduplicated file paths,
// tracking discovery statistics.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return allFiles, stats, nil
}

// scanMarkupFile scans a markup/template/Go file line by line.
func scanMarkupFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// scanStylesheetFile extracts class selectors from a CSS/SCSS file.
func scanStylesheetFile(filePath string) ([]ClassReference, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return extractStylesheetClasses(string(content), filePath), nil
}

// extractClassesFromLine extracts all class references from one line of
// markup, templ or Go source.
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference

	hasTemplClasses := strings.Contains(line, "templ.Classes(")
	hasTemplKV := strings.Contains(line, "templ.KV(")

	if hasTemplClasses {
		refs = append(refs, extractFromTemplCall(templClassesCall, line, lineNum, file, false)...)
	}
	if hasTemplKV {
		refs = append(refs, extractFromTemplCall(templKVCall, line, lineNum, file, true)...)
	}
	// templ calls already cover their string arguments; running the
	// generic patterns too would double-report them.
	if hasTemplClasses || hasTemplKV {
		return refs
	}

	for _, pattern := range markupPatterns {
		matches := pattern.regex.FindAllStringSubmatchIndex(line, -1)
		for _, match := range matches {
			if len(match) < 4 {
				continue
			}

			refs = append(refs, ClassReference{
				FullClassValue: line[match[2]:match[3]],
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: match[2] + 1,
					Text:   strings.TrimSpace(line),
				},
				LineContent: strings.TrimSpace(line),
			})
		}
	}

	return refs
}

// extractFromTemplCall pulls string-literal arguments out of
// templ.Classes(...) or templ.KV(...). For KV only the first argument is
// a class value.
func extractFromTemplCall(call *regexp.Regexp, line string, lineNum int, file string, firstArgOnly bool) []ClassReference {
	var refs []ClassReference

	for _, match := range call.FindAllStringSubmatchIndex(line, -1) {
		if len(match) < 4 {
			continue
		}

		args := splitCallArgs(line[match[2]:match[3]])
		if firstArgOnly && len(args) > 1 {
			args = args[:1]
		}

		for _, arg := range args {
			arg = strings.TrimSpace(arg)
			if !strings.HasPrefix(arg, `"`) || !strings.HasSuffix(arg, `"`) || len(arg) < 2 {
				continue
			}
			value := strings.Trim(arg, `"`)
			refs = append(refs, ClassReference{
				FullClassValue: value,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: strings.Index(line, value) + 1,
					Text:   strings.TrimSpace(line),
				},
				LineContent: strings.TrimSpace(line),
			})
		}
	}

	return refs
}

// splitCallArgs splits comma-separated arguments, respecting one level
// of nested parentheses.
func splitCallArgs(s string) []string {
	var parts []string
	var current strings.Builder
	parenDepth := 0

	for _, r := range s {
		switch r {
		case '(':
			parenDepth++
			current.WriteRune(r)
		case ')':
			parenDepth--
			current.WriteRune(r)
		case ',':
			if parenDepth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// findClassColumn locates the exact column where className starts within
// line. Returns 0 when the token cannot be located.
func findClassColumn(line string, className string) int {
	// Prefer a match inside a class attribute
	classAttrIdx := strings.Index(line, "class=")
	if classAttrIdx != -1 {
		quoteIdx := strings.IndexAny(line[classAttrIdx:], `"'`)
		if quoteIdx != -1 {
			searchStart := classAttrIdx + quoteIdx + 1

			classesStr := line[searchStart:]
			endQuote := strings.IndexAny(classesStr, `"'`)
			if endQuote != -1 {
				classesStr = classesStr[:endQuote]
			}

			idx := strings.Index(classesStr, className)
			if idx != -1 {
				return searchStart + idx + 1 // 1-based column
			}
		}
	}

	// Quoted occurrence
	idx := strings.Index(line, `"`+className+`"`)
	if idx != -1 {
		return idx + 2
	}

	// Direct search
	idx = strings.Index(line, className)
	if idx != -1 {
		return idx + 1
	}

	return 0
}

// GetRelativePath returns a path relative to the working directory, or
// the input unchanged when that fails.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
