package cssguide

import (
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// extractStylesheetClasses tokenizes CSS/SCSS content and collects every
// class selector with its line and column. A "." delim token followed by
// an identifier is a class selector wherever it appears, which also
// covers selector lists, compound selectors, @media blocks and the
// arguments of :not()/:is()/:where().
func extractStylesheetClasses(content string, filename string) []ClassReference {
	lexer := css.NewLexer(parse.NewInputString(content))
	starts := lineStarts(content)

	var refs []ClassReference
	offset := 0

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		tokenEnd := offset + len(text)

		if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
			tt2, name := lexer.Next()
			if tt2 == css.ErrorToken {
				break
			}
			nameStart := tokenEnd
			tokenEnd += len(name)

			if tt2 == css.IdentToken {
				line, col := positionAt(starts, nameStart)
				refs = append(refs, ClassReference{
					FullClassValue: string(name),
					InStylesheet:   true,
					Location: FileLocation{
						File:   filename,
						Line:   line,
						Column: col,
						Text:   lineAt(content, starts, line),
					},
					LineContent: lineAt(content, starts, line),
				})
			}
		}

		offset = tokenEnd
	}

	return refs
}

// lineStarts returns the byte offset of the first character of each line.
func lineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// positionAt converts a byte offset into a 1-based line and column.
func positionAt(starts []int, offset int) (line, col int) {
	idx := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	if idx < 0 {
		idx = 0
	}
	return idx + 1, offset - starts[idx] + 1
}

// lineAt returns the trimmed content of a 1-based line.
func lineAt(content string, starts []int, line int) string {
	if line < 1 || line > len(starts) {
		return ""
	}
	start := starts[line-1]
	end := len(content)
	if line < len(starts) {
		end = starts[line] - 1
	}
	return strings.TrimSpace(content[start:end])
}
