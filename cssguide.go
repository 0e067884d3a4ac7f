// Package cssguide validates CSS class names against namespaced BEM
// naming conventions and lints project files for violations.
//
// # Validation
//
// A Validator checks single class-name tokens against one naming variant:
//
//	v, err := cssguide.ForVariant("double-underscore")
//	res := v.Validate("c-card__header--wide")
//	// res.OK, res.Class.Namespace, res.Class.Block, ...
//
// Each token is parsed into namespace prefix, block, optional element and
// optional modifier. Rule breaks accumulate on the result instead of
// aborting, so batch callers always get one result per input.
//
// # Linting
//
// Lint scans stylesheets, markup and templ/Go sources for class names and
// reports every violation with its exact file position:
//
//	result, err := cssguide.Lint(cssguide.Config{
//		Variant:   "double-underscore",
//		ScanPaths: []string{"web/**/*.css", "internal/web/**/*.templ"},
//	})
//
// # CLI Tool
//
// cssguide also provides a CLI tool. Install with:
//
//	go install github.com/j-d-b/css-guide/cmd/cssguide@latest
package cssguide
