package cssguide

import "strings"

// ClassName is a parsed class-name token. A ClassName is constructed per
// validation call and holds no reference to the validator.
type ClassName struct {
	Raw       string    // input as given
	Namespace Namespace // NamespaceNone when no prefix matched
	Prefix    string    // matched prefix literal, "" for NamespaceNone
	Block     string    // "navbar"
	Element   string    // "item" in navbar__item, "" when absent
	Modifier  string    // "new" in navbar__item--new, "" when absent
}

// Render assembles the canonical string form of c under this variant.
// When c carries no explicit prefix, the namespace's first registered
// prefix is used. Rendering a ClassName produced by Validate yields the
// original input back.
func (v Variant) Render(c ClassName) string {
	var b strings.Builder

	prefix := c.Prefix
	if prefix == "" {
		prefix = v.prefixFor(c.Namespace)
	}
	b.WriteString(prefix)
	b.WriteString(c.Block)

	if c.Element != "" {
		b.WriteString(v.ElementDelim)
		b.WriteString(c.Element)
	}
	if c.Modifier != "" {
		b.WriteString(v.ModifierDelim)
		b.WriteString(c.Modifier)
	}

	return b.String()
}
