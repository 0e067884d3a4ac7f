package cssguide

import (
	"errors"
	"fmt"
)

// Namespace classifies the structural role a class plays in a stylesheet.
type Namespace string

// Namespaces recognized by the naming variants.
const (
	NamespaceLayout     Namespace = "layout"
	NamespaceUtility    Namespace = "utility"
	NamespaceTypography Namespace = "typography"
	NamespaceState      Namespace = "state"
	NamespaceJSHook     Namespace = "js-hook"
	NamespaceObject     Namespace = "object"
	NamespaceComponent  Namespace = "component"
	// NamespaceNone marks classes without a recognized prefix. Under the
	// Bootstrap hybrid variants these are assumed to be framework classes.
	NamespaceNone Namespace = "none"
)

// Known reports whether n is one of the defined namespaces.
func (n Namespace) Known() bool {
	switch n {
	case NamespaceLayout, NamespaceUtility, NamespaceTypography, NamespaceState,
		NamespaceJSHook, NamespaceObject, NamespaceComponent, NamespaceNone:
		return true
	}
	return false
}

// Rule constrains what a class in a given namespace may declare.
type Rule struct {
	AllowElement  bool
	AllowModifier bool
	// StyleAdvisory, when set, is reported as an advisory issue whenever a
	// class of this namespace appears as a selector in a stylesheet.
	StyleAdvisory string
}

// Prefix binds a literal namespace prefix (e.g. "is-") to its namespace.
type Prefix struct {
	Literal   string
	Namespace Namespace
}

// Variant is one self-consistent set of delimiter and namespace rules.
// Variants are immutable data tables; the validator contains no
// per-variant branching.
type Variant struct {
	Name string
	// ElementDelim separates block from element. Empty means the variant
	// has no element syntax (single-dash variants, where "-" is already an
	// identifier character).
	ElementDelim  string
	ModifierDelim string
	// Prefixes is matched longest-first against the raw token.
	Prefixes []Prefix
	// Rules holds per-namespace constraints. Namespaces without an entry
	// are unconstrained.
	Rules map[Namespace]Rule
}

// noDescendants forbids both elements and modifiers. Applied to the
// layout, utility, typography and state namespaces in every built-in
// variant (the strictest documented reading of the guide).
var noDescendants = Rule{}

// jsHookRule allows elements but no modifiers; styling a hook class is an
// advisory the linter raises when the class shows up in a stylesheet.
var jsHookRule = Rule{
	AllowElement:  true,
	StyleAdvisory: "js- hook classes should not carry style rules",
}

var restrictedRules = map[Namespace]Rule{
	NamespaceLayout:     noDescendants,
	NamespaceUtility:    noDescendants,
	NamespaceTypography: noDescendants,
	NamespaceState:      noDescendants,
	NamespaceJSHook:     jsHookRule,
}

// Built-in variants, in the order the guide introduced them.
var (
	// DashModifier is the original six-namespace convention: dash-separated
	// identifiers with "--" modifiers and no element syntax.
	DashModifier = Variant{
		Name:          "dash-modifier",
		ModifierDelim: "--",
		Prefixes: []Prefix{
			{"l-", NamespaceLayout},
			{"u-", NamespaceUtility},
			{"t-", NamespaceTypography},
			{"is-", NamespaceState},
			{"has-", NamespaceState},
			{"js-", NamespaceJSHook},
			{"c-", NamespaceComponent},
		},
		Rules: restrictedRules,
	}

	// DoubleUnderscore is the seven-namespace BEM convention with "__"
	// element and "--" modifier delimiters.
	DoubleUnderscore = Variant{
		Name:          "double-underscore",
		ElementDelim:  "__",
		ModifierDelim: "--",
		Prefixes: []Prefix{
			{"l-", NamespaceLayout},
			{"o-", NamespaceObject},
			{"c-", NamespaceComponent},
			{"u-", NamespaceUtility},
			{"t-", NamespaceTypography},
			{"is-", NamespaceState},
			{"has-", NamespaceState},
			{"js-", NamespaceJSHook},
		},
		Rules: restrictedRules,
	}

	// BootstrapHybrid keeps BEM delimiters for custom classes but leaves
	// unprefixed names to the framework. Typography folds into utilities
	// and abstractions use the "a-" prefix.
	BootstrapHybrid = Variant{
		Name:          "bootstrap-hybrid",
		ElementDelim:  "__",
		ModifierDelim: "--",
		Prefixes: []Prefix{
			{"l-", NamespaceLayout},
			{"a-", NamespaceObject},
			{"c-", NamespaceComponent},
			{"u-", NamespaceUtility},
			{"is-", NamespaceState},
			{"has-", NamespaceState},
			{"js-", NamespaceJSHook},
		},
		Rules: restrictedRules,
	}

	// BootstrapHybridAC is the later hybrid revision that renamed the
	// abstraction prefix to "ac-".
	BootstrapHybridAC = Variant{
		Name:          "bootstrap-hybrid-ac",
		ElementDelim:  "__",
		ModifierDelim: "--",
		Prefixes: []Prefix{
			{"l-", NamespaceLayout},
			{"ac-", NamespaceObject},
			{"c-", NamespaceComponent},
			{"u-", NamespaceUtility},
			{"is-", NamespaceState},
			{"has-", NamespaceState},
			{"js-", NamespaceJSHook},
		},
		Rules: restrictedRules,
	}
)

// ErrUnknownVariant is returned when a variant name does not match any
// built-in variant.
var ErrUnknownVariant = errors.New("unknown naming variant")

var builtins = []Variant{DashModifier, DoubleUnderscore, BootstrapHybrid, BootstrapHybridAC}

// aliases accepted by LookupVariant in addition to canonical names.
var variantAliases = map[string]string{
	"bem":             "double-underscore",
	"seven-namespace": "double-underscore",
	"dash":            "dash-modifier",
}

// Variants returns the built-in variants in definition order.
func Variants() []Variant {
	out := make([]Variant, len(builtins))
	copy(out, builtins)
	return out
}

// LookupVariant resolves a variant by canonical name or alias.
func LookupVariant(name string) (Variant, error) {
	if canonical, ok := variantAliases[name]; ok {
		name = canonical
	}
	for _, v := range builtins {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// rule returns the namespace constraints, defaulting to unconstrained.
func (v Variant) rule(n Namespace) Rule {
	if r, ok := v.Rules[n]; ok {
		return r
	}
	return Rule{AllowElement: true, AllowModifier: true}
}

// prefixFor returns the first registered prefix for a namespace, or ""
// if the variant has none (and always "" for NamespaceNone).
func (v Variant) prefixFor(n Namespace) string {
	if n == NamespaceNone {
		return ""
	}
	for _, p := range v.Prefixes {
		if p.Namespace == n {
			return p.Literal
		}
	}
	return ""
}
