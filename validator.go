package cssguide

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// identPattern is the identifier grammar for block, element and modifier
// segments: lowercase alphanumerics with internal single dashes.
var identPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// customPrefixPattern constrains user-supplied namespace prefixes.
var customPrefixPattern = regexp.MustCompile(`^[a-z][a-z0-9]*-$`)

// Validator checks class-name tokens against one naming variant. It is
// stateless after construction and safe for concurrent use.
type Validator struct {
	variant  Variant
	prefixes []Prefix // variant + custom prefixes, longest-first
	strict   bool
}

// Option configures a Validator. Options that fail (malformed custom
// namespace tables) abort construction before any input is processed.
type Option func(*Validator) error

// WithStrict makes advisory violations count against Result.OK.
func WithStrict(strict bool) Option {
	return func(v *Validator) error {
		v.strict = strict
		return nil
	}
}

// WithCustomNamespaces extends the variant's prefix table. Prefixes must
// be lowercase, dash-terminated and not collide with the variant's own
// table; namespaces must be known.
func WithCustomNamespaces(table map[string]Namespace) Option {
	return func(v *Validator) error {
		for prefix, ns := range table {
			if !customPrefixPattern.MatchString(prefix) {
				return fmt.Errorf("custom namespace prefix %q: must be lowercase and end with a dash", prefix)
			}
			if !ns.Known() || ns == NamespaceNone {
				return fmt.Errorf("custom namespace prefix %q: unknown namespace %q", prefix, ns)
			}
			for _, p := range v.prefixes {
				if p.Literal == prefix {
					return fmt.Errorf("custom namespace prefix %q: already mapped to %q", prefix, p.Namespace)
				}
			}
			v.prefixes = append(v.prefixes, Prefix{Literal: prefix, Namespace: ns})
		}
		return nil
	}
}

// New builds a validator for the given variant.
func New(variant Variant, opts ...Option) (*Validator, error) {
	v := &Validator{
		variant:  variant,
		prefixes: append([]Prefix(nil), variant.Prefixes...),
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	// Longest-first avoids "is-"/"has-" losing to shorter overlapping
	// prefixes; ties break lexicographically for determinism.
	sort.SliceStable(v.prefixes, func(i, j int) bool {
		if len(v.prefixes[i].Literal) != len(v.prefixes[j].Literal) {
			return len(v.prefixes[i].Literal) > len(v.prefixes[j].Literal)
		}
		return v.prefixes[i].Literal < v.prefixes[j].Literal
	})

	return v, nil
}

// ForVariant builds a validator from a variant name or alias.
func ForVariant(name string, opts ...Option) (*Validator, error) {
	variant, err := LookupVariant(name)
	if err != nil {
		return nil, err
	}
	return New(variant, opts...)
}

// Variant returns the variant this validator enforces.
func (v *Validator) Variant() Variant { return v.variant }

// Strict reports whether advisories count as failures.
func (v *Validator) Strict() bool { return v.strict }

// Result is the outcome of validating one token. Violations are ordered:
// syntax problems first, then namespace rule breaks.
type Result struct {
	OK         bool
	Class      ClassName
	Violations []Violation
}

// violation appends and returns the updated result.
func (r *Result) violation(kind ViolationKind, msg string) {
	r.Violations = append(r.Violations, Violation{Kind: kind, Message: msg})
}

// Validate parses and checks a single class-name token. It never returns
// an error: malformed tokens come back as results with syntax-kind
// violations, so batch callers always get one result per input.
func (v *Validator) Validate(raw string) Result {
	res := Result{Class: ClassName{Raw: raw, Namespace: NamespaceNone}}

	switch {
	case raw == "":
		res.violation(KindSyntax, MsgEmptyClassName)
		return v.finish(res)
	case strings.ContainsAny(raw, " \t\r\n"):
		res.violation(KindSyntax, MsgWhitespace)
		return v.finish(res)
	case strings.HasPrefix(raw, "."):
		res.violation(KindSyntax, MsgLeadingDot)
		return v.finish(res)
	}

	rest := raw
	for _, p := range v.prefixes {
		if strings.HasPrefix(rest, p.Literal) {
			res.Class.Namespace = p.Namespace
			res.Class.Prefix = p.Literal
			rest = rest[len(p.Literal):]
			break
		}
	}

	parts := strings.Split(rest, v.variant.ModifierDelim)
	if len(parts) > 2 {
		res.violation(KindSyntax, MsgMultipleModifiers)
		return v.finish(res)
	}
	if len(parts) == 2 {
		res.Class.Modifier = parts[1]
	}

	head := parts[0]
	hasElement := false
	if v.variant.ElementDelim != "" {
		pieces := strings.Split(head, v.variant.ElementDelim)
		if len(pieces) > 2 {
			res.violation(KindSyntax, MsgMultipleElements)
			return v.finish(res)
		}
		if len(pieces) == 2 {
			hasElement = true
			res.Class.Element = pieces[1]
		}
		head = pieces[0]
	}
	res.Class.Block = head

	// The block is mandatory; element and modifier are checked only when
	// their delimiter introduced them, so an empty segment after a
	// delimiter reads as an invalid identifier rather than absence.
	segments := []string{res.Class.Block}
	if hasElement {
		segments = append(segments, res.Class.Element)
	}
	if len(parts) == 2 {
		segments = append(segments, res.Class.Modifier)
	}
	for _, segment := range segments {
		if !identPattern.MatchString(segment) {
			res.violation(KindSyntax, fmt.Sprintf(MsgInvalidIdentifier, segment))
		}
	}
	if len(res.Violations) > 0 {
		return v.finish(res)
	}

	rule := v.variant.rule(res.Class.Namespace)
	elementBreak := res.Class.Element != "" && !rule.AllowElement
	modifierBreak := res.Class.Modifier != "" && !rule.AllowModifier
	if elementBreak || modifierBreak {
		switch {
		case !rule.AllowElement && !rule.AllowModifier:
			res.violation(KindSemantic, MsgForbidsStructure)
		case modifierBreak:
			res.violation(KindSemantic, MsgForbidsModifiers)
		default:
			res.violation(KindSemantic, MsgForbidsElements)
		}
	}

	return v.finish(res)
}

// finish computes OK from the accumulated violations.
func (v *Validator) finish(res Result) Result {
	res.OK = true
	for _, viol := range res.Violations {
		if viol.Kind != KindAdvisory || v.strict {
			res.OK = false
			break
		}
	}
	return res
}

// ValidateAll validates a batch of tokens, preserving input order. One
// bad entry never aborts the batch.
func (v *Validator) ValidateAll(raws []string) []Result {
	results := make([]Result, len(raws))
	for i, raw := range raws {
		results[i] = v.Validate(raw)
	}
	return results
}
