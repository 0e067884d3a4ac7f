package cssguide

// ViolationKind separates malformed tokens from rule breaks.
type ViolationKind int

const (
	// KindSyntax marks tokens that are not well-formed class names
	// (empty, whitespace, bad delimiters, invalid identifier characters).
	KindSyntax ViolationKind = iota
	// KindSemantic marks well-formed tokens that break a namespace rule.
	KindSemantic
	// KindAdvisory marks recommendations that only fail in strict mode.
	KindAdvisory
)

// String returns the kind name used in reports.
func (k ViolationKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindSemantic:
		return "semantic"
	case KindAdvisory:
		return "advisory"
	}
	return "unknown"
}

// Violation is a single rule break with a human-readable message.
type Violation struct {
	Kind    ViolationKind
	Message string
}

// Violation messages. Kept as constants so tests and reporters agree on
// the exact wording.
const (
	MsgEmptyClassName    = "empty class name"
	MsgWhitespace        = "class name contains whitespace"
	MsgLeadingDot        = "class name must not include the selector dot"
	MsgMultipleModifiers = "multiple modifier delimiters"
	MsgMultipleElements  = "multiple element delimiters"
	MsgInvalidIdentifier = "invalid identifier segment %q"
	MsgForbidsStructure  = "namespace forbids descendants/modifiers"
	MsgForbidsModifiers  = "namespace forbids modifiers"
	MsgForbidsElements   = "namespace forbids descendants"
)
