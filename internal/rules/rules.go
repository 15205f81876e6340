package rules

import "fmt"

// Domain is the message identity domain shared by all reuseid rules.
const Domain = "ReuseIdentifierKit"

// Rule represents a reuseid rule code (RID-series).
type Rule int

const (
	ruleInvalid Rule = iota

	RID001ClassOnly
	RID002InvalidType
)

// String returns the canonical code and short name of the rule.
// Example: "RID001: ClassOnly"
func (r Rule) String() string {
	switch r {
	case RID001ClassOnly:
		return "RID001: ClassOnly"
	case RID002InvalidType:
		return "RID002: InvalidType"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// ID returns the kind part of the message identity.
func (r Rule) ID() string {
	switch r {
	case RID001ClassOnly:
		return "classOnly"
	case RID002InvalidType:
		return "invalidType"
	default:
		return ""
	}
}

// MessageID returns the full message identity in the "<domain>.<kind>" form.
func (r Rule) MessageID() string {
	id := r.ID()
	if id == "" {
		return ""
	}

	return Domain + "." + id
}

// Message returns the text shown to the developer.
func (r Rule) Message() string {
	switch r {
	case RID001ClassOnly:
		return "This macro can only be applied to class declarations."
	case RID002InvalidType:
		return "This macro can only be applied to UITableViewCell, UICollectionViewCell or UICollectionReusableView"
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Severity of every diagnostic produced for the rule.
func (r Rule) Severity() Severity {
	switch r {
	case RID001ClassOnly, RID002InvalidType:
		return SeverityError
	default:
		return severityInvalid
	}
}

// Canonical constructors.

func ClassOnly() Rule   { return RID001ClassOnly }
func InvalidType() Rule { return RID002InvalidType }

// Severity of a diagnostic.
type Severity int

const (
	severityInvalid Severity = iota
	SeverityNote
	SeverityWarning
	SeverityError
)

var severityValueMap = map[Severity]string{
	SeverityNote:    "note",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	v, ok := severityValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}
