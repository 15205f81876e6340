package expand

import (
	"fmt"
	"go/token"

	"github.com/sirkon/reuseid/internal/rules"
)

// Diagnostic is a structured message about a rejected declaration.
type Diagnostic struct {
	Rule     rules.Rule
	Severity rules.Severity

	// ID is the stable "<domain>.<kind>" message identity.
	ID      string
	Message string
	Pos     token.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", d.Pos, d.Severity, d.Message, d.ID)
}

// Context accepts diagnostics emitted during an expansion. It is supplied by the host
// on every call.
type Context interface {
	Diagnose(d Diagnostic)
}

// ContextFunc adapts a function to the Context interface.
type ContextFunc func(d Diagnostic)

// Diagnose calls f(d).
func (f ContextFunc) Diagnose(d Diagnostic) {
	f(d)
}

var reasonRules = map[Reason]rules.Rule{
	ReasonNotClassDeclaration: rules.ClassOnly(),
	ReasonInvalidBaseType:     rules.InvalidType(),
}

// Diagnose maps a rejection reason into the diagnostic attached to the declaration.
// It returns false for ReasonNone and unknown reasons.
func Diagnose(reason Reason, decl Declaration) (Diagnostic, bool) {
	rule, ok := reasonRules[reason]
	if !ok {
		return Diagnostic{}, false
	}

	return Diagnostic{
		Rule:     rule,
		Severity: rule.Severity(),
		ID:       rule.MessageID(),
		Message:  rule.Message(),
		Pos:      decl.Pos,
	}, true
}
