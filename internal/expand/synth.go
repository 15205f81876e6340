package expand

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MemberName is the name of the synthesized member.
const MemberName = "identifier"

// ErrUnknownDialect is returned when a dialect name is not recognized.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect selects the source language synthesized members are rendered in.
type Dialect int

const (
	_ Dialect = iota

	// DialectSwift renders `static let identifier = "<Name>"`.
	DialectSwift

	// DialectGo renders a value receiver method returning the name.
	DialectGo
)

func (d Dialect) String() string {
	v, err := d.MarshalText()
	if err != nil {
		return fmt.Sprintf("dialect-invalid(%d)", int(d))
	}

	return string(v)
}

var (
	_ encoding.TextUnmarshaler = (*Dialect)(nil)
	_ encoding.TextMarshaler   = Dialect(0)
)

func (d *Dialect) UnmarshalText(b []byte) error {
	switch string(b) {
	case "swift":
		*d = DialectSwift
		return nil
	case "go":
		*d = DialectGo
		return nil
	default:
		return fmt.Errorf("%q: %w", b, ErrUnknownDialect)
	}
}

func (d Dialect) MarshalText() ([]byte, error) {
	switch d {
	case DialectSwift:
		return []byte("swift"), nil
	case DialectGo:
		return []byte("go"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Dialect(%d)", int(d))
	}
}

// Member is a synthesized member declaration.
type Member struct {
	// Owner is the name of the declaration the member belongs to.
	Owner string
	Name  string
	// Source is the member source text, ready to be spliced into the owner.
	Source string
}

func (m Member) String() string {
	return m.Source
}

// Synthesizer renders the identifier member. It never looks at anything besides its
// arguments, so equal inputs always produce byte-identical output.
type Synthesizer struct {
	dialect Dialect
}

// NewSynthesizer creates a synthesizer for the given dialect. Invalid dialects fall back
// to DialectSwift.
func NewSynthesizer(dialect Dialect) Synthesizer {
	if _, err := dialect.MarshalText(); err != nil {
		dialect = DialectSwift
	}

	return Synthesizer{dialect: dialect}
}

// Dialect returns the synthesizer dialect.
func (s Synthesizer) Dialect() Dialect {
	return s.dialect
}

// Synthesize builds the identifier member of the named declaration. Type parameters are
// only used by DialectGo to spell the method receiver of generic types.
func (s Synthesizer) Synthesize(name string, typeParams []string) Member {
	var src string
	switch s.dialect {
	case DialectGo:
		recv := name
		if len(typeParams) > 0 {
			recv += "[" + strings.Join(typeParams, ", ") + "]"
		}
		src = fmt.Sprintf("func (%s) Identifier() string { return %s }", recv, strconv.Quote(name))
	default:
		src = fmt.Sprintf("static let %s = \"%s\"", MemberName, swiftEscaper.Replace(name))
	}

	return Member{
		Owner:  name,
		Name:   MemberName,
		Source: src,
	}
}

var swiftEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)
