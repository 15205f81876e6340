// Package rules defines the stable diagnostic identities (RID-series) emitted by reuseid.
//
// Every rejection the expansion engine can produce maps to exactly one Rule. A Rule carries
// the text shown to the developer, its severity and a message identity made of a domain and
// a kind. The identity is what editors and test harnesses match against, so it must never
// change once published.
//
// Example:
//
//	rules.RID001ClassOnly.String()    → "RID001: ClassOnly"
//	rules.RID001ClassOnly.MessageID() → "ReuseIdentifierKit.classOnly"
//	rules.RID001ClassOnly.Message()   → "This macro can only be applied to class declarations."
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - Messages are matched verbatim by existing callers, including the trailing period
//     (or its absence).
package rules
