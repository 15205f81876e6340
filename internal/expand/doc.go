// Package expand implements the reuse identifier expansion engine.
//
// A host (the go/analysis pass, the CLI generator, an editor integration) finds a
// declaration annotated with the expansion directive, describes it as a [Declaration] and
// calls [Engine.Expand]. The engine then:
//
//   - checks the declaration is class-like and inherits from a recognized base kind;
//   - rejects it with exactly one diagnostic emitted into the host supplied [Context]
//     when it is not;
//   - synthesizes a single `identifier` member bound to the declaration name when it is.
//
// The engine keeps no state between calls and never reads anything besides its arguments
// and the immutable configuration it was built with, so a single [Engine] may serve
// concurrent expansions.
package expand
