// Package gosrc describes annotated Go declarations for the expansion engine.
//
// A declaration is annotated with a directive comment in its doc comment:
//
//	//reuseid:identifier
//	type FeedCell struct {
//	    UITableViewCell
//	}
//
// Go has no classes, so declarations are mapped onto engine kinds this way:
//
//   - struct types are class-like, their embedded fields are the base types;
//   - interface types are protocols;
//   - aliases extend an existing type;
//   - any other defined type is a value type;
//   - functions, variables and constants carrying the directive are "other"
//     declarations, reported rather than silently ignored.
//
// Only file scope declarations are considered: methods cannot be declared on types local
// to a function, so annotated function local types are never collected.
//
// Embedded field types are named verbatim as written in source, a pointer embedding
// names the pointed-to type.
package gosrc
