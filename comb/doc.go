// Package comb provides parser combinators: small parsers composed into
// parsers for whole grammars.
//
// # Overview
//
// A Parser[T] turns a Stream into a Result[T]. A Stream is an immutable,
// positioned view over the input; a Result is either a Success holding a
// value and the remaining stream, or a Failure holding the label of what
// was expected and where.
//
//	digits := comb.AtLeastOne(text.Digit())
//	r := comb.Run(digits, "123x")
//	r.Value()            // "123"
//	r.Rest().Remaining() // "x"
//
// # Sequencing and choice
//
// FollowedBy, Skip and Apply sequence parsers; a failure anywhere in a
// sequence is returned as is. Or and Choice backtrack: every alternative
// starts from the same stream, regardless of how much input a failed
// alternative consumed. When every alternative of a Choice fails, the
// failure lists every expected label.
//
// # Combining outputs
//
// Mappend, Assemble, Many and AtLeastOne merge the values of consecutive
// parses. They require T to satisfy Monoid: an associative Combine with an
// Empty identity. Text and List are provided.
//
// # Diagnostics
//
// Result.Err returns a *ParseError whose message combines the position
// with the expected label. Label replaces low-level expectations with a
// name for the composite parser. Trace and WithTrace log parser attempts
// through commonlog at debug level.
package comb
