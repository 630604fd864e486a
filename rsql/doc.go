/*
Package rsql reads textual function calls into the abstract function model.

It is a small front end for tooling and tests, built on the expr-lang parser, not a query
language parser:

	fn, err := rsql.ParseFunction(`AVGRATE(bytes_received, 'PT1M')`)

Identifiers and dotted paths become column references, integer literals become INT (or LONG
when they do not fit in 32 bits), and NAME(*) is read as a call without arguments. Call names
are taken as written, so lower-case names such as filter or len are ordinary calls and text
inside string literals is never rewritten. Operators, arrays, maps and closures are rejected
with an ErrorTypeUnsupported ParseError.
*/
package rsql
