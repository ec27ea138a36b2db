// Package parser assembles a lexed token stream into a grammar-typed
// parse tree by backtracking recursive descent.
//
// # Cursor discipline
//
// All grammar rules share one convention, borrowed from fork/commit
// backtracking: a rule never advances the cursor it is handed. It forks
// the cursor (a value copy of an integer index over the shared, immutable
// token slice), parses on the fork, and commits the fork back only on
// success:
//
//	fork := c.Fork()
//	// ... attempt to parse on the fork ...
//	c.Commit(fork) // success: the caller's cursor jumps forward
//
// On failure the fork is simply discarded, so a failed attempt is free
// and the caller can try the next alternative from the same position.
//
// # Grammar layering
//
// Terminals consume exactly one token when its kind satisfies the
// terminal's predicate. Product rules (FunctionDefinition,
// AssignmentStatement, ...) parse their fields in fixed order and abort
// on the first field failure. Sum rules (Statement, Expression, Factor)
// try their alternatives in declared order and keep the first success;
// Expression tries Arithmetic before Typecast, and that ordering is a
// tie-break rule, not an accident. The list combinators Delimited and
// Terminated build the two repetition shapes the grammar needs.
//
// The binary operator chain is right-recursive: TermExtend recurses into
// a full Term, so "a - b - c" groups as "a - (b - c)". See DESIGN.md for
// why this grouping is kept.
//
// # Errors
//
// Failures are typed *Error values naming the expected construct and the
// token actually found (nil token = input exhausted). Sum rules aggregate
// every tried alternative into one error. Nothing in this package
// terminates the process.
package parser
