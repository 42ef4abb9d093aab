// Package assertions provides the value-level checks behind probe's
// response assertion chain.
//
// It contains three small, pure utilities:
//   - Match: deep structural equality over decoded JSON values
//   - MatchesPattern: *-wildcard string matching
//   - ExtractPath: dotted/bracketed path lookup into a JSON document
//
// The path grammar is deliberately fixed: dot-separated segments, each
// optionally suffixed with one [index]. There is no escaping and no
// wildcard or query syntax; anything that does not resolve is a miss,
// not an error.
package assertions
