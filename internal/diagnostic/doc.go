// Package diagnostic provides structured, collected findings for the
// schema compiler.
//
// Extraction and resolution never stop at the first problem: every unmapped
// type, unresolved default, malformed declaration or conflicting alias is
// recorded with its source position and the run goes on, so that many
// entities can be fixed in one pass. The caller decides at the end whether
// error-level findings fail the run.
package diagnostic
