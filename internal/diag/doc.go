// Package diag carries the formatter's diagnostics: lexical warnings
// (unterminated strings, unknown characters), rewrite warnings
// (unbalanced brackets) and advisory indentation findings.
//
// Diagnostics flow through a Reporter into a Bag; the CLI renders the
// bag to stderr. Nothing in this package ever aborts formatting: the
// formatter's contract is to degrade to pass-through, not to fail.
package diag
