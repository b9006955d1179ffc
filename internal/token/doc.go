// Package token defines the lexical vocabulary of the Python-style
// dialect the formatter understands: token kinds, the keyword table with
// its directive and continuation classes, and trivia (whitespace,
// comments, line continuations) attached to significant tokens.
package token
