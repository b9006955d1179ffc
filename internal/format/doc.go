// Package format implements the reformatting pipeline: a bracket-aware
// rewriter (padding, statement terminators, f-string prefix cleanup), a
// collapser for short multi-line bracketed literals, and an advisory
// indentation checker. All stages work from the lexer's span-aware
// token stream; none of them re-derive nesting or string membership
// from raw text.
package format
