package diag

import "fmt"

// Code identifies a diagnostic category.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002

	// Rewriting.
	FmtInfo               Code = 2000
	FmtUnbalancedBrackets Code = 2001
	FmtSkippedRegion      Code = 2002

	// Indentation (advisory only).
	IndentInfo          Code = 3000
	IndentUnexpected    Code = 3001
	IndentNoOuterMatch  Code = 3002
	IndentTabSpaceMixed Code = 3003
)

var codeIDs = map[Code]string{
	UnknownCode:           "PF0000",
	LexInfo:               "PF1000",
	LexUnknownChar:        "PF1001",
	LexUnterminatedString: "PF1002",
	FmtInfo:               "PF2000",
	FmtUnbalancedBrackets: "PF2001",
	FmtSkippedRegion:      "PF2002",
	IndentInfo:            "PF3000",
	IndentUnexpected:      "PF3001",
	IndentNoOuterMatch:    "PF3002",
	IndentTabSpaceMixed:   "PF3003",
}

// ID returns the stable printable identifier, e.g. "PF1002".
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("PF%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}
