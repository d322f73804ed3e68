package diag

import (
	"fmt"
)

// Code identifies one diagnostic kind. The numeric ranges follow the
// pipeline stages: 1xxx lexical, 2xxx syntactic, 3xxx semantic.
type Code uint16

const (
	UnknownCode Code = 0

	// The *Info code of each range anchors its numbering; none is emitted
	// today, they are reserved for informational diagnostics.

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectExpression   Code = 2002
	SynExpectColon        Code = 2003
	SynExpectIdentifier   Code = 2004
	SynExpectSemicolon    Code = 2005
	SynExpectType         Code = 2006
	SynUnclosedParen      Code = 2007
	SynUnclosedBracket    Code = 2008
	SynUnexpectedTopLevel Code = 2009
	// SynAssignInCondition rejects a bare, unparenthesized assignment in the
	// condition slot of a conditional expression.
	SynAssignInCondition Code = 2010
	// SynConditionalTooDeep is the hard recursion ceiling for chained
	// conditional expressions. Fatal, unlike SynDeepConditional.
	SynConditionalTooDeep Code = 2011
	// SynDeepConditional is the advisory warning for conditional chains
	// beyond the configured nesting threshold. Never blocks compilation.
	SynDeepConditional Code = 2012

	// Semantic
	SemaInfo                  Code = 3000
	SemaUnresolvedSymbol      Code = 3001
	SemaDuplicateSymbol       Code = 3002
	SemaTypeMismatch          Code = 3003
	SemaInvalidBoolContext    Code = 3004
	SemaInvalidBinaryOperands Code = 3005
	SemaInvalidUnaryOperand   Code = 3006
	SemaUnknownType           Code = 3007
	// SemaAssignToConst rejects writes to symbols declared const.
	SemaAssignToConst Code = 3008
)

var codeNames = map[Code]string{
	UnknownCode:                 "UnknownCode",
	LexInfo:                     "LexInfo",
	LexUnknownChar:              "LexUnknownChar",
	LexUnterminatedString:       "LexUnterminatedString",
	LexUnterminatedBlockComment: "LexUnterminatedBlockComment",
	LexBadNumber:                "LexBadNumber",
	SynInfo:                     "SynInfo",
	SynUnexpectedToken:          "SynUnexpectedToken",
	SynExpectExpression:         "SynExpectExpression",
	SynExpectColon:              "SynExpectColon",
	SynExpectIdentifier:         "SynExpectIdentifier",
	SynExpectSemicolon:          "SynExpectSemicolon",
	SynExpectType:               "SynExpectType",
	SynUnclosedParen:            "SynUnclosedParen",
	SynUnclosedBracket:          "SynUnclosedBracket",
	SynUnexpectedTopLevel:       "SynUnexpectedTopLevel",
	SynAssignInCondition:        "SynAssignInCondition",
	SynConditionalTooDeep:       "SynConditionalTooDeep",
	SynDeepConditional:          "SynDeepConditional",
	SemaInfo:                    "SemaInfo",
	SemaUnresolvedSymbol:        "SemaUnresolvedSymbol",
	SemaDuplicateSymbol:         "SemaDuplicateSymbol",
	SemaTypeMismatch:            "SemaTypeMismatch",
	SemaInvalidBoolContext:      "SemaInvalidBoolContext",
	SemaInvalidBinaryOperands:   "SemaInvalidBinaryOperands",
	SemaInvalidUnaryOperand:     "SemaInvalidUnaryOperand",
	SemaUnknownType:             "SemaUnknownType",
	SemaAssignToConst:           "SemaAssignToConst",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
