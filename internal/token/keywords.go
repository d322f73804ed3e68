package token

var keywords = map[string]Kind{
	"const": KwConst,
	"true":  KwTrue,
	"false": KwFalse,
	"null":  NullLit,
}

// LookupKeyword returns the keyword kind for ident, if any.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
