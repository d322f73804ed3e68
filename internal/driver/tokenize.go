package driver

import (
	"cnext/internal/diag"
	"cnext/internal/lexer"
	"cnext/internal/source"
	"cnext/internal/token"
)

// TokenizeFile loads and tokenizes one file. The EOF token is included so
// dump consumers see the full stream.
func TokenizeFile(fs *source.FileSet, path string, cfg Config) ([]token.Token, source.FileID, *diag.Bag, error) {
	cfg = cfg.normalized()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, 0, nil, err
	}
	tokens, bag := tokenizeLoaded(fs, fileID, cfg)
	return tokens, fileID, bag, nil
}

func tokenizeLoaded(fs *source.FileSet, fileID source.FileID, cfg Config) ([]token.Token, *diag.Bag) {
	bag := diag.NewBag(cfg.MaxDiagnostics)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, bag
}
