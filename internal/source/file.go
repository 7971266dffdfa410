package source

import (
	"os"

	"confgen/internal/errors"
)

// ReadDeclarations reads and parses a declaration file.
func ReadDeclarations(path string) (*DeclarationFile, error) {
	tokens, err := readTokens(path)
	if err != nil {
		return nil, err
	}

	return ParseDeclarations(path, tokens), nil
}

// ReadDefinitions reads and parses a definition file.
func ReadDefinitions(path string) (*DefinitionFile, error) {
	tokens, err := readTokens(path)
	if err != nil {
		return nil, err
	}

	return ParseDefinitions(path, tokens), nil
}

func readTokens(path string) ([]Token, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.SourceRead(path, err)
	}

	return Tokenize(path, src)
}
