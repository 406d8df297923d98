package processor

import (
	"github.com/spf13/afero"

	"github.com/wgomg/analyseur/internal/utils"
)

// Analyze resolves filename against baseDir and runs load, tokenize,
// aggregate and rank on it. A missing or unreadable file is reported as
// *FileNotFoundError; undecodable content as a plain error.
func Analyze(fs afero.Fs, baseDir, filename string, logger *utils.Logger) (*Analysis, error) {
	path := Resolve(baseDir, filename)
	logger.Debug("Resolved %q to %s", filename, path)

	content, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded %d bytes", len(content))

	tokens := Tokenize(content)
	table := Aggregate(tokens)
	ranked := Rank(table)
	logger.Debug("Counted %d tokens, %d distinct", len(tokens), table.Len())

	return &Analysis{
		Filename: filename,
		Content:  content,
		Tokens:   tokens,
		Table:    table,
		Ranked:   ranked,
	}, nil
}
