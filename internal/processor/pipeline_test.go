package processor

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/analyseur/internal/utils"
)

func TestAnalyze(t *testing.T) {
	t.Run("Should run the whole pipeline on a file in the base directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/data/animaux.txt", []byte("Cat dog cat. Dog dog!"), 0o644))

		analysis, err := Analyze(fs, "/data", "animaux.txt", utils.NewDiscardLogger())

		require.NoError(t, err)
		assert.Equal(t, "animaux.txt", analysis.Filename)
		assert.Equal(t, "Cat dog cat. Dog dog!", analysis.Content)
		assert.Equal(t, []Token{"cat", "dog", "cat", "dog", "dog"}, analysis.Tokens)
		assert.Equal(t, 5, analysis.Total())
		assert.Equal(t, []RankedEntry{{"cat", 2}, {"dog", 3}}, analysis.Table.Entries())
		assert.Equal(t, []RankedEntry{{"dog", 3}, {"cat", 2}}, analysis.Ranked)
	})

	t.Run("Should fail with FileNotFoundError when the file is absent", func(t *testing.T) {
		analysis, err := Analyze(afero.NewMemMapFs(), "/data", "absent.txt", utils.NewDiscardLogger())

		assert.Nil(t, analysis)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("Should handle an empty file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/data/vide.txt", nil, 0o644))

		analysis, err := Analyze(fs, "/data", "vide.txt", utils.NewDiscardLogger())

		require.NoError(t, err)
		assert.Equal(t, 0, analysis.Total())
		assert.Empty(t, analysis.Ranked)
	})
}
