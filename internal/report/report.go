// Package report renders an analysis to the report file and to the console.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/wgomg/analyseur/internal/processor"
)

const (
	Header        = "=== RAPPORT D'ANALYSE ==="
	RankingHeader = "=== MOTS LES PLUS FRÉQUENTS ==="
	RankingLeadIn = "Mots les plus fréquents: "
)

// Report is the content of the report file.
type Report struct {
	Filename string
	Total    int
	Ranked   []processor.RankedEntry
}

func FromAnalysis(a *processor.Analysis) Report {
	return Report{
		Filename: a.Filename,
		Total:    a.Total(),
		Ranked:   a.Ranked,
	}
}

// Render writes the report in its fixed format.
func Render(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, Header)
	fmt.Fprintf(bw, "Fichier analysé : %s\n", r.Filename)
	fmt.Fprintf(bw, "Nombre total de mots: %d\n", r.Total)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, RankingHeader)
	fmt.Fprintln(bw, RankingLeadIn)

	for i, entry := range r.Ranked {
		fmt.Fprintf(bw, "%d. %s : %d occurrences\n", i+1, entry.Word, entry.Count)
	}

	return bw.Flush()
}

// Write creates or truncates the file at path and renders r into it.
func Write(fs afero.Fs, path string, r Report) (err error) {
	file, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close report %s: %w", path, closeErr)
		}
	}()

	if err := Render(file, r); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

// Echo prints the analysis to the console: the raw content, the total, the
// frequency table and the ranking, in that order.
func Echo(w io.Writer, a *processor.Analysis) error {
	ranked := make([]string, 0, len(a.Ranked))
	for _, entry := range a.Ranked {
		ranked = append(ranked, entry.String())
	}

	_, err := fmt.Fprintf(w, "%s\nNombre total de mots: %d\n%s\n\nMots les plus fréquents :\n[%s]\n",
		a.Content,
		a.Total(),
		a.Table,
		strings.Join(ranked, " "),
	)
	return err
}
