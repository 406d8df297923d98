package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/wgomg/analyseur/internal/config"
	"github.com/wgomg/analyseur/internal/processor"
	"github.com/wgomg/analyseur/internal/report"
	"github.com/wgomg/analyseur/internal/utils"
)

const (
	promptMessage      = "Quel fichier voulez-vous lire ?"
	missingFileMessage = "Erreur: Le fichier n'existe pas dans ce dossier !"
)

// run analyzes filename, prompting on in when it is empty, and writes the
// report. A missing source file is reported on out and is not an error.
func run(fs afero.Fs, cfg *config.Config, logger *utils.Logger, filename string, in io.Reader, out io.Writer) error {
	if filename == "" {
		var err error
		filename, err = prompt(in, out)
		if err != nil {
			return err
		}
	}

	analysis, err := processor.Analyze(fs, cfg.Analyzer.BaseDir, filename, logger)
	if errors.Is(err, processor.ErrFileNotFound) {
		logger.Debug("%v", err)
		fmt.Fprintln(out, missingFileMessage)
		return nil
	}
	if err != nil {
		return err
	}

	if err := report.Echo(out, analysis); err != nil {
		return fmt.Errorf("failed to print analysis: %w", err)
	}

	if err := report.Write(fs, cfg.Analyzer.ReportPath, report.FromAnalysis(analysis)); err != nil {
		return err
	}
	logger.Info("Report written for %s (%d words, %d distinct)", filename, analysis.Total(), analysis.Table.Len())

	fmt.Fprintf(out, "Rapport généré : %s\n", cfg.Analyzer.ReportPath)
	return nil
}

func prompt(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptMessage)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read filename: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
