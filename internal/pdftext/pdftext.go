// Package pdftext renders PDF statements to layout-preserving text with an
// external tool (pdftotext from poppler by default).
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Extractor runs Command with Args followed by the PDF path. The tool must
// write its output next to the input, with the extension replaced by .txt.
type Extractor struct {
	Command string
	Args    []string
}

// Default returns the pdftotext extractor in layout mode.
func Default() Extractor {
	return Extractor{Command: "pdftotext", Args: []string{"-layout"}}
}

// Available reports whether the extraction command can be found.
func (e Extractor) Available() bool {
	_, err := exec.LookPath(e.Command)
	return err == nil
}

// Extract converts pdfPath and returns the path of the text file.
func (e Extractor) Extract(ctx context.Context, pdfPath string) (string, error) {
	if e.Command == "" {
		return "", errors.New("no extraction command configured")
	}

	args := append(append([]string{}, e.Args...), pdfPath)
	cmd := exec.CommandContext(ctx, e.Command, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return "", fmt.Errorf("%s %s: %w", e.Command, pdfPath, err)
		}
		return "", fmt.Errorf("%s %s: %s: %w", e.Command, pdfPath, msg, err)
	}
	return TextPath(pdfPath), nil
}

// TextPath returns the sibling .txt path for a PDF: "a/b.pdf" -> "a/b.txt".
func TextPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".txt"
}
