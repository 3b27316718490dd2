package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/statlens-cli/internal/analysis"
)

// Options control how a statistics file is read.
type Options struct {
	// Delimiter for CSV. If 0, '\t' for .tsv files and ',' otherwise.
	Delimiter rune
	// XLSX sheet selection. SheetName wins; SheetIndex is 1-based.
	SheetName  string
	SheetIndex int
}

// Parser reads one file format into a raw, uncleaned table.
type Parser interface {
	CanParse(filename string) bool
	Parse(r io.Reader, filename string, opt Options) (*analysis.Table, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ErrUnsupported indicates a format no registered parser accepts.
var ErrUnsupported = errors.New("unsupported statistics file format")

// ParseFile selects a parser based on filename and returns the raw table.
func ParseFile(path string, opt Options) (*analysis.Table, error) {
	p := lookup(path)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	return p.Parse(f, path, opt)
}

// Parse reads r with the parser registered for filename.
func Parse(r io.Reader, filename string, opt Options) (*analysis.Table, error) {
	p := lookup(filename)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filename), ErrUnsupported)
	}
	return p.Parse(r, filename, opt)
}

func lookup(filename string) Parser {
	for _, p := range registry {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

func init() {
	Register(csvParser{})
	Register(xlsxParser{})
}
