// Package catalogfile loads paint catalogs from YAML or JSON files.
//
// File layout (YAML shown; JSON uses the same keys):
//
//	paints:
//	  - name: Cadmium Red
//	    hex: "#E30022"
//	    density: 1.2
//	  - name: Ultramarine
//	    rgb: [18, 10, 143]
//
// Each paint carries exactly one of hex or rgb. hex accepts anything
// color.Parse does (hex, "r,g,b", color names). density is optional and
// becomes catalog.Paint.Weight.
package catalogfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paintmix/catalog"
)

// Format is a catalog file encoding.
type Format int

const (
	// YAML is the default encoding (.yaml, .yml).
	YAML Format = iota

	// JSON is selected by the .json extension.
	JSON
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
}

// Load reads the catalog file at path.
//
// Errors are *OpError values wrapping one of:
//   - ErrUnsupportedFormat for an unknown extension,
//   - the os error when the file cannot be read,
//   - ErrInvalidFile (joined with the catalog/color sentinel that caused it).
func Load(path string) (*catalog.Catalog, error) {
	const op = "catalogfile.load"

	f, err := FormatOf(path)
	if err != nil {
		return nil, &OpError{Op: op, Path: path, Err: err}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpError{Op: op, Path: path, Err: err}
	}
	cat, err := Decode(bytes.NewReader(b), f)
	if err != nil {
		return nil, &OpError{Op: op, Path: path, Err: err}
	}

	return cat, nil
}

// Decode reads one catalog document from r. Unknown keys are rejected.
func Decode(r io.Reader, f Format) (*catalog.Catalog, error) {
	var doc fileDTO
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
	default:
		return nil, fmt.Errorf("format %d: %w", f, ErrUnsupportedFormat)
	}

	return toCatalog(doc)
}
