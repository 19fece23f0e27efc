// SPDX-License-Identifier: MIT

package routepath

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a route-path document encoding.
type Format int

const (
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatJSON decodes with encoding/json.
	FormatJSON
)

// FormatFromPath picks a Format from the file extension (.yaml, .yml, .json).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Decode reads one route-path document from r, sorts its links and
// validates it.
func Decode(r io.Reader, f Format) (*RoutePath, error) {
	var rp RoutePath
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rp); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rp); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	rp.Sort()
	if err := rp.Validate(); err != nil {
		return nil, err
	}

	return &rp, nil
}

// Load opens path and decodes it with the format implied by its extension.
func Load(path string) (*RoutePath, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	rp, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rp, nil
}

// Encode writes rp to w in the given format.
func Encode(w io.Writer, rp *RoutePath, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rp); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rp)
	default:
		return ErrUnknownFormat
	}
}
