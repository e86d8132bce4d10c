package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/matzehuels/depscope/pkg/errors"
	"github.com/matzehuels/depscope/pkg/inspect"
)

// Output formats written by [Write].
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats lists the formats [Write] accepts.
var Formats = []string{FormatJSON, FormatDOT, FormatSVG}

// ValidateFormat checks that format is one of [Formats] (case-sensitive).
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format %q (valid: %v)", format, Formats)
	}
	return nil
}

// Write renders res to w in the given format.
func Write(w io.Writer, res *inspect.Result, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatDOT:
		_, err := io.WriteString(w, ToDOT(res))
		return err
	default:
		svg, err := RenderSVG(ToDOT(res))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	}
}

// WriteJSON writes res as indented JSON.
func WriteJSON(w io.Writer, res *inspect.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
