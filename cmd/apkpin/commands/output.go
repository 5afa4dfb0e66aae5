package commands

import (
	"encoding/json"
	"io"
	"slices"

	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	err := zerr.With(domain.ErrInvalidOutputFormat, "format", format)
	return zerr.With(err, "allowed", allowed)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode yaml output")
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode json output")
		}
		return nil
	}
}
