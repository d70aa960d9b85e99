package wire

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/sznuper/grafana-plugin/internal/plugin"
)

// JSONEncoder writes one JSON document per record.
type JSONEncoder struct{}

func (JSONEncoder) Format() string { return "json" }

func (JSONEncoder) EncodeDiscover(w io.Writer, d plugin.Discover) error {
	return encodeJSON(w, d)
}

func (JSONEncoder) EncodeResult(w io.Writer, r plugin.Result) error {
	return encodeJSON(w, r)
}

func encodeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

// YAMLEncoder writes one YAML document per record.
type YAMLEncoder struct{}

func (YAMLEncoder) Format() string { return "yaml" }

func (YAMLEncoder) EncodeDiscover(w io.Writer, d plugin.Discover) error {
	return encodeYAML(w, d)
}

func (YAMLEncoder) EncodeResult(w io.Writer, r plugin.Result) error {
	return encodeYAML(w, r)
}

func encodeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}
	return nil
}
