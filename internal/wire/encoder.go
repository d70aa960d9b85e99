package wire

import (
	"fmt"
	"io"

	"github.com/sznuper/grafana-plugin/internal/plugin"
)

// Encoder writes host records in one wire format.
type Encoder interface {
	Format() string
	EncodeDiscover(w io.Writer, d plugin.Discover) error
	EncodeResult(w io.Writer, r plugin.Result) error
}

// Formats lists the supported encodings; the first is the default.
var Formats = []string{"proto", "json", "yaml"}

// New returns the encoder for format. An empty format selects proto.
func New(format string) (Encoder, error) {
	switch format {
	case "", "proto":
		return ProtoEncoder{}, nil
	case "json":
		return JSONEncoder{}, nil
	case "yaml":
		return YAMLEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q (supported: %v)", format, Formats)
	}
}
