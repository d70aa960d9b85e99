package wire

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/sznuper/grafana-plugin/internal/plugin"
)

// Field numbers from plugin.proto.
const (
	alertType = 1
	alertName = 2
	alertArgs = 3

	remediationPlugin = 1
	remediationTarget = 2
	remediationArgs   = 3

	discoverName    = 1
	discoverAuthor  = 2
	discoverVersion = 3
	discoverAlerts  = 4
	discoverActions = 5
	discoverWebhook = 6

	resultType   = 1
	resultError  = 2
	resultAlerts = 3
)

const resultErr = 1

// ProtoEncoder writes proto3 binary messages, the format the host reads.
type ProtoEncoder struct{}

func (ProtoEncoder) Format() string { return "proto" }

func (ProtoEncoder) EncodeDiscover(w io.Writer, d plugin.Discover) error {
	return write(w, MarshalDiscover(d))
}

func (ProtoEncoder) EncodeResult(w io.Writer, r plugin.Result) error {
	return write(w, MarshalResult(r))
}

// MarshalDiscover returns the binary Discover message for d.
func MarshalDiscover(d plugin.Discover) []byte {
	var b []byte
	b = appendString(b, discoverName, d.Name)
	b = appendString(b, discoverAuthor, d.Author)
	b = appendString(b, discoverVersion, d.Version)
	for _, a := range d.Alerts {
		b = appendMessage(b, discoverAlerts, marshalAlert(a))
	}
	for _, r := range d.Remediations {
		b = appendMessage(b, discoverActions, marshalRemediation(r))
	}
	if d.Webhook {
		b = protowire.AppendTag(b, discoverWebhook, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

// MarshalResult returns the binary RemediationResult message for r.
func MarshalResult(r plugin.Result) []byte {
	var b []byte
	if !r.OK {
		b = protowire.AppendTag(b, resultType, protowire.VarintType)
		b = protowire.AppendVarint(b, resultErr)
	}
	b = appendString(b, resultError, r.Error)
	for _, a := range r.Alerts {
		b = appendMessage(b, resultAlerts, marshalAlert(a))
	}
	return b
}

func marshalAlert(a plugin.Alert) []byte {
	var b []byte
	b = appendString(b, alertType, a.Type)
	b = appendString(b, alertName, a.Name)
	for _, arg := range a.Args {
		b = appendRepeated(b, alertArgs, arg)
	}
	return b
}

func marshalRemediation(r plugin.Remediation) []byte {
	var b []byte
	b = appendString(b, remediationPlugin, r.Plugin)
	b = appendString(b, remediationTarget, r.Target)
	for _, arg := range r.Args {
		b = appendRepeated(b, remediationArgs, arg)
	}
	return b
}

// appendString writes a singular string field; proto3 omits empty values.
func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	return appendRepeated(b, num, s)
}

func appendRepeated(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func write(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing proto message: %w", err)
	}
	return nil
}
