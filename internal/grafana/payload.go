package grafana

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Payload is a Grafana legacy alerting webhook notification.
type Payload struct {
	Title       string
	RuleID      RuleID
	RuleName    string
	RuleURL     string
	State       State
	ImageURL    string
	Message     string
	EvalMatches []EvalMatch
}

// EvalMatch is one series that matched the alert rule.
type EvalMatch struct {
	Metric string
	Tags   Tags
	Value  Value
}

// State is the alert rule state reported by Grafana.
type State string

const (
	StateAlerting State = "alerting"
	StateNoData   State = "no_data"
	StateOK       State = "ok"
	StatePaused   State = "paused"
	StatePending  State = "pending"
)

func (s *State) UnmarshalJSON(data []byte) error {
	var tok string
	if err := json.Unmarshal(data, &tok); err != nil {
		return err
	}
	switch st := State(tok); st {
	case StateAlerting, StateNoData, StateOK, StatePaused, StatePending:
		*s = st
		return nil
	default:
		return fmt.Errorf("unknown state %q, expected one of alerting, no_data, ok, paused, pending", tok)
	}
}

// RuleID handles both numeric and string rule identifiers. Numbers keep
// their literal form.
type RuleID string

func (r *RuleID) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case json.Number:
		*r = RuleID(t.String())
	case string:
		*r = RuleID(t)
	default:
		return fmt.Errorf("ruleId: must be a number or a string, got %s", data)
	}
	return nil
}

// Tags is the opaque tag set of a match, kept as compact JSON.
type Tags struct {
	raw string
}

func (t *Tags) UnmarshalJSON(data []byte) error {
	s, err := compact(data)
	if err != nil {
		return err
	}
	t.raw = s
	return nil
}

func (t Tags) String() string { return t.raw }

// ValueKind tells which form a match value arrived in.
type ValueKind int

const (
	NumberValue ValueKind = iota
	TextValue
	OpaqueValue
)

// Value is a match value. Grafana usually sends a number but may send
// anything, so the kind is kept alongside a lossless text form.
type Value struct {
	Kind ValueKind
	text string
}

// NumberOf returns a numeric value with the given literal.
func NumberOf(literal string) Value { return Value{Kind: NumberValue, text: literal} }

// TextOf returns a text value.
func TextOf(s string) Value { return Value{Kind: TextValue, text: s} }

func (v *Value) UnmarshalJSON(data []byte) error {
	d, err := decodeLoose(data)
	if err != nil {
		return err
	}
	switch t := d.(type) {
	case json.Number:
		*v = NumberOf(t.String())
	case string:
		*v = TextOf(t)
	default:
		s, err := compact(data)
		if err != nil {
			return err
		}
		*v = Value{Kind: OpaqueValue, text: s}
	}
	return nil
}

// String renders the value as JSON: numbers keep their literal, text is
// quoted, and anything else is compact JSON. Distinct values never render
// the same.
func (v Value) String() string {
	if v.Kind == TextValue {
		return quote(v.text)
	}
	return v.text
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	var out Payload
	for _, f := range []struct {
		name     string
		dst      any
		nullable bool
	}{
		{"title", &out.Title, false},
		{"ruleId", &out.RuleID, false},
		{"ruleName", &out.RuleName, false},
		{"ruleUrl", &out.RuleURL, false},
		{"state", &out.State, false},
		{"imageUrl", &out.ImageURL, false},
		{"message", &out.Message, false},
		{"evalMatches", &out.EvalMatches, false},
	} {
		if err := obj.field(f.name, f.dst, f.nullable); err != nil {
			return err
		}
	}
	*p = out
	return nil
}

func (m *EvalMatch) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("evalMatches: %w", err)
	}
	var out EvalMatch
	if err := obj.field("metric", &out.Metric, false); err != nil {
		return fmt.Errorf("evalMatches: %w", err)
	}
	if err := obj.field("tags", &out.Tags, true); err != nil {
		return fmt.Errorf("evalMatches: %w", err)
	}
	if err := obj.field("value", &out.Value, true); err != nil {
		return fmt.Errorf("evalMatches: %w", err)
	}
	*m = out
	return nil
}

// object is a decoded JSON object whose members are looked up by exact name.
type object map[string]json.RawMessage

// decodeObject walks the members of a JSON object, rejecting duplicate names.
func decodeObject(data []byte) (object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected an object, got %s", kindOf(tok))
	}
	obj := object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if _, dup := obj[name]; dup {
			return nil, fmt.Errorf("duplicate field %q", name)
		}
		obj[name] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func kindOf(tok json.Token) string {
	switch t := tok.(type) {
	case nil:
		return "null"
	case json.Delim:
		if t == '[' {
			return "an array"
		}
		return t.String()
	case string:
		return "a string"
	case bool:
		return "a boolean"
	default:
		return "a number"
	}
}

func (o object) field(name string, dst any, nullable bool) error {
	raw, ok := o[name]
	if !ok {
		return fmt.Errorf("missing field %q", name)
	}
	if !nullable && bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("field %q: must not be null", name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

func decodeLoose(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func compact(data []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
