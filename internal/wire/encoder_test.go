package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/sznuper/grafana-plugin/internal/plugin"
)

func sampleDiscover() plugin.Discover {
	return plugin.NewDiscover("grafana").
		WithAuthor("someone").
		WithVersion("0.0.1").
		WithAlerts([]plugin.Alert{plugin.NewAlert("grafana")}).
		AsWebhook()
}

func sampleResult() plugin.Result {
	return plugin.OK(plugin.NewAlert("grafana").WithName("My alert").WithArg("state", "alerting").WithArg("requests", "122"))
}

func TestNew(t *testing.T) {
	for _, f := range []string{"", "proto", "json", "yaml"} {
		enc, err := New(f)
		if err != nil {
			t.Fatalf("New(%q): %v", f, err)
		}
		want := f
		if want == "" {
			want = "proto"
		}
		if enc.Format() != want {
			t.Errorf("New(%q).Format() = %q, want %q", f, enc.Format(), want)
		}
	}
	if _, err := New("xml"); err == nil {
		t.Error("expected error for unsupported encoding")
	}
}

func TestProto_Result(t *testing.T) {
	var buf bytes.Buffer
	if err := (ProtoEncoder{}).EncodeResult(&buf, sampleResult()); err != nil {
		t.Fatalf("EncodeResult: %v", err)
	}
	fields := decodeFields(t, buf.Bytes())

	// OK is the proto3 default, so only the alert is on the wire.
	if len(fields) != 1 || fields[0].num != resultAlerts {
		t.Fatalf("fields = %+v, want single alerts field", fields)
	}
	alert := decodeFields(t, fields[0].bytes)
	got := stringsOf(alert)
	want := []string{"1:grafana", "2:My alert", "3:state=alerting", "3:requests=122"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("alert fields = %v, want %v", got, want)
	}
}

func TestProto_ErrResult(t *testing.T) {
	b := MarshalResult(plugin.Err("Empty Body"))
	fields := decodeFields(t, b)
	if len(fields) != 2 {
		t.Fatalf("fields = %+v, want result and error_msg", fields)
	}
	if fields[0].num != resultType || fields[0].varint != resultErr {
		t.Errorf("result field = %+v, want ERR", fields[0])
	}
	if fields[1].num != resultError || string(fields[1].bytes) != "Empty Body" {
		t.Errorf("error field = %+v", fields[1])
	}
}

func TestProto_Discover(t *testing.T) {
	fields := decodeFields(t, MarshalDiscover(sampleDiscover()))
	var nums []protowire.Number
	for _, f := range fields {
		nums = append(nums, f.num)
	}
	if want := []protowire.Number{discoverName, discoverAuthor, discoverVersion, discoverAlerts, discoverWebhook}; !reflect.DeepEqual(nums, want) {
		t.Fatalf("field numbers = %v, want %v", nums, want)
	}
	if string(fields[0].bytes) != "grafana" {
		t.Errorf("name = %q", fields[0].bytes)
	}
	if got := stringsOf(decodeFields(t, fields[3].bytes)); !reflect.DeepEqual(got, []string{"1:grafana"}) {
		t.Errorf("declared alert = %v", got)
	}
	if fields[4].varint != 1 {
		t.Errorf("webhook = %d, want 1", fields[4].varint)
	}
}

func TestJSON_Result(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONEncoder{}).EncodeResult(&buf, sampleResult()); err != nil {
		t.Fatalf("EncodeResult: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if got["ok"] != true {
		t.Errorf("ok = %v, want true", got["ok"])
	}
	if _, ok := got["error_msg"]; ok {
		t.Error("error_msg present on success")
	}
	alerts := got["alerts"].([]any)
	if alerts[0].(map[string]any)["name"] != "My alert" {
		t.Errorf("alerts = %v", alerts)
	}
}

func TestJSON_DiscoverEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONEncoder{}).EncodeDiscover(&buf, sampleDiscover()); err != nil {
		t.Fatalf("EncodeDiscover: %v", err)
	}
	if !strings.Contains(buf.String(), `"remediations":[]`) {
		t.Errorf("output = %s, want empty remediations list", buf.String())
	}
}

func TestYAML_Result(t *testing.T) {
	var buf bytes.Buffer
	if err := (YAMLEncoder{}).EncodeResult(&buf, plugin.Err("Empty Body")); err != nil {
		t.Fatalf("EncodeResult: %v", err)
	}
	var got struct {
		OK    bool   `yaml:"ok"`
		Error string `yaml:"error_msg"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not yaml: %v", err)
	}
	if got.OK || got.Error != "Empty Body" {
		t.Errorf("decoded = %+v", got)
	}
}

// helpers

type field struct {
	num    protowire.Number
	typ    protowire.Type
	bytes  []byte
	varint uint64
}

func decodeFields(t *testing.T, b []byte) []field {
	t.Helper()
	var out []field
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			t.Fatalf("bad tag: %v", protowire.ParseError(n))
		}
		b = b[n:]
		f := field{num: num, typ: typ}
		switch typ {
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				t.Fatalf("bad bytes field %d: %v", num, protowire.ParseError(n))
			}
			f.bytes = v
			b = b[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				t.Fatalf("bad varint field %d: %v", num, protowire.ParseError(n))
			}
			f.varint = v
			b = b[n:]
		default:
			t.Fatalf("unexpected wire type %d for field %d", typ, num)
		}
		out = append(out, f)
	}
	return out
}

func stringsOf(fields []field) []string {
	var out []string
	for _, f := range fields {
		out = append(out, fmt.Sprintf("%d:%s", f.num, f.bytes))
	}
	return out
}
