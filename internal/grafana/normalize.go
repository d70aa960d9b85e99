package grafana

import (
	"encoding/json"
	"fmt"

	"github.com/sznuper/grafana-plugin/internal/plugin"
)

// AlertType is the alert source identifier stamped on every alert.
const AlertType = "grafana"

// ParseError reports a body that does not match the Grafana webhook schema.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// Normalize decodes a Grafana webhook body into an alert. The alert's args
// are, in order: raw=<payload dump>, state=<state>, then one metric=value
// per eval match in payload order.
func Normalize(body string) (plugin.Alert, error) {
	var p Payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return plugin.Alert{}, &ParseError{Err: err}
	}

	alert := plugin.NewAlert(AlertType).
		WithName(p.Title).
		WithArg("raw", fmt.Sprintf("%+v", p)).
		WithArg("state", string(p.State))
	for _, m := range p.EvalMatches {
		alert = alert.WithArg(m.Metric, m.Value.String())
	}
	return alert, nil
}
