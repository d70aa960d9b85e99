package plugin

import "fmt"

// Alert is the source-agnostic alert record handed to the host.
type Alert struct {
	Type string   `json:"alert_type" yaml:"alert_type"`
	Name string   `json:"name" yaml:"name"`
	Args []string `json:"args" yaml:"args"`
}

// NewAlert returns an alert of the given type with no name or args.
func NewAlert(alertType string) Alert {
	return Alert{Type: alertType}
}

// WithName returns a copy of a with its name set.
func (a Alert) WithName(name string) Alert {
	a.Name = name
	return a
}

// WithArg returns a copy of a with key=value appended to its args.
func (a Alert) WithArg(key, value string) Alert {
	args := make([]string, len(a.Args), len(a.Args)+1)
	copy(args, a.Args)
	a.Args = append(args, key+"="+value)
	return a
}

// Remediation is a remediation capability declared in discovery.
type Remediation struct {
	Plugin string   `json:"plugin" yaml:"plugin"`
	Target string   `json:"target,omitempty" yaml:"target,omitempty"`
	Args   []string `json:"args" yaml:"args"`
}

// Result is the outcome of invoking a capability. A failed result is data,
// not a process error: the host branches on OK.
type Result struct {
	OK     bool    `json:"ok" yaml:"ok"`
	Alerts []Alert `json:"alerts" yaml:"alerts"`
	Error  string  `json:"error_msg,omitempty" yaml:"error_msg,omitempty"`
}

// OK returns a successful result carrying alerts.
func OK(alerts ...Alert) Result {
	if alerts == nil {
		alerts = []Alert{}
	}
	return Result{OK: true, Alerts: alerts}
}

// Err returns a failed result with a formatted message.
func Err(format string, a ...any) Result {
	return Result{Alerts: []Alert{}, Error: fmt.Sprintf(format, a...)}
}
