package plugin

import (
	"sort"

	"github.com/sznuper/grafana-plugin/internal/args"
)

// Handler is a capability the host can invoke by name.
type Handler interface {
	Invoke(a args.Args) Result
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(a args.Args) Result

func (f HandlerFunc) Invoke(a args.Args) Result { return f(a) }

// Registry maps capability names to handlers. It is built once and never
// modified.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns a registry holding a copy of handlers.
func NewRegistry(handlers map[string]Handler) Registry {
	m := make(map[string]Handler, len(handlers))
	for name, h := range handlers {
		m[name] = h
	}
	return Registry{handlers: m}
}

// Lookup returns the handler registered under name.
func (r Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered capability names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
