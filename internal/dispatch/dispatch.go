package dispatch

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/sznuper/grafana-plugin/internal/args"
	"github.com/sznuper/grafana-plugin/internal/plugin"
	"github.com/sznuper/grafana-plugin/internal/wire"
)

// PluginKey is the argument that selects the plugin to invoke.
const PluginKey = "plugin"

// Dispatcher routes one invocation: discovery when there are no arguments,
// otherwise the plugin named by --plugin.
type Dispatcher struct {
	registry plugin.Registry
	discover plugin.Discover
	enc      wire.Encoder
	out      io.Writer
	logger   *slog.Logger
}

// New creates a Dispatcher writing records to out with enc.
func New(registry plugin.Registry, discover plugin.Discover, enc wire.Encoder, out io.Writer, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		discover: discover,
		enc:      enc,
		out:      out,
		logger:   logger,
	}
}

// Run handles the process arguments (without the program name).
// A plugin result is written even when it reports failure; only a missing or
// unknown plugin and write errors are returned.
func (d *Dispatcher) Run(argv []string) error {
	if len(argv) == 0 {
		return d.reportDiscover()
	}

	a := args.Parse(argv)
	d.logger.Debug("arguments parsed", "keys", keys(a))

	name, ok := a.Take(PluginKey)
	if !ok {
		d.logger.Error("no plugin requested")
		return ErrNoPlugin
	}

	h, ok := d.registry.Lookup(name)
	if !ok {
		d.logger.Error("plugin not registered", "plugin", name)
		return &UnknownPluginError{Name: name, Available: d.registry.Names()}
	}

	log := d.logger.With("plugin", name)
	log.Info("invoking plugin")
	res := h.Invoke(a)
	if res.OK {
		log.Info("plugin succeeded", "alerts", len(res.Alerts))
	} else {
		log.Warn("plugin failed", "error", res.Error)
	}

	if err := d.enc.EncodeResult(d.out, res); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	log.Debug("result written", "encoding", d.enc.Format())
	return nil
}

func (d *Dispatcher) reportDiscover() error {
	d.logger.Info("reporting discovery", "name", d.discover.Name, "version", d.discover.Version)
	if err := d.discover.Validate(); err != nil {
		return err
	}
	if err := d.enc.EncodeDiscover(d.out, d.discover); err != nil {
		return fmt.Errorf("writing discovery: %w", err)
	}
	return nil
}

func keys(a args.Args) []string {
	out := make([]string, 0, len(a))
	for k := range a {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
