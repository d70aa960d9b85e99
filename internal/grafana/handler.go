package grafana

import (
	"log/slog"

	"github.com/sznuper/grafana-plugin/internal/args"
	"github.com/sznuper/grafana-plugin/internal/plugin"
)

// Handler is the "grafana" capability: it normalizes the webhook body
// passed in the body argument.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler that logs to logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Invoke(a args.Args) plugin.Result {
	body, ok := a.Get("body")
	if !ok {
		h.logger.Warn("body argument missing")
		return plugin.Err("Missing required argument: Body")
	}
	if body == "" {
		h.logger.Warn("body argument empty")
		return plugin.Err("Empty Body")
	}

	h.logger.Debug("normalizing body", "bytes", len(body))
	alert, err := Normalize(body)
	if err != nil {
		h.logger.Warn("body does not match grafana webhook schema", "error", err)
		return plugin.Err("Failed to parse json: %v", err)
	}

	h.logger.Info("alert normalized", "name", alert.Name, "args", len(alert.Args))
	return plugin.OK(alert)
}

// Capabilities returns the capabilities this adapter can be invoked with.
func Capabilities(logger *slog.Logger) plugin.Registry {
	return plugin.NewRegistry(map[string]plugin.Handler{
		"grafana": NewHandler(logger.With("plugin", "grafana")),
	})
}
