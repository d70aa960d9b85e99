package grafana

import "github.com/sznuper/grafana-plugin/internal/plugin"

const (
	Name    = "grafana"
	Author  = "Chris Holcombe <xfactor973@gmail.com>"
	Version = "0.0.1"
)

// Discover describes this adapter to the host: it understands grafana
// alerts, offers no remediations and is fed by webhook.
func Discover() plugin.Discover {
	return plugin.NewDiscover(Name).
		WithAuthor(Author).
		WithVersion(Version).
		WithAlerts([]plugin.Alert{plugin.NewAlert(AlertType)}).
		WithRemediations(nil).
		AsWebhook()
}
