package plugin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Discover is the self-description an adapter reports when the host runs it
// without arguments.
type Discover struct {
	Name         string        `json:"name" yaml:"name" validate:"required"`
	Author       string        `json:"author" yaml:"author"`
	Version      string        `json:"version" yaml:"version" validate:"required,semver"`
	Alerts       []Alert       `json:"alerts" yaml:"alerts" validate:"dive"`
	Remediations []Remediation `json:"remediations" yaml:"remediations"`
	Webhook      bool          `json:"webhook" yaml:"webhook"`
}

// NewDiscover starts a discovery record for the named adapter.
func NewDiscover(name string) Discover {
	return Discover{
		Name:         name,
		Alerts:       []Alert{},
		Remediations: []Remediation{},
	}
}

func (d Discover) WithAuthor(author string) Discover {
	d.Author = author
	return d
}

func (d Discover) WithVersion(version string) Discover {
	d.Version = version
	return d
}

func (d Discover) WithAlerts(alerts []Alert) Discover {
	d.Alerts = append([]Alert{}, alerts...)
	return d
}

func (d Discover) WithRemediations(remediations []Remediation) Discover {
	d.Remediations = append([]Remediation{}, remediations...)
	return d
}

// AsWebhook marks the adapter as fed by webhook payloads rather than polling.
func (d Discover) AsWebhook() Discover {
	d.Webhook = true
	return d
}

// Validate checks that the record is complete enough for the host to register.
func (d Discover) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			switch e.Tag() {
			case "required":
				msgs = append(msgs, fmt.Sprintf("%s is required", e.Namespace()))
			case "semver":
				msgs = append(msgs, fmt.Sprintf("%s must be a semantic version, got %q", e.Namespace(), e.Value()))
			default:
				msgs = append(msgs, fmt.Sprintf("%s failed validation: %s", e.Namespace(), e.Tag()))
			}
		}
		return fmt.Errorf("invalid discovery record: %s", strings.Join(msgs, "; "))
	}
	return nil
}
