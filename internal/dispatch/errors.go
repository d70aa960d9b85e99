package dispatch

import (
	"errors"
	"fmt"
)

// ErrNoPlugin is returned when the invocation names no plugin.
var ErrNoPlugin = errors.New("Could not find a requested plugin")

// UnknownPluginError is returned when the requested plugin is not registered.
type UnknownPluginError struct {
	Name      string
	Available []string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("%s is not a registered plugin, available plugins are: %q", e.Name, e.Available)
}

// IsRejection reports whether err stopped the invocation before any plugin ran.
func IsRejection(err error) bool {
	var unknown *UnknownPluginError
	return errors.Is(err, ErrNoPlugin) || errors.As(err, &unknown)
}
