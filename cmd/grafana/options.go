package main

import (
	"reflect"
	"strings"

	"github.com/sznuper/grafana-plugin/internal/config"
)

const optionEnvPrefix = "GRAFANA_PLUGIN_"

// optionEnvName derives the override variable for an option from its yaml
// struct tag (log_level → GRAFANA_PLUGIN_LOG_LEVEL).
func optionEnvName(yamlTag string) string {
	return optionEnvPrefix + strings.ToUpper(yamlTag)
}

// applyOptionEnv overlays environment values onto the config. Only variables
// that are set are applied; an empty value clears the option.
func applyOptionEnv(cfg *config.Config, lookup func(string) (string, bool)) {
	t := reflect.TypeOf(cfg.Options)
	v := reflect.ValueOf(&cfg.Options).Elem()
	for i := 0; i < t.NumField(); i++ {
		yamlTag, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if val, ok := lookup(optionEnvName(yamlTag)); ok {
			v.Field(i).SetString(val)
		}
	}
}
