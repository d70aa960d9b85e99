package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sznuper/grafana-plugin/internal/config"
	"github.com/sznuper/grafana-plugin/internal/dispatch"
	"github.com/sznuper/grafana-plugin/internal/grafana"
	"github.com/sznuper/grafana-plugin/internal/wire"
)

var rootCmd = &cobra.Command{
	Use:   "grafana [--plugin=<name> --key=value ...]",
	Short: "Grafana alert adapter for the remediation host",
	Long: `Normalizes Grafana webhook alerts for the remediation host.

Run without arguments to print the adapter's discovery record. Run with
--plugin=grafana --body=<webhook json> to normalize one alert.

Settings come from $GRAFANA_PLUGIN_CONFIG, ~/.config/grafana-plugin/config.yaml
or /etc/grafana-plugin/config.yaml, and GRAFANA_PLUGIN_<OPTION> variables.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

const argTerminator = "--"

func runRoot(cmd *cobra.Command, argv []string) error {
	if len(argv) > 0 && argv[0] == argTerminator {
		argv = argv[1:]
	}
	cfg, err := config.Resolve(os.Getenv(config.EnvConfig))
	if err != nil {
		return err
	}
	applyOptionEnv(cfg, os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg.Options, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	enc, err := wire.New(cfg.Options.Encoding)
	if err != nil {
		return err
	}

	d := dispatch.New(grafana.Capabilities(logger), grafana.Discover(), enc, cmd.OutOrStdout(), logger)
	return d.Run(argv)
}
