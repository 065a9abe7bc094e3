package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dashcheck/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dashcheck",
		Short: "Verify the model-overview dashboard against dataset fixtures",
		Long: "dashcheck computes what the model-overview page must show for a dataset\n" +
			"descriptor and checks a running dashboard against it in a headless browser.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(rootFlags.logLevel)
			if err != nil {
				return err
			}
			logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(newDatasetsCmd())
	root.AddCommand(newExpectCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newServeCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
