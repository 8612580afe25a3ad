// Package cli implements the mutk command-line front end: a thin wrapper
// around relgraph.Construct. Pedigree text-file parsing, environment
// variable handling, and version reporting are explicitly out of scope for
// the core (spec.md §1) and stay minimal here too — this package exists so
// the compiler has one runnable entry point, not to be a full CLI.
//
// Commands are built with cobra; logging uses charmbracelet/log, attached to
// each command's context the way stacktower's CLI does.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}

	return charmlog.Default()
}

// Execute builds the root command tree and runs it against os.Args.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "mutk",
		Short:        "mutk compiles a pedigree and somatic sample trees into a relationship graph",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{ReportTimestamp: true, Level: level})
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(context.Background())
}
