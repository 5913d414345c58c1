package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/b64url/b64url/pkg/app"
	"github.com/b64url/b64url/pkg/cmd/completion"
	"github.com/b64url/b64url/pkg/pipeline"
	"github.com/b64url/b64url/pkg/source"
)

// NewRootCommand builds the full command tree. The transformation runs
// on the root command itself; subcommands only cover auxiliary surface
// like shell completion.
func NewRootCommand(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:   "b64url [FILE]",
		Short: "Base64url encode or decode FILE, or standard input, to standard output",
		Long:  "Base64url encode or decode FILE, or standard input, to standard output. Uses the URL-safe alphabet (- and _ instead of + and /) without padding. With no FILE, or when FILE is -, read standard input.",
		Example: `  echo -n hello | b64url
  b64url data.bin
  echo aGVsbG8 | b64url -d
  b64url -d encoded.txt`,
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var src source.Source
			if len(args) == 1 {
				src = source.Source(args[0])
			}

			mode := pipeline.ModeEncode
			if a.DecodeFlag {
				mode = pipeline.ModeDecode
			}

			return pipeline.Run(mode, src, a.InReader, a.OutWriter)
		},
	}

	root.Flags().BoolVarP(&a.DecodeFlag, "decode", "d", false, "Decode data")

	root.AddCommand(
		completion.NewCommand(root, a),
	)

	return root
}

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New()
	root := NewRootCommand(a, version, commit)

	return root.ExecuteContext(ctx)
}
