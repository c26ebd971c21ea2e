package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-uefi-guid/pkg/app"
	"github.com/deploymenttheory/go-uefi-guid/pkg/app/generate"
)

// NewRootCmd builds the command tree with its own flag set
func NewRootCmd() *cobra.Command {
	var guidText string

	rootCmd := &cobra.Command{
		Use:   "uefi-guid",
		Short: "Generate GUIDs for UEFI development",
		Long: `uefi-guid prints a GUID in the forms used across a UEFI tree: the
canonical text for DSC, DEC and INF files, the DEC struct initializer and a
header #define with its extern declaration.

Without --guid a new random GUID is generated.

Examples:
  # Generate a new GUID
  uefi-guid

  # Format an existing GUID, lowercase
  uefi-guid -g 01234567-89ab-cdef-0123-456789abcdef -l

  # Only the canonical text
  uefi-guid -s

  # Machine readable output
  uefi-guid -g 01234567-89ab-cdef-0123-456789abcdef -o json`,
		Version: "0.1.0-dev",

		// Errors and usage are reported together by execute
		SilenceErrors: true,
		SilenceUsage:  true,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, guidText)
		},
	}

	rootCmd.Flags().StringVarP(&guidText, "guid", "g", "", "generate guid from <guid> (8-4-4-4-12 hex form)")
	rootCmd.Flags().BoolP("lowercase", "l", false, "output lowercase result")
	rootCmd.Flags().BoolP("standard", "s", false, "output guid standard text result only")

	// Global output control flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringP("output", "o", app.OutputText, "output format (text, json, yaml)")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := execute(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs root and, on failure, prints the error followed by the usage
// text to stderr
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		root.PrintErrln("Error:", err.Error())
		root.PrintErrln(root.UsageString())
	}
	return err
}

func runGenerate(cmd *cobra.Command, guidText string) error {
	cfg, err := LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	// Create application context
	ctx := app.NewContext()
	ctx.OutputFormat = cfg.Output
	ctx.Verbose = cfg.Verbose
	ctx.Quiet = cfg.Quiet
	ctx.Out = cmd.OutOrStdout()
	ctx.Logger.SetOutput(cmd.ErrOrStderr())
	ctx.ApplyVerbosity()

	if !app.ValidOutputFormat(ctx.OutputFormat) {
		return app.NewError(app.ErrCodeUnsupportedOutput, fmt.Sprintf("unsupported output format: %s", ctx.OutputFormat), nil)
	}

	request := &generate.Request{
		Lowercase:    cfg.Lowercase,
		StandardOnly: cfg.Standard,
	}
	if cmd.Flags().Changed("guid") {
		request.GUID = &guidText
	}

	ctx.WithField("output", ctx.OutputFormat).Debug("Selected output format")

	response, err := generate.Handle(ctx, request)
	if err != nil {
		return err
	}

	return generate.FormatOutput(ctx.Out, response, ctx.OutputFormat)
}
