package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/mdfmt"
)

const stdinSource = "-"

var (
	verbosity  int
	inPlace    bool
	strict     bool
	configPath string

	rootCmd = &cobra.Command{
		Use:   "mdfmt [source] [destination]",
		Short: "Align Markdown pipe tables",
		Long: `mdfmt rewrites every well-formed pipe table in a Markdown document into
canonical aligned form and leaves everything else untouched, fenced code
blocks included. Reads standard input when source is "-" or absent.`,
		Args: cobra.MaximumNArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "Rewrite the source file in place")
	rootCmd.Flags().BoolVarP(&strict, "strict", "s", false, "Warn on stderr when a table is judged broken")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default .mdfmt.yaml if present)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
}

// validateArgs enforces the flag constraints before any I/O happens:
// in-place excludes an explicit destination and a stdin source.
func validateArgs(source, destination string, inPlace bool) error {
	if inPlace && destination != "" {
		return errors.New("cannot combine --in-place with a destination")
	}
	if inPlace && source == stdinSource {
		return errors.New("cannot combine --in-place with standard input")
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Strict && !cmd.Flags().Changed("strict") {
		strict = true
	}

	source := stdinSource
	if len(args) > 0 {
		source = args[0]
	}
	destination := ""
	if len(args) > 1 {
		destination = args[1]
	}
	if err := validateArgs(source, destination, inPlace); err != nil {
		return err
	}

	var doc []byte
	if source == stdinSource {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			log.Info().Msg("reading document from standard input")
		}
		doc, err = io.ReadAll(os.Stdin)
	} else {
		doc, err = os.ReadFile(source)
	}
	if err != nil {
		return err
	}

	formatted, notices, err := mdfmt.Format(string(doc), strict)
	if err != nil {
		return err
	}
	for _, n := range notices {
		fmt.Fprintln(os.Stderr, n)
	}
	log.Debug().
		Int("notices", len(notices)).
		Int("bytes", len(formatted)).
		Msg("formatted document")

	switch {
	case inPlace:
		return os.WriteFile(source, []byte(formatted), 0o644)
	case destination != "":
		return os.WriteFile(destination, []byte(formatted), 0o644)
	default:
		_, err := io.WriteString(os.Stdout, formatted)
		return err
	}
}
