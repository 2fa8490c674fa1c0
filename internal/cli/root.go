package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoshelev/lockvault/internal/config"
	"github.com/mkoshelev/lockvault/internal/passgen"
)

func newApp() (*App, error) {
	return NewApp(config.LoadConfig())
}

// NewRootCmd assembles the lockvault command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lockvault",
		Short:        "LockVault is a personal credential vault",
		SilenceUsage: true,
	}

	// The shell and seed commands read the store flags themselves, so
	// cobra must not consume os.Args first.
	replCmd := &cobra.Command{
		Use:                "repl",
		Short:              "Start the interactive vault shell",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()
			app.Run(cmd.Context())
			return nil
		},
	}

	seedCmd := &cobra.Command{
		Use:                "seed",
		Short:              "Provision the demo owner with sample records",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Seed(cmd.Context())
		},
	}

	var (
		genLength  int
		noUpper    bool
		noLower    bool
		noDigits   bool
		noSymbols  bool
	)
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := &App{out: os.Stdout}
			app.printGenerated(passgen.Config{
				Length:  genLength,
				Upper:   !noUpper,
				Lower:   !noLower,
				Digits:  !noDigits,
				Symbols: !noSymbols,
			})
			return nil
		},
	}
	generateCmd.Flags().IntVar(&genLength, "length", passgen.DefaultLength, "generated password length")
	generateCmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	generateCmd.Flags().BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	generateCmd.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	generateCmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")

	strengthCmd := &cobra.Command{
		Use:   "strength <password>",
		Short: "Evaluate password strength",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := &App{out: os.Stdout}
			app.printStrength(strings.Join(args, " "))
			return nil
		},
	}

	rootCmd.AddCommand(replCmd, seedCmd, generateCmd, strengthCmd)
	return rootCmd
}

// Execute runs the command tree; with no subcommand it starts the shell.
func Execute() {
	args := os.Args[1:]
	rootCmd := NewRootCmd()

	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		rootCmd.SetArgs(append([]string{"repl"}, args...))
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
