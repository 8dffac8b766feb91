// Package commands implements the kiedysmieci CLI: resolving an address
// against the upstream catalogs, downloading the rendered schedule image and
// turning recognized text back into a structured schedule.
package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/szyszomat/KiedySmieciKRK/internal/locale"
	"github.com/szyszomat/KiedySmieciKRK/internal/upstream"
)

// defaultToken is the public form token the schedule widget ships with.
const defaultToken = "OkkxhC6b9etJBAq7WTHJ0LhIglO18sip"

type rootOptions struct {
	baseURL  string
	token    string
	dataDir  string
	packPath string
	envFile  string
	verbose  bool
}

// NewRoot builds the root command with all subcommands attached.
func NewRoot() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "kiedysmieci",
		Short:         "Kraków waste collection schedules from kiedywywoz.pl",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Optional .env for the upstream token; absence is fine.
			_ = godotenv.Load(opts.envFile)
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
			if opts.token == "" {
				opts.token = os.Getenv("KIEDYWYWOZ_TOKEN")
			}
			if opts.token == "" {
				opts.token = defaultToken
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", upstream.DefaultBaseURL, "upstream API endpoint")
	root.PersistentFlags().StringVar(&opts.token, "token", "", "upstream API token (default from KIEDYWYWOZ_TOKEN)")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", ".", "directory for saved images and records")
	root.PersistentFlags().StringVar(&opts.packPath, "locale-pack", "", "YAML locale pack (default: built-in Polish)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "environment file with KIEDYWYWOZ_TOKEN")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFetchCmd(opts))
	root.AddCommand(newParseCmd(opts))

	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRoot().Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// loadPack returns the configured locale pack, defaulting to Polish.
func loadPack(opts *rootOptions) (*locale.Pack, error) {
	if opts.packPath == "" {
		return locale.Polish(), nil
	}
	return locale.Load(opts.packPath)
}
