// Package cli implements convertisctl, a maintenance tool that works on the store directly
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"convertis/internal/modkit"
	"convertis/internal/platform/config"
	"convertis/internal/platform/logger"
	"convertis/internal/platform/store"
	"convertis/internal/services/api/convertis/domain"
	convertismod "convertis/internal/services/api/convertis/module"
	"convertis/internal/services/api/convertis/repo"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands
type RootOptions struct {
	Verbose bool
	Driver  string
	DB      string
}

// NewRootCommand creates the root command for convertisctl
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "convertisctl",
		Short: "Inspect and maintain the convertis record store",
		Long: `convertisctl reads the same SERVICE_DB_* environment as the API and
operates on the store directly. Output is indented JSON in the API's record shape.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "warn"
			if opts.Verbose {
				level = "debug"
			}
			// stdout carries JSON only
			logger.Init(logger.Options{Level: level, Format: "console", Writer: cmd.ErrOrStderr(), Component: "convertisctl"})
			if opts.Driver != "" {
				d := strings.ToLower(opts.Driver)
				if d != string(store.DialectSQLite) && d != string(store.DialectPG) {
					return fmt.Errorf("invalid driver %q: must be sqlite or pg", opts.Driver)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log to stderr at debug level")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "store driver (sqlite|pg), overrides SERVICE_DB_DRIVER")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "sqlite file, overrides SERVICE_DB_SQLITE_PATH")

	cmd.AddCommand(newSchemaCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newGetCommand(opts))
	cmd.AddCommand(newDeleteCommand(opts))
	cmd.AddCommand(newUniqueValuesCommand(opts))

	return cmd
}

// Execute runs the root command and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "convertisctl:", errorText(err))
		return 1
	}
	return 0
}

// session is an opened store plus the convertis service bound to it
type session struct {
	st  *store.Store
	svc domain.ServicePort
}

func (o *RootOptions) storeConfig() store.Config {
	cfg := store.ConfigFromEnv("convertisctl")
	if o.Driver != "" {
		cfg = cfg.WithDriver(store.Dialect(strings.ToLower(o.Driver)))
	}
	if o.DB != "" {
		cfg.SQLite.Path = o.DB
	}
	return cfg
}

// open connects the store, ensures the schema and wires the service through the module
func (o *RootOptions) open(ctx context.Context) (*session, error) {
	log := logger.Get()
	st, err := store.Open(ctx, o.storeConfig(), store.WithLogger(*log))
	if err != nil {
		return nil, err
	}
	if err := repo.EnsureSchema(ctx, st.SQL, st.Dialect); err != nil {
		_ = st.Close()
		return nil, err
	}
	mod := convertismod.New(modkit.DepsFrom(*log, config.New(), st))
	return &session{st: st, svc: convertismod.PortsOf(mod).Service}, nil
}

func (s *session) Close() { _ = s.st.Close() }

// withSession opens a session for the duration of fn
func withSession(cmd *cobra.Command, o *RootOptions, fn func(ctx context.Context, s *session) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := o.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := fn(ctx, s)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
