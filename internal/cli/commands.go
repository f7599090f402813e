package cli

import (
	"context"
	"fmt"
	"strconv"

	perr "convertis/internal/platform/errors"
	"convertis/internal/services/api/convertis/domain"

	"github.com/spf13/cobra"
)

func newSchemaCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the personne_convertie table and indexes if absent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(_ context.Context, s *session) (any, error) {
				return map[string]string{"message": "schema ok", "driver": string(s.st.Dialect)}, nil
			})
		},
	}
}

func newListCommand(opts *RootOptions) *cobra.Command {
	var f domain.Filter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records in id order, optionally by commune or referrer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.Commune != "" && f.Inviteur != "" {
				return fmt.Errorf("--commune and --inviteur are mutually exclusive")
			}
			return withSession(cmd, opts, func(ctx context.Context, s *session) (any, error) {
				return s.svc.List(ctx, f)
			})
		},
	}
	cmd.Flags().StringVar(&f.Commune, "commune", "", "exact commune to match")
	cmd.Flags().StringVar(&f.Inviteur, "inviteur", "", "exact referrer name to match")
	return cmd
}

func newGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, opts, func(ctx context.Context, s *session) (any, error) {
				return s.svc.Get(ctx, id)
			})
		},
	}
}

func newDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, opts, func(ctx context.Context, s *session) (any, error) {
				return s.svc.Delete(ctx, id)
			})
		},
	}
}

func newUniqueValuesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unique-values",
		Short: "Distinct communes, fokontanys, quartiers and referrers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(ctx context.Context, s *session) (any, error) {
				return s.svc.UniqueValues(ctx)
			})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, perr.InvalidArgf("invalid id %q", s)
	}
	return id, nil
}

// errorText prefers the client-facing message of classified errors
func errorText(err error) string {
	if e, ok := perr.As(err); ok {
		if perr.Public(e.Code()) {
			return e.Message()
		}
		if root := perr.Root(err); root != nil && root != err {
			return e.Message() + ": " + root.Error()
		}
	}
	return err.Error()
}
