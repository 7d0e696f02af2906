package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/LdDl/tracklets/trackio"
)

func newDBCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage stored track sessions",
	}
	cmd.AddCommand(newDBImportCommand(ctx))
	cmd.AddCommand(newDBExportCommand(ctx))
	cmd.AddCommand(newDBListCommand(ctx))
	cmd.AddCommand(newDBDeleteCommand(ctx))
	return cmd
}

func newDBImportCommand(ctx *commandContext) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "import IN",
		Short: "Store tracks from file as a new session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trks, err := trackio.ReadFile(args[0])
			if err != nil {
				return err
			}
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			if name == "" {
				name = args[0]
			}
			id, err := st.SaveSession(cmd.Context(), name, trks)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Session name (defaults to file name)")
	return cmd
}

func newDBExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export ID OUT",
		Short: "Write tracks of a session to file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("session id: %w", err)
			}
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			trks, err := st.LoadSession(cmd.Context(), id)
			if err != nil {
				return err
			}
			return trackio.WriteFile(args[1], trks)
		},
	}
}

func newDBListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			sessions, err := st.ListSessions(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([]table.Row, 0, len(sessions))
			for _, session := range sessions {
				rows = append(rows, table.Row{
					session.ID.String(),
					session.Name,
					session.CreatedAt.Format(time.RFC3339),
					session.TrackCount,
				})
			}
			columns := []tableColumn{
				{Title: "ID", Align: text.AlignLeft},
				{Title: "Name", Align: text.AlignLeft},
				{Title: "Created", Align: text.AlignLeft},
				{Title: "Tracks", Align: text.AlignRight},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(columns, rows, nil))
			return nil
		},
	}
}

func newDBDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("session id: %w", err)
			}
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return st.DeleteSession(cmd.Context(), id)
		},
	}
}
