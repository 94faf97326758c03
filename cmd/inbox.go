package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/delivery"
)

func newInboxCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Read contact messages stored by the inbox delivery backend",
	}
	cmd.PersistentFlags().StringVar(&path, "db", config.Getenv("INBOX_DB", config.DefaultInboxPath), "Inbox database path")

	cmd.AddCommand(newInboxListCmd(&path))
	cmd.AddCommand(newInboxPruneCmd(&path))
	return cmd
}

func newInboxListCmd(path *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List received messages, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			inbox, err := delivery.OpenInbox(cmd.Context(), *path)
			if err != nil {
				return err
			}
			defer inbox.Close()

			entries, err := inbox.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tRECEIVED\tFROM\tEMAIL\tMESSAGE")
			for _, e := range entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.ReceivedAt.Local().Format(time.DateTime), e.FromName, e.FromEmail, preview(e.Message))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum messages to show (0 for all)")
	return cmd
}

func newInboxPruneCmd(path *string) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete messages older than the retention period",
		RunE: func(cmd *cobra.Command, args []string) error {
			inbox, err := delivery.OpenInbox(cmd.Context(), *path)
			if err != nil {
				return err
			}
			defer inbox.Close()

			n, err := inbox.Prune(cmd.Context(), time.Now().Add(-olderThan))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d messages\n", n)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 365*24*time.Hour, "Retention period")
	return cmd
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > 60 {
		return string(r[:60]) + "..."
	}
	return string(r)
}
