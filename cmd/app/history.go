package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/akyairhashvil/wcl/internal/models"
	"github.com/akyairhashvil/wcl/internal/store"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	var clear bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently committed dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if clear {
				if err := st.ClearPicks(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
				return nil
			}

			picks, err := st.RecentPicks(ctx, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(picks) == 0 {
				fmt.Fprintln(out, "No picks recorded yet.")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RECORDED\tNAME\tDATE\tID")
			for _, p := range picks {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.RecordedAt.Local().Format("2006-01-02 15:04"), p.Name, pickDate(p), p.ID)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", config.DefaultHistoryLimit, "Number of entries to show")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete the whole history")
	cmd.AddCommand(newHistoryShowCmd())
	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			p, err := st.Pick(ctx, args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no history entry %q", args[0])
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:       %s\n", p.ID)
			fmt.Fprintf(out, "name:     %s\n", p.Name)
			fmt.Fprintf(out, "date:     %s\n", pickDate(p))
			fmt.Fprintf(out, "recorded: %s\n", p.RecordedAt.Format(time.RFC3339))
			return nil
		},
	}
}

func pickDate(p models.Pick) string {
	if !p.HasDate() {
		return "-"
	}
	return p.Date.Format(time.RFC3339)
}
