package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/akyairhashvil/wcl/internal/store"
	"github.com/spf13/cobra"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the saved settings",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newConfigShowCmd(root), newConfigSaveCmd(root), newConfigForgetCmd())
	return cmd
}

func newConfigShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings and the stored state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", config.Dir())
			if err := writeSettings(out, s); err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			stored, err := st.Settings(ctx)
			if err != nil {
				return err
			}
			if len(stored) == 0 {
				return nil
			}
			fmt.Fprintf(out, "\n# %s\n", st.Path())
			keys := make([]string, 0, len(stored))
			for k := range stored {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, k := range keys {
				fmt.Fprintf(tw, "%s\t%s\n", k, stored[k])
			}
			return tw.Flush()
		},
	}
}

func newConfigSaveCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write the given flags to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, root)
			if err != nil {
				return err
			}
			if err := config.Write(s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s/config.yml\n", config.Dir())
			return nil
		},
	}
	addPickerFlags(cmd.Flags(), root)
	return cmd
}

func newConfigForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Drop the remembered start date used by --resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			out := cmd.OutOrStdout()
			err = st.DeleteSetting(ctx, settingLastStart)
			if errors.Is(err, store.ErrNotFound) {
				fmt.Fprintln(out, "Nothing to forget.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Forgot the last start date.")
			return nil
		},
	}
}

func writeSettings(w io.Writer, s *config.Settings) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := [][2]any{
		{"locale", s.Locale},
		{"theme", s.Theme},
		{"range", s.Range},
		{"format", s.Format},
		{"width", s.Width},
		{"placeholder", s.Placeholder},
		{"start_time_title", s.StartTimeTitle},
		{"end_time_title", s.EndTimeTitle},
		{"disable_past", s.DisablePast},
		{"up", s.Up},
		{"buttons.today", s.Buttons.Today},
		{"buttons.reset", s.Buttons.Reset},
		{"buttons.done", s.Buttons.Done},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", r[0], r[1])
	}
	return tw.Flush()
}
