package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/wcl/internal/calendar"
	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/akyairhashvil/wcl/internal/picker"
	"github.com/akyairhashvil/wcl/internal/store"
	"github.com/akyairhashvil/wcl/internal/tui"
	"github.com/akyairhashvil/wcl/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// settingLastStart remembers the last committed start date for --resume.
const settingLastStart = "last_start_date"

// isTerminal is replaced in tests.
var isTerminal = func(fd int) bool { return term.IsTerminal(fd) }

type rootOptions struct {
	rangeMode   bool
	locale      string
	date        string
	format      string
	theme       string
	width       int
	disablePast bool
	up          bool
	resume      bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Pick a date or a date range in the terminal",
		Long:          `wcl opens a calendar picker in the terminal and prints the committed date, or the start and end of a range.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, opts)
		},
	}
	addPickerFlags(cmd.Flags(), opts)
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "Preselected start date (any common format)")
	cmd.Flags().BoolVar(&opts.resume, "resume", false, "Start from the last committed date")
	cmd.PersistentFlags().StringVarP(&opts.locale, "locale", "l", "",
		fmt.Sprintf("Locale tag, e.g. en-US or de %v", calendar.SupportedLocales()))

	cmd.AddCommand(newCalCmd(opts), newHistoryCmd(), newConfigCmd(opts), newVersionCmd())
	return cmd
}

// addPickerFlags declares the flags that map onto config.Settings.
func addPickerFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.BoolVarP(&opts.rangeMode, "range", "r", false, "Select a start and an end date")
	flags.StringVarP(&opts.format, "format", "f", "", "Display format, e.g. DD/MM/YYYY")
	flags.StringVar(&opts.theme, "theme", "", fmt.Sprintf("Color theme %v", picker.ThemeNames()))
	flags.IntVarP(&opts.width, "width", "w", 0, "Width of the date input")
	flags.BoolVar(&opts.disablePast, "disable-past", false, "Reject days before today in single mode")
	flags.BoolVar(&opts.up, "up", false, "Open the calendar above the input")
}

// loadSettings merges the config file, the environment and changed flags.
func loadSettings(cmd *cobra.Command, opts *rootOptions) (*config.Settings, error) {
	s, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("locale") {
		s.Locale = opts.locale
	}
	if flags.Changed("range") {
		s.Range = opts.rangeMode
	}
	if flags.Changed("format") {
		s.Format = opts.format
	}
	if flags.Changed("theme") {
		s.Theme = opts.theme
	}
	if flags.Changed("width") {
		s.Width = opts.width
	}
	if flags.Changed("disable-past") {
		s.DisablePast = opts.disablePast
	}
	if flags.Changed("up") {
		s.Up = opts.up
	}
	return s, nil
}

func openStore(ctx context.Context) (*store.Store, error) {
	return store.Open(ctx, filepath.Join(util.DataDir(config.AppName), config.DBFileName))
}

func runPicker(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	settings, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}
	cfg := picker.FromSettings(*settings)
	cfg.StartDate = opts.date

	st, err := openStore(ctx)
	if err != nil {
		util.LogError("open store", err)
		st = nil
	} else {
		defer st.Close()
	}
	if opts.resume && cfg.StartDate == "" && st != nil {
		if v, ok := st.GetSetting(ctx, settingLastStart); ok {
			cfg.StartDate = v
		}
	}

	out := cmd.OutOrStdout()
	if !isTerminal(int(os.Stdout.Fd())) {
		return printPicker(out, picker.New(cfg))
	}

	logPath := filepath.Join(util.DataDir(config.AppName), config.LogFileName)
	if f, err := tea.LogToFile(logPath, config.AppName); err == nil {
		defer f.Close()
	}

	var rec tui.Recorder
	if st != nil {
		rec = historyRecorder{st: st}
	}
	app := tui.NewAppModel(ctx, picker.New(cfg), rec)
	app.QuitOnDone = true
	final, err := tea.NewProgram(app, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if done, ok := final.(tui.AppModel); ok {
		printCommitted(out, done.Committed())
	}
	return nil
}

// historyRecorder stores picks and remembers the last start date.
type historyRecorder struct {
	st *store.Store
}

func (h historyRecorder) RecordPick(ctx context.Context, name string, at *time.Time) error {
	if err := h.st.RecordPick(ctx, name, at); err != nil {
		return err
	}
	if name == config.StartDateName && at != nil {
		return h.st.SetSetting(ctx, settingLastStart, at.Format(time.RFC3339))
	}
	return nil
}

func printCommitted(w io.Writer, msgs []picker.ChangeMsg) {
	for _, msg := range msgs {
		if msg.Date == nil {
			fmt.Fprintf(w, "%s\t-\n", msg.Name)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", msg.Name, msg.Date.Format(time.RFC3339))
	}
}

// printPicker is the non-interactive rendition: the anchored month and the
// value the picker would start with.
func printPicker(w io.Writer, m picker.Model) error {
	if err := writeMonthText(w, m.Calendar(), m); err != nil {
		return err
	}
	if v := m.DisplayValue(); v != "" {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	return nil
}
