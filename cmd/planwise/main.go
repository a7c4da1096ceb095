package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"planwise/internal/bootstrap"
	sessiondto "planwise/internal/modules/session/dto"
	"planwise/internal/platform/config"
	apperrors "planwise/internal/platform/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir  string
	baseURL  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "planwise",
		Short:         "Plan courses, track grades and build a class schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", defaultDataDir(), "directory for state, logs and plugins")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "backend base URL (default "+config.DefaultBaseURL+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newSignInCmd(opts))
	root.AddCommand(newWhoAmICmd(opts))
	root.AddCommand(newCatalogCmds(opts)...)
	root.AddCommand(newMajorCmd(opts))
	root.AddCommand(newSearchCmd(opts))
	root.AddCommand(newPlanCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newScheduleCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newPluginCmd(opts))
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".planwise"
	}
	return filepath.Join(home, ".planwise")
}

func loadApp(opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.dataDir, config.Overrides{BaseURL: opts.baseURL, LogLevel: opts.logLevel})
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(opts *rootOptions, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

// signedIn returns the stored session or ErrNotSignedIn.
func signedIn(ctx context.Context, app *bootstrap.App) (sessiondto.StateOutput, error) {
	state, err := app.SessionCLI.Current(ctx)
	if err != nil {
		return state, err
	}
	if state.StudentID <= 0 {
		return state, fmt.Errorf("%w: run `planwise signin <login_id>` first", apperrors.ErrNotSignedIn)
	}
	return state, nil
}

func parseID(name, raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", apperrors.ErrInvalidInput, name)
	}
	return v, nil
}

func formatCredits(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the planwise terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(opts, bootstrap.RunTUI)
		},
	}
}

func newSignInCmd(opts *rootOptions) *cobra.Command {
	var programID int64
	cmd := &cobra.Command{
		Use:   "signin <login_id>",
		Short: "Sign in and remember the student and plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.SessionCLI.SignIn(context.Background(), args[0], programID)
				if out.StudentID > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (student %d, plan %d)\n", out.Name, out.StudentID, out.PlanID)
				}
				if err != nil {
					if out.StudentID > 0 {
						return fmt.Errorf("major not saved: %w", err)
					}
					return err
				}
				if out.MajorSaved {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "major saved")
				}
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&programID, "program", 0, "program id to save as the major")
	return cmd
}

func newWhoAmICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in student",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				p, err := app.SessionCLI.Profile(context.Background())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s · %s\n", p.Name, p.Email)
				if p.AdvisorName != "" {
					_, _ = fmt.Fprintf(w, "Advisor: %s\n", p.AdvisorName)
				}
				_, _ = fmt.Fprintf(w, "Catalog Year: %d · Expected Grad Term: %d\n", p.CatalogYearID, p.ExpectedGradTerm)
				_, _ = fmt.Fprintf(w, "student=%d plan=%d login=%s\n", p.StudentID, p.PlanID, p.LoginID)
				return nil
			})
		},
	}
}

func newCatalogCmds(opts *rootOptions) []*cobra.Command {
	programs := &cobra.Command{
		Use:   "programs",
		Short: "List degree programs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				items, err := app.CatalogCLI.Programs(context.Background())
				if err != nil {
					return err
				}
				for _, p := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", p.ID, p.Name, p.Type)
				}
				return nil
			})
		},
	}
	subjects := &cobra.Command{
		Use:   "subjects",
		Short: "List course subjects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				items, err := app.CatalogCLI.Subjects(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(items, "\n"))
				return nil
			})
		},
	}
	advisors := &cobra.Command{
		Use:   "advisors",
		Short: "List advisors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				items, err := app.CatalogCLI.Advisors(context.Background())
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No advisors found.")
					return nil
				}
				for _, a := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.Name, a.Email)
				}
				return nil
			})
		},
	}
	return []*cobra.Command{programs, subjects, advisors}
}

func newMajorCmd(opts *rootOptions) *cobra.Command {
	major := &cobra.Command{Use: "major", Short: "Show or change the declared major"}
	major.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the current major",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				state, err := signedIn(ctx, app)
				if err != nil {
					return err
				}
				m, err := app.CatalogCLI.CurrentMajor(ctx, state.StudentID)
				if err != nil {
					return err
				}
				if m.ID == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no major declared")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", m.ID, m.Name, m.Type)
				return nil
			})
		},
	})
	major.AddCommand(&cobra.Command{
		Use:   "set <program_id>",
		Short: "Declare a major",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			progID, err := parseID("program_id", args[0])
			if err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				state, err := signedIn(ctx, app)
				if err != nil {
					return err
				}
				if err := app.CatalogCLI.SaveMajor(ctx, state.StudentID, progID); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Major saved")
				return nil
			})
		},
	})
	return major
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var subject, level string
	cmd := &cobra.Command{
		Use:   "search [text...]",
		Short: "Search the course catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				items, err := app.CatalogCLI.Search(context.Background(), strings.Join(args, " "), subject, level)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no courses match")
					return nil
				}
				for _, c := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s credits\n", c.ID, c.Code, c.Title, formatCredits(c.Credits))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "subject code, e.g. CMPSC")
	cmd.Flags().StringVar(&level, "level", "", "course level, e.g. 400")
	return cmd
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total credits, GPA and class standing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				state, err := signedIn(ctx, app)
				if err != nil {
					return err
				}
				s, err := app.HistoryCLI.Summary(ctx, state.StudentID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "credits=%s gpa=%s standing=%s\n", formatCredits(s.TotalCredits), s.GPAText, s.Standing)
				return nil
			})
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a markdown report of the plan, history and schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				state, err := signedIn(ctx, app)
				if err != nil {
					return err
				}
				profile, err := app.SessionCLI.Profile(ctx)
				if err != nil {
					return err
				}
				out, err := app.ReportCLI.Export(ctx, reportInput(state, profile), dir)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", out.Path)
				for _, u := range out.Report.Unavailable {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "not included: %s\n", u)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to write the report into")
	return cmd
}
