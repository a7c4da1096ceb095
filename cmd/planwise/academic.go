package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"planwise/internal/bootstrap"
	reportdto "planwise/internal/modules/report/dto"
	scheduledto "planwise/internal/modules/schedule/dto"
	sessiondto "planwise/internal/modules/session/dto"
	apperrors "planwise/internal/platform/errors"
)

func reportInput(state sessiondto.StateOutput, profile sessiondto.ProfileOutput) reportdto.BuildInput {
	return reportdto.BuildInput{
		StudentID: state.StudentID,
		PlanID:    state.PlanID,
		LoginID:   profile.LoginID,
		Name:      profile.Name,
	}
}

// withPlan is withApp for commands that need the stored plan.
func withPlan(opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App, state sessiondto.StateOutput) error) error {
	return withApp(opts, func(app *bootstrap.App) error {
		ctx := context.Background()
		state, err := signedIn(ctx, app)
		if err != nil {
			return err
		}
		if state.PlanID <= 0 {
			return apperrors.ErrNoPlan
		}
		return fn(ctx, app, state)
	})
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	plan := &cobra.Command{Use: "plan", Short: "Degree plan commands"}

	plan.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the courses in the plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPlan(opts, func(ctx context.Context, app *bootstrap.App, state sessiondto.StateOutput) error {
				out, err := app.PlanCLI.Get(ctx, state.PlanID)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "Plan %d · Total credits %s\n", out.PlanID, formatCredits(out.TotalCredits))
				if len(out.Items) == 0 {
					_, _ = fmt.Fprintln(w, "No courses in this plan yet. Use search to add one.")
					return nil
				}
				for _, item := range out.Items {
					rec := "No"
					if item.Recommended {
						rec = "Yes"
					}
					_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", item.PCID, rec, item.TermCode, item.CourseCode, item.Title, formatCredits(item.Credits))
				}
				return nil
			})
		},
	})

	var termID int64
	addCmd := &cobra.Command{
		Use:   "add <course_id>",
		Short: "Add a course to the plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := parseID("course_id", args[0])
			if err != nil {
				return err
			}
			return withPlan(opts, func(ctx context.Context, app *bootstrap.App, state sessiondto.StateOutput) error {
				out, err := app.PlanCLI.AddCourse(ctx, state.PlanID, courseID, termID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added (pc_id=%d term=%d)\n", out.PCID, out.TermID)
				return nil
			})
		},
	}
	addCmd.Flags().Int64Var(&termID, "term", 0, "term id (default from config)")
	plan.AddCommand(addCmd)

	plan.AddCommand(&cobra.Command{
		Use:   "remove <pc_id>",
		Short: "Remove a plan item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pcID, err := parseID("pc_id", args[0])
			if err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				if err := app.PlanCLI.Remove(context.Background(), pcID); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed")
				return nil
			})
		},
	})

	plan.AddCommand(&cobra.Command{
		Use:   "recommend",
		Short: "List recommended next courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPlan(opts, func(ctx context.Context, app *bootstrap.App, state sessiondto.StateOutput) error {
				items, err := app.PlanCLI.Recommendations(ctx, state.StudentID, state.PlanID)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No recommendations. You may have satisfied all core courses or need to mark more completed.")
					return nil
				}
				for _, c := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s credits\n", c.ID, c.Code, c.Title, formatCredits(c.Credits))
				}
				return nil
			})
		},
	})

	plan.AddCommand(&cobra.Command{
		Use:   "prereqs <course_id>",
		Short: "List prerequisites not yet completed for a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := parseID("course_id", args[0])
			if err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				state, err := signedIn(ctx, app)
				if err != nil {
					return err
				}
				items, err := app.PlanCLI.MissingPrereqs(ctx, state.StudentID, courseID)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all prerequisites met")
					return nil
				}
				for _, p := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", p.CourseID, p.Code, p.Title)
				}
				return nil
			})
		},
	})
	return plan
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Completed course commands"}

	history.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List completed courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStudent(opts, func(ctx context.Context, app *bootstrap.App, stu int64) error {
				items, err := app.HistoryCLI.List(ctx, stu)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No completed courses recorded yet.")
					return nil
				}
				for _, h := range items {
					grade := h.Grade
					if grade == "" {
						grade = "-"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\t%s\n", h.EnrollID, h.TermCode, h.Code, h.Title, formatCredits(h.Credits), grade)
				}
				return nil
			})
		},
	})

	history.AddCommand(&cobra.Command{
		Use:   "grade <enroll_id> <grade>",
		Short: "Change the grade of a completed course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enrollID, err := parseID("enroll_id", args[0])
			if err != nil {
				return err
			}
			return withStudent(opts, func(ctx context.Context, app *bootstrap.App, stu int64) error {
				if err := app.HistoryCLI.UpdateGrade(ctx, stu, enrollID, args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Grade updated")
				return nil
			})
		},
	})

	history.AddCommand(&cobra.Command{
		Use:   "remove <enroll_id>",
		Short: "Remove a completed course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enrollID, err := parseID("enroll_id", args[0])
			if err != nil {
				return err
			}
			return withStudent(opts, func(ctx context.Context, app *bootstrap.App, stu int64) error {
				if err := app.HistoryCLI.Remove(ctx, stu, enrollID); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed")
				return nil
			})
		},
	})

	var grade string
	addCmd := &cobra.Command{
		Use:   "add <course_id>",
		Short: "Record a course as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := parseID("course_id", args[0])
			if err != nil {
				return err
			}
			return withStudent(opts, func(ctx context.Context, app *bootstrap.App, stu int64) error {
				if err := app.HistoryCLI.AddCompleted(ctx, stu, courseID, grade); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Recorded as completed")
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&grade, "grade", "", "letter grade, e.g. A or B-")
	history.AddCommand(addCmd)

	var dryRun bool
	importCmd := &cobra.Command{
		Use:   "import <transcript.pdf>",
		Short: "Record completed courses found in a transcript PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStudent(opts, func(ctx context.Context, app *bootstrap.App, stu int64) error {
				out, err := app.HistoryCLI.ImportTranscript(ctx, stu, args[0], dryRun)
				if err != nil {
					return err
				}
				verb := "imported"
				if dryRun {
					verb = "would import"
				}
				for _, c := range out.Imported {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (course %d) grade=%s\n", verb, c.Code, c.CourseID, c.Grade)
				}
				for _, s := range out.Skipped {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %s\n", s.Code, s.Reason)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d %s, %d skipped\n", len(out.Imported), verb, len(out.Skipped))
				return nil
			})
		},
	}
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report matches without recording them")
	history.AddCommand(importCmd)
	return history
}

func withStudent(opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App, stu int64) error) error {
	return withApp(opts, func(app *bootstrap.App) error {
		ctx := context.Background()
		state, err := signedIn(ctx, app)
		if err != nil {
			return err
		}
		return fn(ctx, app, state.StudentID)
	})
}

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	schedule := &cobra.Command{Use: "schedule", Short: "Class schedule commands"}

	schedule.AddCommand(&cobra.Command{
		Use:   "available",
		Short: "List sections offered for planned courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPlan(opts, func(ctx context.Context, app *bootstrap.App, state sessiondto.StateOutput) error {
				out, err := app.ScheduleCLI.Available(ctx, state.PlanID)
				if err != nil {
					return err
				}
				if len(out.Sections) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No available schedule times found for your planned courses.")
					return nil
				}
				printSections(cmd.OutOrStdout(), out)
				for _, w := range out.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
				}
				return nil
			})
		},
	})

	schedule.AddCommand(&cobra.Command{
		Use:   "final",
		Short: "Show the chosen classes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStudent(opts, func(ctx context.Context, app *bootstrap.App, stu int64) error {
				out, err := app.ScheduleCLI.Final(ctx, stu)
				if err != nil {
					return err
				}
				if len(out.Sections) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No classes chosen yet.")
					return nil
				}
				printSections(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	schedule.AddCommand(&cobra.Command{
		Use:   "enroll <section_id>",
		Short: "Add a section to the final schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionID, err := parseID("section_id", args[0])
			if err != nil {
				return err
			}
			return withStudent(opts, func(ctx context.Context, app *bootstrap.App, stu int64) error {
				out, err := app.ScheduleCLI.Enroll(ctx, stu, sectionID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Enrolled successfully! (enroll_id=%d)\n", out.EnrollID)
				return nil
			})
		},
	})

	schedule.AddCommand(&cobra.Command{
		Use:   "drop <section_id>",
		Short: "Remove a section from the final schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionID, err := parseID("section_id", args[0])
			if err != nil {
				return err
			}
			return withStudent(opts, func(ctx context.Context, app *bootstrap.App, stu int64) error {
				if err := app.ScheduleCLI.Drop(ctx, stu, sectionID); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed from schedule")
				return nil
			})
		},
	})

	schedule.AddCommand(&cobra.Command{
		Use:   "conflicts",
		Short: "List overlapping sections of planned courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPlan(opts, func(ctx context.Context, app *bootstrap.App, state sessiondto.StateOutput) error {
				items, err := app.ScheduleCLI.Conflicts(ctx, state.PlanID)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no time conflicts")
					return nil
				}
				for _, c := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tsection %d (%s)\tsection %d (%s)\n", c.Day, c.SectionA, c.ATimeText, c.SectionB, c.BTimeText)
				}
				return nil
			})
		},
	})
	return schedule
}

func printSections(w io.Writer, out scheduledto.ScheduleOutput) {
	for _, s := range out.Sections {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", s.SectionID, s.CourseCode, s.Title, s.DaysText, s.TimeText, s.Location)
	}
}
