package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"planwise/internal/bootstrap"
	plugindto "planwise/internal/modules/plugin/dto"
)

func newPluginCmd(opts *rootOptions) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Planner plugin operations"}
	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				plugins, err := app.PluginCLI.List(context.Background())
				if err != nil {
					return err
				}
				if len(plugins) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
					return nil
				}
				for _, p := range plugins {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t capabilities=%s binary=%s\n", p.Name, p.Version, p.Enabled, strings.Join(p.Capabilities, ","), p.Binary)
				}
				return nil
			})
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate plugin checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				results, err := app.PluginCLI.Doctor(context.Background())
				if err != nil {
					return err
				}
				if len(results) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
					return nil
				}
				for _, r := range results {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
					if r.Error != "" {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			})
		},
	})

	var commandPluginName string
	commandsCmd := &cobra.Command{
		Use:   "commands --plugin <name>",
		Short: "List commands exposed by a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(commandPluginName) == "" {
				return fmt.Errorf("--plugin is required")
			}
			return withApp(opts, func(app *bootstrap.App) error {
				commands, err := app.PluginCLI.ListCommands(context.Background(), commandPluginName)
				if err != nil {
					return err
				}
				if len(commands) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no commands")
					return nil
				}
				for _, item := range commands {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s kind=%s timeout_ms=%d title=%q\n", item.ID, item.Kind, item.TimeoutMS, item.Title)
				}
				return nil
			})
		},
	}
	commandsCmd.Flags().StringVar(&commandPluginName, "plugin", "", "plugin name")
	plugin.AddCommand(commandsCmd)

	plugin.AddCommand(newPluginRunCmd(opts, "exec", "Execute a plugin command", func(ctx context.Context, app *bootstrap.App, in plugindto.ExecuteInput) (plugindto.ExecuteOutput, error) {
		return app.PluginCLI.Execute(ctx, in)
	}))
	plugin.AddCommand(newPluginRunCmd(opts, "audit", "Run a plugin audit over the current plan", func(ctx context.Context, app *bootstrap.App, in plugindto.ExecuteInput) (plugindto.ExecuteOutput, error) {
		return app.PluginCLI.Audit(ctx, in)
	}))
	return plugin
}

type pluginRunner func(ctx context.Context, app *bootstrap.App, in plugindto.ExecuteInput) (plugindto.ExecuteOutput, error)

func newPluginRunCmd(opts *rootOptions, use, short string, run pluginRunner) *cobra.Command {
	var pluginName, commandID, inputJSON string
	cmd := &cobra.Command{
		Use:   use + " --plugin <name> --command <id>",
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(pluginName) == "" || strings.TrimSpace(commandID) == "" {
				return fmt.Errorf("--plugin and --command are required")
			}
			if err := validateJSONInput(inputJSON); err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				state, _ := app.SessionCLI.Current(ctx)
				out, err := run(ctx, app, plugindto.ExecuteInput{
					PluginName: pluginName,
					CommandID:  commandID,
					InputJSON:  inputJSON,
					DataDir:    app.Config.DataDir,
					StudentID:  state.StudentID,
					PlanID:     state.PlanID,
				})
				if err != nil {
					return err
				}
				printExecuteOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), out)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&pluginName, "plugin", "", "plugin name")
	cmd.Flags().StringVar(&commandID, "command", "", "command id")
	cmd.Flags().StringVar(&inputJSON, "input-json", "", "JSON input payload")
	return cmd
}

func printExecuteOutput(stdout, stderr io.Writer, out plugindto.ExecuteOutput) {
	_, _ = fmt.Fprintf(stdout, "plugin=%s command=%s exit=%d\n", out.PluginName, out.CommandID, out.ExitCode)
	if strings.TrimSpace(out.Stdout) != "" {
		_, _ = fmt.Fprintln(stdout, out.Stdout)
	}
	if strings.TrimSpace(out.Stderr) != "" {
		_, _ = fmt.Fprintln(stderr, out.Stderr)
	}
	for _, f := range out.Findings {
		where := strings.TrimSpace(f.TermCode + " " + f.CourseCode)
		_, _ = fmt.Fprintf(stdout, "[%s] %s %s\n", f.Severity, where, f.Message)
	}
	if len(out.Findings) == 0 && strings.TrimSpace(out.OutputJSON) != "" {
		_, _ = fmt.Fprintln(stdout, out.OutputJSON)
	}
}

func validateJSONInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if !json.Valid([]byte(input)) {
		return fmt.Errorf("--input-json must be valid JSON")
	}
	return nil
}
