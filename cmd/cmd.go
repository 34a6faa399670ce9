// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// tuiCommand returns the top-level TUI command for the interactive wizard.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the onboarding wizard in the terminal",
		Action:  r.TUI,
	}
}

// serveCommand runs the web wizard.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the onboarding wizard over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides server.port)",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the wizard in the default browser",
			},
		},
		Action: r.Serve,
	}
}

// dataCommand inspects the wizard datasets.
func dataCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "data",
		Usage: "Inspect topic and newsletter datasets",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Load both datasets the way the wizard does and print them",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "fallback",
						Usage: "Print the embedded fallback datasets without fetching",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.DataShow,
			},
			{
				Name:  "export",
				Usage: "Write topics.json and newsletters.json for use as data.dir",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dir",
						Aliases:  []string{"o"},
						Usage:    "Output directory",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "fallback",
						Usage: "Export the embedded fallback datasets without fetching",
					},
				},
				Action: r.DataExport,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write an example configuration file to --config",
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Action: r.SetupDatabase,
			},
			{
				Name:   "status",
				Usage:  "List migrations and whether each is applied",
				Action: r.SetupStatus,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent database migration",
				Action: r.SetupRollback,
			},
		},
	}
}

// submissionsCommand reads the submission log.
func submissionsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "submissions",
		Aliases: []string{"subs"},
		Usage:   "Inspect recorded wizard submissions",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recorded submissions, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of submissions to return (0 for all)",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.SubmissionsList,
			},
			{
				Name:  "show",
				Usage: "Show one submission",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Submission ID",
						Required: true,
					},
				},
				Action: r.SubmissionsShow,
			},
			{
				Name:  "export",
				Usage: "Export submissions as CSV, Markdown or text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, md, txt",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to stdout)",
					},
				},
				Action: r.SubmissionsExport,
			},
			{
				Name:   "stats",
				Usage:  "Count how often each choice was picked",
				Action: r.SubmissionsStats,
			},
			{
				Name:  "delete",
				Usage: "Delete one submission",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Submission ID",
						Required: true,
					},
				},
				Action: r.SubmissionsDelete,
			},
		},
	}
}

// rootCommand builds the application; with no subcommand it launches the TUI.
func rootCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "onboard",
		Usage:    "Pick topics and newsletters in a three-step wizard",
		Version:  "0.1.0",
		Flags:    []cli.Flag{configFlag()},
		Before:   r.Before,
		Action:   r.TUI,
		Commands: r.register(),
	}
}
