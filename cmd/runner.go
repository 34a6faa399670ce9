package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/onboard/internal/repositories"
	"github.com/desertthunder/onboard/internal/services"
	"github.com/desertthunder/onboard/internal/shared"
	"github.com/desertthunder/onboard/internal/wizard"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	source     services.Source
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// A nil Source is built from the config's data section on first use.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Source     services.Source
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		source:     opts.Source,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger replaces the logger used by subsequent actions.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// Before loads the file named by --config when it exists and applies its log level.
//
// A missing file keeps the defaults; an invalid one is an error.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if path := cmd.String("config"); path != "" {
		r.configPath = path
	}

	if _, err := os.Stat(r.configPath); err == nil {
		config, err := shared.LoadConfig(r.configPath)
		if err != nil {
			return ctx, err
		}
		r.config = config
	}

	level, err := shared.ParseLevel(r.config.Log.Level)
	if err != nil {
		return ctx, err
	}
	shared.SetLogLevel(r.logger, level)
	return ctx, nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		tuiCommand, serveCommand, dataCommand, setupCommand, submissionsCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// dataSource returns the injected source, or one selected by the data config.
func (r *Runner) dataSource() services.Source {
	if r.source != nil {
		return r.source
	}

	client := r.httpClient
	if timeout := r.config.Data.Timeout(); timeout > 0 {
		client = &http.Client{Transport: r.httpClient.Transport, Timeout: timeout}
	}
	return services.NewSource(r.config.Data.BaseURL, r.config.Data.Dir, client)
}

func (r *Runner) provider() *services.Provider {
	return services.NewProvider(r.dataSource(), shared.WithLogger(r.logger, "component", "provider"))
}

// openDatabase opens the configured database and applies migrations.
func (r *Runner) openDatabase() (*sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// wizardOptions wires submission recording when the config enables it. The returned func releases the database.
func (r *Runner) wizardOptions() ([]wizard.Option, func(), error) {
	if !r.config.Database.RecordSubmissions {
		return nil, func() {}, nil
	}

	db, err := r.openDatabase()
	if err != nil {
		return nil, nil, err
	}

	recorder := repositories.NewSubmissionRecorder(repositories.NewSubmissionRepository(db))
	closeDB := func() { db.Close() }
	return []wizard.Option{wizard.WithRecorder(recorder, r.logger)}, closeDB, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
