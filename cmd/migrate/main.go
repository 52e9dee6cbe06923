package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
)

const envPostgresDSN = "STOREFRONT_POSTGRES_DSN"

// migrator — операции хранилища, которые нужны утилите.
type migrator interface {
	MigrateUp(ctx context.Context, steps int) error
	MigrateDown(ctx context.Context, steps int) error
	MigrationStatus(ctx context.Context) (postgres.MigrationState, error)
	Close() error
}

type opener func(ctx context.Context, dsn string) (migrator, error)

func openPostgres(ctx context.Context, dsn string) (migrator, error) {
	return postgres.Open(ctx, dsn)
}

type command struct {
	action  string
	steps   int
	dsn     string
	timeout time.Duration
}

const usage = `usage: migrate [flags] up|down|status

  up      apply pending migrations (-steps limits how many)
  down    roll back applied migrations (-steps, default 1)
  status  print current version and pending migrations

flags:
`

func parseCommand(args []string, getenv func(string) string, output io.Writer) (command, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		_, _ = io.WriteString(output, usage)
		fs.PrintDefaults()
	}

	var cmd command
	fs.IntVar(&cmd.steps, "steps", 0, "number of migrations to apply or roll back")
	fs.StringVar(&cmd.dsn, "dsn", "", "PostgreSQL DSN (fallback: "+envPostgresDSN+")")
	fs.DurationVar(&cmd.timeout, "timeout", 30*time.Second, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return command{}, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return command{}, errors.New("exactly one action is required")
	}
	cmd.action = strings.ToLower(fs.Arg(0))
	switch cmd.action {
	case "up", "status":
	case "down":
		if cmd.steps <= 0 {
			cmd.steps = 1
		}
	default:
		return command{}, fmt.Errorf("unknown action %q (use up|down|status)", cmd.action)
	}
	if cmd.steps < 0 {
		return command{}, errors.New("-steps must be >= 0")
	}
	if cmd.timeout <= 0 {
		return command{}, errors.New("-timeout must be > 0")
	}

	cmd.dsn = strings.TrimSpace(cmd.dsn)
	if cmd.dsn == "" {
		cmd.dsn = strings.TrimSpace(getenv(envPostgresDSN))
	}
	if cmd.dsn == "" {
		return command{}, fmt.Errorf("%s (or -dsn) is required", envPostgresDSN)
	}
	return cmd, nil
}

func run(ctx context.Context, cmd command, open opener, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, cmd.timeout)
	defer cancel()

	store, err := open(ctx, cmd.dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer store.Close()

	before, err := store.MigrationStatus(ctx)
	if err != nil {
		return fmt.Errorf("read migration status: %w", err)
	}

	switch cmd.action {
	case "up":
		err = store.MigrateUp(ctx, cmd.steps)
	case "down":
		err = store.MigrateDown(ctx, cmd.steps)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", cmd.action, err)
	}

	after := before
	if cmd.action != "status" {
		if after, err = store.MigrationStatus(ctx); err != nil {
			return fmt.Errorf("read migration status: %w", err)
		}
	}
	report(out, cmd.action, before, after)
	return nil
}

// report печатает итог; для up/down показывает переход версии схемы.
func report(w io.Writer, action string, before, after postgres.MigrationState) {
	if action == "status" {
		_, _ = fmt.Fprintf(w, "schema version %d, %d applied, %d pending\n", after.Version, after.Applied, len(after.Pending))
	} else {
		_, _ = fmt.Fprintf(w, "%s: version %d -> %d, %d applied, %d pending\n",
			action, before.Version, after.Version, after.Applied, len(after.Pending))
	}
	for _, name := range after.Pending {
		_, _ = fmt.Fprintf(w, "  pending %s\n", name)
	}
}

func main() {
	cmd, err := parseCommand(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(context.Background(), cmd, openPostgres, os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
