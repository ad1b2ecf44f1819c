package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	authflow "github.com/goliatone/go-authflow"
	"github.com/goliatone/go-authflow/components/countries"
	"github.com/goliatone/go-authflow/pkg/notify"
	"github.com/goliatone/go-authflow/pkg/session"
	"github.com/goliatone/go-authflow/pkg/tui"
)

const appName = "authflow"

func main() {
	_ = godotenv.Load()

	command := flag.String("command", "login", "flow to run: login or signup")
	baseURL := flag.String("base-url", os.Getenv("AUTHFLOW_BASE_URL"), "account service base URL")
	remember := flag.Bool("remember", false, "persist the session token on disk")
	credentials := flag.String("credentials", "", "token file path (defaults to the user config dir)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*verbose)

	if err := run(context.Background(), logger, *command, *baseURL, *remember, *credentials); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			logger.Info("aborted")
			os.Exit(130)
		}
		logger.Error("command failed", "command", *command, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, command, baseURL string, remember bool, credentialsPath string) error {
	if strings.TrimSpace(baseURL) == "" {
		return fmt.Errorf("base URL is required (flag -base-url or AUTHFLOW_BASE_URL)")
	}

	storage, err := buildStorage(logger, remember, credentialsPath)
	if err != nil {
		return err
	}

	kit, err := authflow.New(baseURL,
		authflow.WithTokenStorage(storage),
		authflow.WithNotifier(notify.NewLogNotifier(logger)),
		authflow.WithNavigator(authflow.NavigatorFunc(func(route string) {
			logger.Debug("navigate", "route", route)
		})),
	)
	if err != nil {
		return err
	}

	list, err := countries.DefaultCountries()
	if err != nil {
		return err
	}
	choices := make([]tui.Choice, 0, len(list))
	for _, c := range list {
		choices = append(choices, tui.Choice{Label: countries.Label(c), Value: c.DialCode})
	}

	flows, err := tui.NewFlows(tui.WithCountries(choices))
	if err != nil {
		return err
	}

	switch command {
	case "login":
		return flows.Login(ctx, kit.Login)
	case "signup":
		return flows.Signup(ctx, kit.Signup)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func buildStorage(logger *slog.Logger, remember bool, credentialsPath string) (session.TokenStorage, error) {
	if !remember {
		return session.NewMemoryStorage(), nil
	}

	path := credentialsPath
	if path == "" {
		defaultPath, err := session.DefaultCredentialsPath(appName)
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	logger.Debug("using durable token storage", "path", path)
	return session.NewFileStorage(path)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
