// Command localize translates keys from a localization folder tree and
// serves them over HTTP.
//
// Usage:
//
//	localize [-config file] [-locale tag] translate [-n count] [-p name=value]... key
//	localize [-config file] locales
//	localize [-config file] [-locale tag] dump [scope]
//	localize [-config file] serve
//
// Settings come from the environment (LOCALIZE_ROOT is required), an
// optional .env file, and the optional -config YAML or TOML file.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/internal/config"
	"github.com/dmitrymomot/localize/internal/server"
	"github.com/dmitrymomot/localize/pkg/logger"
)

var errUsage = errors.New("usage: localize [-config file] [-locale tag] translate|locales|dump|serve [args]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("localize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "YAML or TOML config file")
	localeTag := fs.String("locale", "", "locale to switch to before running the command")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(stderr, cfg.Log, server.RequestIDExtractor()).With(slog.String("app", "localize"))

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	opts := append(cfg.Localization.Options(), localize.WithLogger(log))
	if cmd == "locales" {
		opts = append(opts, localize.WithLoadOnInit(false))
	}

	svc, err := localize.New(cfg.Localization.Root, opts...)
	if err != nil {
		return err
	}
	if *localeTag != "" {
		if err := svc.SetLocale(*localeTag, true, cfg.Localization.InitialScope); err != nil {
			return err
		}
	}

	switch cmd {
	case "translate":
		return translate(svc, cmdArgs, stdout, stderr)
	case "locales":
		return locales(svc, stdout)
	case "dump":
		return dump(svc, cmdArgs, stdout)
	case "serve":
		srv := server.New(svc,
			server.WithAddr(cfg.HTTP.Addr),
			server.WithLogger(log),
			server.WithShutdownTimeout(time.Duration(cfg.HTTP.ShutdownTimeout)),
			server.WithReloadSchedule(cfg.HTTP.ReloadSchedule),
		)
		return srv.Run(ctx)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func translate(svc *localize.Service, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	count := fs.Int("n", -1, "plural count; negative disables pluralization")

	var params []localize.Param
	fs.Func("p", "parameter as name=value (repeatable)", func(v string) error {
		name, value, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return fmt.Errorf("parameter %q: want name=value", v)
		}
		params = append(params, localize.P(name, value))
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: localize translate [-n count] [-p name=value]... key")
	}

	key := fs.Arg(0)
	var text string
	if *count >= 0 {
		text = svc.TranslateCount(key, *count, params...)
	} else {
		text = svc.Translate(key, params...)
	}
	_, err := fmt.Fprintln(stdout, text)
	return err
}

func locales(svc *localize.Service, stdout io.Writer) error {
	available, err := svc.Available()
	if err != nil {
		return err
	}
	active := svc.Resolution().Folder
	for _, l := range available {
		marker := " "
		if l.Tag() == active {
			marker = "*"
		}
		if _, err := fmt.Fprintf(stdout, "%s %s\n", marker, l.Tag()); err != nil {
			return err
		}
	}
	return nil
}

func dump(svc *localize.Service, args []string, stdout io.Writer) error {
	var scope string
	if len(args) > 0 {
		scope = args[0]
	}

	node, ok := svc.Snapshot(scope)
	if !ok {
		return fmt.Errorf("scope %q is not loaded", scope)
	}
	data, err := node.MarshalJSON()
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(stdout)
	return err
}
