package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vitalvas/urlproto/builtin"
	"github.com/vitalvas/urlproto/protocol"
	"github.com/vitalvas/urlproto/protocols/resource"
)

// app holds the configuration resolved before a subcommand runs.
type app struct {
	v       *viper.Viper
	logger  *slog.Logger
	catalog *protocol.Catalog
	factory protocol.Factory
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:               "urlproto",
		Short:             "rewrite, parse and open sub-protocol URLs",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("packages", "", "Handler package prefixes searched before the builtin handlers, separated by '|'")
	flags.String("manifest", "", "Path of a YAML manifest selecting provided factories, packages and aliases")
	flags.StringArray("mount", nil, "Mount a directory for the resource protocol as NAME=DIR (repeatable, empty NAME is the default mount)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")

	// flags are registered above, binding cannot fail
	_ = a.v.BindPFlags(flags)
	_ = a.v.BindEnv("packages", "URLPROTO_PACKAGES", protocol.PackagesEnv)

	a.v.SetEnvPrefix("urlproto")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newReformCmd(),
		newParseCmd(),
		newCatCmd(a),
		newPackagesCmd(a),
	)

	return root
}

// setup builds the logger, the catalog and the factory from the flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logHandler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	a.logger = slog.New(logHandler)

	pkgs := protocol.NewPackageList(a.v.GetString("packages"))

	var manifest *protocol.Manifest
	if path := a.v.GetString("manifest"); path != "" {
		m, err := protocol.ReadManifest(path)
		if err != nil {
			return err
		}

		added := m.Apply(pkgs)
		a.logger.Debug("manifest loaded", slog.String("path", path), slog.Int("packages_added", added))
		manifest = m
	}

	a.catalog = protocol.NewCatalog(pkgs)
	if err := builtin.Install(a.catalog); err != nil {
		return err
	}

	if mounts := a.v.GetStringSlice("mount"); len(mounts) > 0 {
		res := resource.New()

		for _, mount := range mounts {
			name, dir, ok := strings.Cut(mount, "=")
			if !ok || dir == "" {
				return fmt.Errorf("invalid mount %q (expected NAME=DIR)", mount)
			}

			res.Mount(name, os.DirFS(dir))
			a.logger.Debug("mounted", slog.String("name", name), slog.String("dir", dir))
		}

		if _, err := protocol.Register(res, protocol.WithCatalog(a.catalog), protocol.WithLogHandler(logHandler)); err != nil {
			return err
		}
	}

	services, err := protocol.NewServiceFactory(manifest)
	if err != nil {
		return err
	}

	a.factory = protocol.NewCompositeFactory(nil,
		a.catalog,
		protocol.Prioritize(services, protocol.LowestPriority),
	)

	return nil
}
