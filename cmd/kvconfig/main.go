package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/kvconfig"
	"github.com/lixenwraith/kvconfig/internal/logging"
)

const appName = "kvconfig"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New(appName, "Inspect key=value configuration files")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	file := app.Flag("file", "Configuration file (discovered when empty)").Short('f').Envar("KVCONFIG_FILE").String()
	logLevel := app.Flag("log-level", "Diagnostic log level").Default("warn").Enum("debug", "info", "warn", "error")
	lenient := app.Flag("lenient", "Skip malformed lines instead of failing").Bool()

	getCmd := app.Command("get", "Print the value of a key")
	getKey := getCmd.Arg("key", "Key to look up").Required().String()
	var hasDefault bool
	getDefault := getCmd.Flag("default", "Value printed when the key is absent").Short('d').IsSetByUser(&hasDefault).String()

	keysCmd := app.Command("keys", "List loaded keys")

	dumpCmd := app.Command("dump", "Print all loaded values")
	dumpFormat := dumpCmd.Flag("format", "Output format").Default("kv").Enum("kv", "toml", "yaml", "json")

	checkCmd := app.Command("check", "Validate the file")
	checkRequire := checkCmd.Flag("require", "Key that must be present (repeatable)").Strings()

	command, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}
	defer func() {
		_ = logger.Sync()
	}()

	builder := kvconfig.NewBuilder().
		WithFile(resolveFile(*file, logger)).
		WithLogger(logger).
		WithStrict(!*lenient)
	if command == checkCmd.FullCommand() && len(*checkRequire) > 0 {
		builder.WithValidator(kvconfig.RequireKeys(*checkRequire...))
	}

	store, err := builder.Build()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	switch command {
	case getCmd.FullCommand():
		var value string
		if hasDefault {
			value, err = store.GetOr(*getKey, *getDefault)
		} else {
			value, err = store.Get(*getKey)
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", appName, err)
			return 1
		}
		fmt.Fprintln(stdout, value)

	case keysCmd.FullCommand():
		for _, key := range store.Keys() {
			fmt.Fprintln(stdout, key)
		}

	case dumpCmd.FullCommand():
		format, err := kvconfig.ParseFormat(*dumpFormat)
		if err == nil {
			err = store.Dump(stdout, format)
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", appName, err)
			return 1
		}

	case checkCmd.FullCommand():
		fmt.Fprintf(stdout, "%s: ok (%d keys)\n", store.Path(), store.Len())
	}

	return 0
}

// resolveFile returns the explicit path, or the discovered one, or DefaultPath.
func resolveFile(explicit string, logger *zap.Logger) string {
	if explicit != "" {
		return explicit
	}

	path, err := kvconfig.Discover(kvconfig.DefaultDiscoveryOptions(appName))
	if err != nil {
		if !errors.Is(err, kvconfig.ErrConfigNotFound) {
			logger.Warn("config discovery failed", zap.Error(err))
		}
		return kvconfig.DefaultPath
	}

	logger.Debug("config file discovered", zap.String("path", path))
	return path
}
