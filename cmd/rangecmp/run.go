package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/ranges/configuration"
	"github.com/iotaledger/hive.go/ranges/logger"
)

const (
	// CfgConfigFile is the path to an optional JSON or YAML config file.
	CfgConfigFile = "config"
	// CfgRange is the range in interval notation.
	CfgRange = "range"
	// CfgType is the type of the classified values.
	CfgType = "type"

	envPrefix = "RANGECMP"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func newFlagSet(errOutput io.Writer) *flag.FlagSet {
	flagSet := flag.NewFlagSet("rangecmp", flag.ContinueOnError)
	flagSet.SetOutput(errOutput)

	flagSet.String(CfgConfigFile, "", "path to a JSON or YAML config file")
	flagSet.String(CfgRange, "(-inf, +inf)", "the range in interval notation, i.e. \"[3, 10)\"")
	flagSet.String(CfgType, ValueTypeInt, "the type of the values ("+strings.Join(ValueTypes, ", ")+")")
	logger.RegisterFlags(flagSet)

	return flagSet
}

// loadConfiguration merges the config file, the flags and the environment variables (in ascending priority for keys
// that are set in more than one source, except for flag defaults which never override the file).
func loadConfiguration(flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()

	if configFile, _ := flagSet.GetString(CfgConfigFile); configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, err
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, err
	}

	return config, nil
}

func run(args []string, output io.Writer, errOutput io.Writer) int {
	flagSet := newFlagSet(errOutput)
	if err := flagSet.Parse(args); err != nil {
		return exitUsage
	}

	config, err := loadConfiguration(flagSet)
	if err != nil {
		fmt.Fprintf(errOutput, "failed to load configuration: %s\n", err)

		return exitFailure
	}

	log, err := logger.NewRootLoggerFromConfiguration(config)
	if err != nil {
		fmt.Fprintf(errOutput, "failed to create logger: %s\n", err)

		return exitFailure
	}
	defer func() { _ = log.Sync() }()

	rangeNotation, valueType := config.String(CfgRange), config.String(CfgType)
	log.Debug("classifying values",
		zap.String("range", rangeNotation),
		zap.String("type", valueType),
		zap.Int("count", flagSet.NArg()),
	)

	classifications, err := classifyValues(rangeNotation, valueType, flagSet.Args())
	if err != nil {
		log.Error("failed to classify values", zap.Error(err))

		return exitFailure
	}

	for _, line := range lo.Map(classifications, classification.String) {
		fmt.Fprintln(output, line)
	}

	return exitOK
}
