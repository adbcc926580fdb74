// Command mintext applies a YAML-described text pipeline to a file or to
// standard input and prints the result.
//
//	mintext -config pipeline.yaml -in notes.txt
//	echo "Hello, World!" | mintext -config pipeline.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/lguimbarda/min-text/text"
	"github.com/lguimbarda/min-text/text/observe"
	"github.com/lguimbarda/min-text/text/pipeline"
)

var configPath = flag.String("config", "", "path to the pipeline YAML file")
var inputPath = flag.String("in", "", "read input from this file instead of stdin")
var verbose = flag.Bool("v", false, "log every evaluation at debug level")

func main() {
	flag.Parse()

	logger, err := initializeLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	opts := options{config: *configPath, input: *inputPath}
	if err := run(logger, opts, os.Stdin, os.Stdout); err != nil {
		logger.Error("mintext failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "mintext:", err)
		os.Exit(1)
	}
}

type options struct {
	config string
	input  string
}

func run(logger *zap.Logger, opts options, stdin io.Reader, stdout io.Writer) error {
	if opts.config == "" {
		return fmt.Errorf("-config is required")
	}
	cfg, err := pipeline.LoadFile(opts.config)
	if err != nil {
		return err
	}
	logger.Debug("pipeline loaded", zap.String("config", opts.config), zap.Int("steps", len(cfg.Steps)))

	src := observe.Logged(input(opts.input, stdin), logger, "input")
	chain, err := pipeline.Build(cfg, src)
	if err != nil {
		return err
	}

	result, err := observe.Logged(chain, logger, "pipeline").AsString()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, result)
	return err
}

// input reads path, or stdin when path is empty, on first evaluation.
// A stream can only be drained once, so the first read is kept for the
// decorators that evaluate their source more than once.
func input(path string, stdin io.Reader) text.Text {
	read := sync.OnceValues(func() (string, error) {
		if path == "" {
			b, err := io.ReadAll(stdin)
			return string(b), err
		}
		b, err := os.ReadFile(path)
		return string(b), err
	})
	return text.From(read)
}

func initializeLogger(verbose bool) (*zap.Logger, error) {
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.OutputPaths = []string{"stderr"}
	if verbose {
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return loggerConfig.Build()
}
