package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	rewritecmd "github.com/goliatone/go-hugoprep/internal/commands/rewrite"
	"github.com/goliatone/go-hugoprep/internal/logging"
	"github.com/goliatone/go-hugoprep/internal/logging/gologger"
	"github.com/goliatone/go-hugoprep/internal/markdown"
	"github.com/goliatone/go-hugoprep/internal/pipeline"
	"github.com/goliatone/go-hugoprep/internal/rewrite"
	"github.com/goliatone/go-hugoprep/pkg/interfaces"
)

const usageText = `Usage: hugoprep [flags] <input-file> [output-file]
   or: hugoprep [flags] <input-dir> <output-dir>

Rewrites Hugo figure shortcodes in Markdown files into plain image syntax and
normalizes absolute image paths under a static/ prefix. Single-file mode
defaults to rewriting the input in place; batch mode processes every *.md file
directly inside the input directory and requires an output directory.

Flags:
  -log-level string    minimum log level (trace|debug|info|warn|error|fatal) (default "info")
  -log-format string   log output format (console|json|pretty) (default "console")
  -verify              parse transformed output and warn about image paths still rooted at /
  -quiet               disable logging; report lines are still printed`

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usageText)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("hugoprep", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, usageText)
	}
	logLevel := fs.String("log-level", "info", "minimum log level")
	logFormat := fs.String("log-format", "console", "log output format")
	verify := fs.Bool("verify", false, "verify transformed output")
	quiet := fs.Bool("quiet", false, "disable logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	positional := fs.Args()
	if len(positional) < 1 {
		return errUsage
	}
	inputPath := positional[0]

	var provider interfaces.LoggerProvider
	if !*quiet {
		p, err := gologger.NewProvider(gologger.Config{
			Level:  *logLevel,
			Format: *logFormat,
		})
		if err != nil {
			return err
		}
		provider = p
	}

	cfg := pipeline.Config{
		Rewriter: rewrite.New(),
		Logger:   logging.PipelineLogger(provider),
		Stdout:   os.Stdout,
	}
	if *verify {
		cfg.Verifier = markdown.NewVerifier()
	}

	processor, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	commandLogger := logging.CommandsLogger(provider)

	info, err := os.Stat(inputPath)
	switch {
	case err == nil && info.Mode().IsRegular():
		outputPath := ""
		if len(positional) > 1 {
			outputPath = positional[1]
		}
		handler := rewritecmd.NewProcessFileHandler(processor, commandLogger)
		return handler.Execute(ctx, rewritecmd.ProcessFileCommand{
			Input:  inputPath,
			Output: outputPath,
		})

	case err == nil && info.IsDir():
		if len(positional) < 2 {
			return errUsage
		}
		handler := rewritecmd.NewProcessDirectoryHandler(processor, commandLogger)
		return handler.Execute(ctx, rewritecmd.ProcessDirectoryCommand{
			InputDir:  inputPath,
			OutputDir: positional[1],
		})

	default:
		return fmt.Errorf("%s is not a valid file or directory", inputPath)
	}
}
