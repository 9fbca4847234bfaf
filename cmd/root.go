package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"promptcat/pkg/aggregate"
	"promptcat/pkg/logging"
	"promptcat/pkg/tokenizer"
	"promptcat/pkg/version"
)

// rootLogger is the logger handed to Execute; runRoot swaps it for a
// development logger when --verbose is set.
var rootLogger *zap.Logger

// RootCmd is the base command. It runs an aggregation over its
// arguments.
var RootCmd = &cobra.Command{
	Use:   "promptcat [targets...]",
	Short: "Promptcat combines files, directories, and URLs into one prompt-ready document",
	Long: `Promptcat aggregates files, directory trees, and remote resources into a
single structured document and tallies its token count, for pasting into
LLM chats and prompt pipelines. The document opens with a structure
listing and is copied to the clipboard unless an output file is given.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	addRootFlags(RootCmd.Flags())
}

// addRootFlags registers the aggregation flags on a flag set.
func addRootFlags(flags *pflag.FlagSet) {
	flags.StringArrayP("exclude", "e", nil, "exclusion pattern, repeatable; matches as exact, suffix, substring, or directory prefix")
	flags.String("exclude-file", "", "file with one exclusion pattern per line")
	flags.IntP("threads", "t", runtime.NumCPU(), "number of worker threads")
	flags.String("encoding", tokenizer.DefaultEncoding, "token encoding, one of: "+strings.Join(tokenizer.Encodings, ", "))
	flags.StringP("output", "o", "", "write the document to this file instead of the clipboard")
	flags.BoolP("print", "p", false, "also print the document to stdout")
	flags.Bool("pick", false, "fuzzy-pick targets interactively from the current directory")
	flags.BoolP("verbose", "v", false, "enable debug logging")
}

// Execute runs the root command with the given logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := rootLogger
	if logger == nil {
		logger = zap.NewNop()
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		var err error
		logger, err = logging.Setup(true, version.AppName, version.Get().Version)
		if err != nil {
			return fmt.Errorf("failed to set up verbose logging: %w", err)
		}
	}

	opts, err := gatherOptions(cmd, args, logger)
	if err != nil {
		return err
	}

	// The counter is a single encoding-scoped resource: initialized
	// once before any work is dispatched, torn down on every exit path.
	counter, err := tokenizer.New(opts.Encoding)
	if err != nil {
		logger.Error("Tokenizer initialization failed",
			zap.String("encoding", opts.Encoding), zap.Error(err))
		return err
	}
	defer counter.Close()

	result, err := aggregate.Run(aggregate.Config{
		Targets:         opts.Targets,
		ExcludePatterns: opts.Exclude,
		Threads:         opts.Threads,
	}, counter, logger)
	if err != nil {
		return err
	}

	logger.Info("Aggregated targets",
		zap.Int("tokens", result.Tokens),
		zap.Int("bytes", len(result.Document)),
		zap.String("encoding", opts.Encoding))

	return aggregate.Deliver(result, aggregate.SinkOptions{
		OutputPath: opts.Output,
		Print:      opts.Print,
	}, logger)
}
