// File: cmd/config.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"promptcat/pkg/aggregate"
	"promptcat/pkg/picker"
)

const (
	configFileName = ".promptcat.yaml"
	ignoreFileName = ".promptcatignore"
)

// options is the fully resolved configuration for one invocation:
// defaults file first, then flags, then positional targets.
type options struct {
	Targets  []string
	Exclude  []string
	Threads  int
	Encoding string
	Output   string
	Print    bool
}

// fileConfig mirrors the optional .promptcat.yaml defaults file.
type fileConfig struct {
	Encoding string   `yaml:"encoding"`
	Threads  int      `yaml:"threads"`
	Exclude  []string `yaml:"exclude"`
	Output   string   `yaml:"output"`
	Print    bool     `yaml:"print"`
}

// gatherOptions resolves flags, the defaults file, pattern files, and
// interactive picking into one options set. Flags always win over the
// defaults file; pattern sources stack.
func gatherOptions(cmd *cobra.Command, args []string, logger *zap.Logger) (*options, error) {
	flags := cmd.Flags()
	opts := &options{Targets: args}

	opts.Threads, _ = flags.GetInt("threads")
	opts.Encoding, _ = flags.GetString("encoding")
	opts.Output, _ = flags.GetString("output")
	opts.Print, _ = flags.GetBool("print")
	opts.Exclude, _ = flags.GetStringArray("exclude")

	fileCfg, err := loadFileConfig(logger)
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		if !flags.Changed("threads") && fileCfg.Threads > 0 {
			opts.Threads = fileCfg.Threads
		}
		if !flags.Changed("encoding") && fileCfg.Encoding != "" {
			opts.Encoding = fileCfg.Encoding
		}
		if !flags.Changed("output") && fileCfg.Output != "" {
			opts.Output = fileCfg.Output
		}
		if !flags.Changed("print") && fileCfg.Print {
			opts.Print = true
		}
		opts.Exclude = append(fileCfg.Exclude, opts.Exclude...)
	}

	// Pattern files stack under the flag patterns: the ignore file in
	// the working directory first, then an explicit --exclude-file.
	filePatterns, err := aggregate.LoadPatternFile(ignoreFileName)
	if err != nil {
		return nil, err
	}
	if excludeFile, _ := flags.GetString("exclude-file"); excludeFile != "" {
		extra, err := aggregate.LoadPatternFile(excludeFile)
		if err != nil {
			return nil, err
		}
		filePatterns = append(filePatterns, extra...)
	}
	opts.Exclude = append(filePatterns, opts.Exclude...)

	if pick, _ := flags.GetBool("pick"); pick {
		targets, err := pickTargets(opts.Exclude, logger)
		if err != nil {
			return nil, err
		}
		opts.Targets = targets
	}

	return opts, nil
}

// loadFileConfig reads .promptcat.yaml from the working directory or,
// failing that, the user's home directory. A missing file is not an
// error.
func loadFileConfig(logger *zap.Logger) (*fileConfig, error) {
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, configFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, configFileName))
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", candidate, err)
		}

		cfg := &fileConfig{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", candidate, err)
		}
		logger.Debug("Loaded config file", zap.String("file", candidate))
		return cfg, nil
	}
	return nil, nil
}

// pickTargets expands the working directory under the exclusion
// patterns and lets the user fuzzy-select from the discovered files.
func pickTargets(patterns []string, logger *zap.Logger) ([]string, error) {
	exp := aggregate.Expand([]string{"."}, patterns, logger)

	candidates := make([]string, 0, len(exp.Tasks))
	for _, task := range exp.Tasks {
		candidates = append(candidates, task.Path)
	}
	return picker.Pick(candidates)
}
