// Command filekit exposes the toolkit on the command line: file discovery
// with wildcard and extension matching, file counting, directory creation
// with outcome reporting, and content checksums.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/avendal/filekit/config"
	"github.com/avendal/filekit/create"
	"github.com/avendal/filekit/fileio"
	"github.com/avendal/filekit/internal/util"
	"github.com/avendal/filekit/pattern"
	"github.com/avendal/filekit/search"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose    int
		configPath string
		cfg        *config.Config
	)

	root := &cobra.Command{
		Use:           "filekit",
		Short:         "File-system helper toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			override := &config.ConfigOverride{}
			if configPath != "" {
				fileOverride, err := config.LoadConfigOverrideFile(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				override = fileOverride
			}
			// The flag wins over the config file when set explicitly.
			if cmd.Flags().Changed("verbose") || override.Verbose == nil {
				override.Verbose = &verbose
			}
			cfg = config.NewConfig(override)
			util.InitializeLogger(cfg.LogLvl)
			return nil
		},
	}
	root.PersistentFlags().IntVarP(&verbose, "verbose", "v", config.DefaultVerbosity,
		"Log verbosity level between 1 (error) and 5 (trace)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (yaml or json)")

	root.AddCommand(
		newFindCmd(&cfg),
		newCountCmd(&cfg),
		newMkdirCmd(),
		newChecksumCmd(),
	)
	return root
}

func newFindCmd(cfg **config.Config) *cobra.Command {
	var (
		exts        []string
		excludes    []string
		noRecursive bool
		dirs        bool
	)

	cmd := &cobra.Command{
		Use:   "find <root> [wildcard]",
		Short: "Find files under a directory by wildcard or extension",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := (*cfg).Options()
			opts.Recursive = !noRecursive
			opts.IncludeDirs = dirs
			if len(args) == 2 {
				opts.Pattern = pattern.Wildcard(args[1])
			} else if len(exts) > 0 {
				opts.Pattern = pattern.Extensions(exts...)
			}
			for _, name := range excludes {
				opts.Exclude = append(opts.Exclude, search.MatchName(name))
			}

			w := search.New(afero.NewOsFs())
			found, err := w.Find(args[0], opts)
			if err != nil {
				return err
			}
			for _, n := range found {
				fmt.Fprintln(cmd.OutOrStdout(), n.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "Match by extension instead of wildcard (repeatable)")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "Entry names to exclude from the walk (repeatable)")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "Only visit direct children of the root")
	cmd.Flags().BoolVar(&dirs, "dirs", false, "Include directory entries in the results")
	return cmd
}

func newCountCmd(cfg **config.Config) *cobra.Command {
	var (
		noRecursive bool
		dirs        bool
	)

	cmd := &cobra.Command{
		Use:   "count <root>",
		Short: "Count files under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := (*cfg).Options()
			w := search.New(afero.NewOsFs())
			total, err := w.Count(args[0], search.CountOptions{
				Recursive:    !noRecursive,
				IncludeDirs:  dirs,
				Exclude:      opts.Exclude,
				StrictErrors: opts.StrictErrors,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "Only count direct children of the root")
	cmd.Flags().BoolVar(&dirs, "dirs", false, "Count directory entries as well")
	return cmd
}

func newMkdirCmd() *cobra.Command {
	var parents bool

	cmd := &cobra.Command{
		Use:   "mkdir <path>...",
		Short: "Create directories, reporting each outcome",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			failed := false
			for _, path := range args {
				var state create.State
				if parents {
					state = create.NewDirectoryAll(fs, path)
				} else {
					state = create.NewDirectory(fs, path)
				}
				if state == create.StateFailed {
					failed = true
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, colorState(state))
			}
			if failed {
				return fmt.Errorf("some directories could not be created")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "Create missing parent directories as well")
	return cmd
}

func colorState(state create.State) string {
	switch state {
	case create.StateCreated:
		return color.GreenString(state.String())
	case create.StateAlreadyExists:
		return color.YellowString(state.String())
	case create.StateFailed:
		return color.RedString(state.String())
	default:
		return state.String()
	}
}

func newChecksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <file>...",
		Short: "Print the xxh3-128 checksum of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			for _, path := range args {
				sum, err := fileio.Checksum(fs, path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", sum, path)
			}
			return nil
		},
	}
}
