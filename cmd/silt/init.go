package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/silt"
	"github.com/aretw0/silt/internal/platform"
	"github.com/spf13/cobra"
)

var initBranch string

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize a repository skeleton",
	Long: `Create the .git metadata skeleton in the given directory (default:
the current directory). Re-running init on an existing repository is a
no-op: files that already exist are never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		target := cwd
		if len(args) > 0 {
			target = args[0]
			if !filepath.IsAbs(target) {
				target = filepath.Join(cwd, target)
			}
		}

		branch := initBranch
		if branch == "" {
			// The optional .silt.yaml next to the target supplies a default.
			cfg, err := platform.LoadFileConfig(target)
			if err != nil {
				fatal("Failed to read config", err)
			}
			branch = cfg.DefaultBranch
		}

		layout, err := silt.Init(target,
			silt.WithLogger(slog.Default()),
			silt.WithDefaultBranch(branch),
		)
		if err != nil {
			fatal("Failed to initialize repository", err)
		}

		fmt.Println("Initialized empty silt repository in", layout.GitDir())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initBranch, "initial-branch", "b", "", "Name of the initial branch (default: main)")
}
