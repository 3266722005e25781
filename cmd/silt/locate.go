package main

import (
	"fmt"
	"os"

	"github.com/aretw0/silt"
	"github.com/spf13/cobra"
)

// locateCmd represents the root command (repository discovery)
var locateCmd = &cobra.Command{
	Use:   "root",
	Short: "Print the root directory of the enclosing repository",
	Long: `Walk from the current directory through its ancestors and print the
nearest directory containing a .git entry. Exits with an error if no
repository encloses the current directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		layout, err := silt.LocateFromCwd()
		if err != nil {
			if silt.IsNotARepository(err) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fatal("Failed to locate repository", err)
		}

		fmt.Println(layout.Root())
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
