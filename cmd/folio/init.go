package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/scaffold"
)

var initCmd = &cobra.Command{
	Use:     "init <dir>",
	Aliases: []string{"i"},
	Short:   "Create a new site directory with starter content",
	Args:    cobra.ExactArgs(1),
	RunE:    runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := args[0]
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Creating new folio site: %s\n\n", dir)

	created, err := scaffold.Write(dir, scaffold.NewData(dir))
	if err != nil {
		return err
	}
	for _, f := range created {
		fmt.Fprintf(out, "  created %s\n", f)
	}

	fmt.Fprintf(out, "\nDone! Next steps:\n\n")
	fmt.Fprintf(out, "  cd %s\n", dir)
	fmt.Fprintf(out, "  cp .env.example .env\n")
	fmt.Fprintf(out, "  # edit content.yaml\n")
	fmt.Fprintf(out, "  folio serve\n\n")
	return nil
}
