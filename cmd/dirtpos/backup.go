package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore the full store state",
	}

	export := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the full state as JSON to FILE or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.store.ExportAll()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				cmd.Println(string(data))
				return nil
			}
			if err := os.WriteFile(args[0], data, 0o600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			cmd.Println("wrote", args[0])
			return nil
		},
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace store state with the contents of a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			return a.store.ImportAll(data)
		},
	}

	cmd.AddCommand(export, importCmd)
	return cmd
}
