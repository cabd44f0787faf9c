package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <claim...>",
	Short: "Verify a single claim",
	Example: `  verdict ask "the great wall is visible from space"
  verdict ask --raw water boils at 100C`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newQueryClient(cmd)
		if err != nil {
			return err
		}
		return client.Submit(cmd.Context(), strings.Join(args, " "))
	},
}
