package cmd

import (
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [documents...]",
	Short: "Start a review chat session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args)
	},
}
