// ABOUTME: CLI command for running the MCP server over stdio.
// ABOUTME: Exposes the workout log to MCP-compatible assistants.
package main

import (
	"fmt"

	"github.com/harperreed/liftlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol server",
	Long: `Run the Model Context Protocol server over stdio.

Exposes tools for adding exercises, logging sets, and querying history and
personal bests, plus resources for today's workout and the exercise catalog.
Intended to be launched by an MCP client, not interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := mcp.NewServer(store)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return srv.Serve(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the liftlog version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("liftlog 1.0.0")
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
