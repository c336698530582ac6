package cmd

import (
	"github.com/fairlens/fairlens/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the FairLens MCP server",
	Long:  `Launch an MCP server that allows AI agents to query ESG reporting analytics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Output stays quiet in MCP mode to avoid polluting stdio
		// which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
