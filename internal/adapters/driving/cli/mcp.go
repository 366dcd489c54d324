package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shotsearch/internal/adapters/driving/mcp"
	"github.com/custodia-labs/shotsearch/internal/core/services"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// portSearchSpan is how far past a busy port mcp serve looks for a free one.
const portSearchSpan = 10

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve <index.json>",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server over a loaded index.

The server exposes the search, list_entries and get_entry tools, plus the
shotsearch://index and shotsearch://entries/{name} resources. Searches made
through the server write the results file like any other search.

By default the server communicates over stdio using JSON-RPC. Use --port (or
the mcp.port setting) to serve streamable HTTP instead. When the port is
busy the next free port within 10 is used.

Examples:
  # Stdio mode
  shotsearch mcp serve shots.json

  # HTTP mode (for MCP Inspector, remote access)
  shotsearch mcp serve --port 8080 shots.json`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	d, err := loadDeps()
	if err != nil {
		return err
	}
	settings := currentSettings(d)
	if !cmd.Flags().Changed("port") {
		port = settings.MCPPort
	}

	search, err := openIndex(cmd.Context(), d, args[0])
	if err != nil {
		return err
	}

	ports := &mcp.Ports{
		Search:  search,
		Sink:    services.NewResultSink(nil, resultWriter(d, settings)),
		History: historyFor(d, settings),
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		free, err := services.FindAvailablePort(port, port+portSearchSpan)
		if err != nil {
			return err
		}
		if free != port {
			logger.Warn("Port %d is busy, using %d", port, free)
		}
		addr := fmt.Sprintf(":%d", free)
		cmd.PrintErrf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
