package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	// Ping tool - liveness check
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ping",
		Description: "Test tool - responds with pong or echoes input",
	}, NewPingHandler(deps))

	// List all available procedures
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_procedures",
		Description: "List all available regulatory procedures with IDs and online availability",
	}, NewListProceduresHandler(deps))

	// Full procedure record with step outline
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_procedure_details",
		Description: "Get full details of a procedure by ID, including its step outline",
	}, NewGetProcedureDetailsHandler(deps))

	// Single step with requirements, costs, timeframe, contacts
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_procedure_step",
		Description: "Get one step of a procedure: requirements, costs, timeframe and contacts",
	}, NewGetProcedureStepHandler(deps))

	// Keyword search over procedures
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_procedures",
		Description: "Search regulatory procedures by keyword",
	}, NewSearchProceduresHandler(deps))
}
