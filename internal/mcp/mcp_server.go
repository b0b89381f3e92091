// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/dietmarja/curricula/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Curricula MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Curricula Selection Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: select_curriculum ---
	s.AddTool(mcp.NewTool("select_curriculum",
		mcp.WithDescription("Select a budget-constrained set of curriculum modules for a topic, role, and EQF level."),
		mcp.WithString("catalogue_path", mcp.Description("Path to the module catalogue JSON file (defaults to the stored snapshot).")),
		mcp.WithString("profile_path", mcp.Description("Path to a competency profile JSON file for competency-driven selection.")),
		mcp.WithString("topic", mcp.Description("Target topic for the curriculum (e.g. 'Carbon Footprint Measurement').")),
		mcp.WithString("role", mcp.Description("Professional role code (e.g. DSL, DSM, DAN).")),
		mcp.WithNumber("eqf_level", mcp.Description("Target EQF level (4-8). Defaults to 6.")),
		mcp.WithNumber("target_ects", mcp.Description("Target credit budget in ECTS points. Defaults to 30.")),
	), h.handleSelectCurriculum)

	// --- 2. Tool: score_modules ---
	s.AddTool(mcp.NewTool("score_modules",
		mcp.WithDescription("Rank catalogue modules by topic and role relevance without selecting a curriculum."),
		mcp.WithString("catalogue_path", mcp.Description("Path to the module catalogue JSON file (defaults to the stored snapshot).")),
		mcp.WithString("topic", mcp.Description("Target topic to score against.")),
		mcp.WithString("role", mcp.Description("Professional role code.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleScoreModules)

	return s
}

// StartMCPServer starts the Curricula MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
