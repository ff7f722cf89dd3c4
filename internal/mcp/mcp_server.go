// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/shsat/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the SHSAT MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"SHSAT Score Estimator",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: estimate_score ---
	s.AddTool(mcp.NewTool("estimate_score",
		mcp.WithDescription("Estimate the SHSAT composite score, percentile and per-school chances from raw section scores."),
		mcp.WithNumber("math", mcp.Description("Correct answers on the math section (0-57)."), mcp.Required()),
		mcp.WithNumber("ela", mcp.Description("Correct answers on the ELA section (0-57)."), mcp.Required()),
		mcp.WithString("curve", mcp.Description("Raw-to-scaled curve (linear, blended). Defaults to the configured curve."), mcp.Enum("linear", "blended")),
	), h.handleEstimateScore)

	// --- 2. Tool: get_school_cutoffs ---
	s.AddTool(mcp.NewTool("get_school_cutoffs",
		mcp.WithDescription("List the specialized high schools and their composite score cutoffs in table order."),
	), h.handleGetSchoolCutoffs)

	// --- 3. Tool: get_scale_table ---
	s.AddTool(mcp.NewTool("get_scale_table",
		mcp.WithDescription("Show the scaled score for every raw score from 0 to 57."),
		mcp.WithString("curve", mcp.Description("Raw-to-scaled curve (linear, blended). Defaults to the configured curve."), mcp.Enum("linear", "blended")),
	), h.handleGetScaleTable)

	return s
}

// StartMCPServer starts the SHSAT MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
