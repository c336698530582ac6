// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/fairlens/fairlens/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the FairLens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"FairLens ESG Reporting Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_report ---
	s.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Build the full ESG reporting analytics snapshot for a company and period."),
		mcp.WithString("company", mcp.Description("Company identifier (defaults to the configured company).")),
		mcp.WithString("start", mcp.Description("Period start (RFC3339, YYYY-MM-DD or relative like '3 months ago').")),
		mcp.WithString("end", mcp.Description("Period end (same formats as start). Defaults to now.")),
	), h.handleGetReport)

	// --- 2. Tool: get_trends ---
	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Get the trailing 12-month monthly trend and recurring category flags for a company."),
		mcp.WithString("company", mcp.Description("Company identifier.")),
		mcp.WithString("start", mcp.Description("Period start for the surrounding analysis window.")),
		mcp.WithString("end", mcp.Description("Period end for the surrounding analysis window.")),
	), h.handleGetTrends)

	// --- 3. Tool: compare_periods ---
	s.AddTool(mcp.NewTool("compare_periods",
		mcp.WithDescription("Compare the reporting period against the previous equal-duration period, with category rankings and effectiveness scoring."),
		mcp.WithString("company", mcp.Description("Company identifier.")),
		mcp.WithString("start", mcp.Description("Period start."), mcp.Required()),
		mcp.WithString("end", mcp.Description("Period end."), mcp.Required()),
	), h.handleComparePeriods)

	// --- 4. Tool: check_compliance ---
	s.AddTool(mcp.NewTool("check_compliance",
		mcp.WithDescription("Evaluate GRI data completeness and resolution quality for a company and period."),
		mcp.WithString("company", mcp.Description("Company identifier.")),
		mcp.WithString("start", mcp.Description("Period start.")),
		mcp.WithString("end", mcp.Description("Period end.")),
	), h.handleCheckCompliance)

	return s
}

// StartMCPServer starts the FairLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
