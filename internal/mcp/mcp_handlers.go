package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fairlens/fairlens/core"
	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// configForRequest clones the base config and applies per-request company and
// window overrides.
func (h *toolHandler) configForRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if c := request.GetString("company", ""); c != "" {
		cfg.CompanyID = c
	}
	if s := request.GetString("start", ""); s != "" {
		start, err := contract.ParseWindowTime(s, cfg.Now)
		if err != nil {
			return nil, fmt.Errorf("invalid start: %w", err)
		}
		cfg.StartTime = start
	}
	if e := request.GetString("end", ""); e != "" {
		end, err := contract.ParseWindowTime(e, cfg.Now)
		if err != nil {
			return nil, fmt.Errorf("invalid end: %w", err)
		}
		cfg.EndTime = end
	}
	return cfg, nil
}

func (h *toolHandler) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid report parameters: %v", err)), nil
	}

	snap, err := core.GetSnapshotResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(snap, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid trend parameters: %v", err)), nil
	}

	snap, err := core.GetSnapshotResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	payload := struct {
		MonthlyTrend   []schema.MonthlyBucket `json:"monthly_trend"`
		SystemicIssues []schema.SystemicIssue `json:"systemic_issues"`
	}{
		MonthlyTrend:   snap.MonthlyTrend,
		SystemicIssues: snap.SystemicIssues,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComparePeriods(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid comparison parameters: %v", err)), nil
	}

	snap, err := core.GetSnapshotResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	payload := struct {
		Comparison    schema.PeriodComparison `json:"comparison"`
		TopCategories []schema.TopCategory    `json:"top_categories"`
		Effectiveness schema.Effectiveness    `json:"effectiveness"`
	}{
		Comparison:    snap.Comparison,
		TopCategories: snap.TopCategories,
		Effectiveness: snap.Effectiveness,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCheckCompliance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid compliance parameters: %v", err)), nil
	}

	snap, err := core.GetSnapshotResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("compliance evaluation failed: %v", err)), nil
	}

	payload := struct {
		Performance schema.PerformanceClass `json:"performance"`
		Compliance  schema.Compliance       `json:"compliance"`
	}{
		Performance: snap.Performance,
		Compliance:  snap.Compliance,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
