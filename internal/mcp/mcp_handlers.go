package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huangsam/shsat/core"
	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

// configFor clones the base config and applies the optional curve argument.
func (h *toolHandler) configFor(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if c := request.GetString("curve", ""); c != "" {
		if _, ok := schema.ValidCurves[schema.CurveName(c)]; !ok {
			return nil, fmt.Errorf("invalid curve %q", c)
		}
		cfg.Curve = schema.CurveName(c)
	}
	return cfg, nil
}

func (h *toolHandler) handleEstimateScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mathRaw, err := request.RequireInt("math")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid math score: %v", err)), nil
	}
	elaRaw, err := request.RequireInt("ela")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid ela score: %v", err)), nil
	}

	est, err := core.GetEstimateResult(ctx, cfg, h.mgr, mathRaw, elaRaw)
	if err != nil {
		var invalid *core.InvalidInputError
		if errors.As(err, &invalid) {
			return mcp.NewToolResultError(fmt.Sprintf("Please enter valid numbers! %v", err)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("estimate failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(est, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSchoolCutoffs(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(h.baseCfg.Schools.Schools(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetScaleTable(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	curve, err := core.CurveFor(cfg.Curve)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	jsonData, _ := json.MarshalIndent(core.ScaleTable(curve), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
