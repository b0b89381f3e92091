package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dietmarja/curricula/core"
	"github.com/dietmarja/curricula/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleSelectCurriculum(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("catalogue_path", ""); p != "" {
		cfg.CataloguePath = p
	}
	if p := request.GetString("profile_path", ""); p != "" {
		cfg.ProfilePath = p
	}
	if t := request.GetString("topic", ""); t != "" {
		cfg.Topic = t
	}
	if r := request.GetString("role", ""); r != "" {
		cfg.Role = r
	}
	if l := request.GetInt("eqf_level", 0); l > 0 {
		cfg.EQFLevel = l
	}
	if e := request.GetFloat("target_ects", 0); e > 0 {
		cfg.TargetECTS = e
	}

	result, err := core.GetSelectionResult(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("selection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScoreModules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("catalogue_path", ""); p != "" {
		cfg.CataloguePath = p
	}
	if t := request.GetString("topic", ""); t != "" {
		cfg.Topic = t
	}
	if r := request.GetString("role", ""); r != "" {
		cfg.Role = r
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, err := core.GetScoredModules(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
