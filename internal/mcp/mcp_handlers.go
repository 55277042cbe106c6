package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/buildsize/core"
	"github.com/huangsam/buildsize/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleGetSizeReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Gzip = request.GetBool("gzip", cfg.Gzip)
	cfg.Minify = request.GetBool("minify", cfg.Minify)
	cfg.Total = request.GetBool("total", cfg.Total)
	if ex := request.GetString("exclude", ""); ex != "" {
		for p := range strings.SplitSeq(ex, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.Excludes = append(cfg.Excludes, trimmed)
			}
		}
	}

	if err := contract.RevalidateReport(cfg, request.GetString("path", ""), request.GetString("thresholds", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid report parameters: %v", err)), nil
	}

	report, _, err := core.GetSizeReport(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("size report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
