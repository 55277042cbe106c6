// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/buildsize/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the buildsize MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Build Size Report Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	s.AddTool(mcp.NewTool("get_size_report",
		mcp.WithDescription("Measure the files of a build output directory and flag sizes above their thresholds."),
		mcp.WithString("path", mcp.Description("Build output directory or single file to measure."), mcp.Required()),
		mcp.WithBoolean("gzip", mcp.Description("Also report compressed sizes.")),
		mcp.WithBoolean("minify", mcp.Description("Also report minified sizes for css, html, js, json, svg and xml files.")),
		mcp.WithBoolean("total", mcp.Description("Append a total row. Defaults to the server configuration.")),
		mcp.WithString("thresholds", mcp.Description("Ceilings as '[selector:]key=value' entries separated by commas, e.g. 'maxSize=4096,*:maxGzippedSize=1024'.")),
		mcp.WithString("exclude", mcp.Description("Comma-separated exclude patterns such as '.map,assets/'.")),
	), h.handleGetSizeReport)

	return s
}

// StartMCPServer starts the buildsize MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
