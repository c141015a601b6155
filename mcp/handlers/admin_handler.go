package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/voxmill/rhasspy-go/client"
)

// AdminHandler exposes server maintenance tools.
type AdminHandler struct {
	client *client.Client
}

func NewAdminHandler(c *client.Client) *AdminHandler {
	return &AdminHandler{client: c}
}

// RegisterTools registers train_profile and server_version.
func (ah *AdminHandler) RegisterTools(s *server.MCPServer) error {
	trainTool := mcp.NewTool("train_profile",
		mcp.WithDescription("Retrain the voice assistant's profile from its sentences, custom words, and slots. Returns a success/failure report."),
		mcp.WithBoolean("no_cache", mcp.Description("Clear the training cache first (default false)")),
	)
	s.AddTool(trainTool, ah.handleTrain)

	versionTool := mcp.NewTool("server_version",
		mcp.WithDescription("Return the Rhasspy server's version string."),
	)
	s.AddTool(versionTool, ah.handleVersion)
	return nil
}

func (ah *AdminHandler) handleTrain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noCache, _ := req.GetArguments()["no_cache"].(bool)

	report, err := ah.client.Train(ctx, noCache)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("train_profile failed: %v", err)), nil
	}

	b, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (ah *AdminHandler) handleVersion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	version, err := ah.client.Version(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("server_version failed: %v", err)), nil
	}
	return mcp.NewToolResultText(version), nil
}
