package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/voxmill/rhasspy-go/client"
)

// SpeechHandler exposes the speak_text tool.
type SpeechHandler struct {
	client *client.Client
}

func NewSpeechHandler(c *client.Client) *SpeechHandler {
	return &SpeechHandler{client: c}
}

// RegisterTools registers the speak_text tool.
func (sh *SpeechHandler) RegisterTools(s *server.MCPServer) error {
	speakTool := mcp.NewTool("speak_text",
		mcp.WithDescription("Queue a sentence to be spoken on a Rhasspy site's speaker. Utterances for one site are spoken in order."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Sentence to speak")),
		mcp.WithString("site_id", mcp.Description("Rhasspy site ID to speak on (default \"default\")")),
		mcp.WithBoolean("wait", mcp.Description("Wait until the site's queue is drained before returning (default false)")),
	)
	s.AddTool(speakTool, sh.handleSpeak)
	return nil
}

func (sh *SpeechHandler) handleSpeak(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	siteID, _ := req.GetArguments()["site_id"].(string)
	wait, _ := req.GetArguments()["wait"].(bool)

	ack, err := sh.client.Say(ctx, siteID, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("speak_text failed: %v", err)), nil
	}
	if wait {
		if err := sh.client.AwaitSiteIdle(ctx, ack.SiteID); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("speak_text wait failed: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("spoken on site %s", ack.SiteID)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("enqueued on site %s", ack.SiteID)), nil
}
