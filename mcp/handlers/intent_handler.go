package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/voxmill/rhasspy-go/client"
)

// IntentHandler exposes intent recognition tools.
type IntentHandler struct {
	client *client.Client
}

func NewIntentHandler(c *client.Client) *IntentHandler {
	return &IntentHandler{client: c}
}

// RegisterTools registers the recognize_intent and wait_for_command tools.
func (ih *IntentHandler) RegisterTools(s *server.MCPServer) error {
	recognizeTool := mcp.NewTool("recognize_intent",
		mcp.WithDescription("Recognize a structured intent from a sentence of text. Returns the server's intent JSON (intent name, slots, confidence)."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Sentence to recognize")),
		mcp.WithBoolean("handle", mcp.Description("Have the server also forward the intent to its configured handler (default false)")),
	)
	s.AddTool(recognizeTool, ih.handleRecognize)

	waitTool := mcp.NewTool("wait_for_command",
		mcp.WithDescription("Wake the voice assistant so it listens for a spoken command, then return the recognized intent JSON. Blocks until a command is heard."),
		mcp.WithBoolean("handle", mcp.Description("Have the server also forward the intent to its configured handler (default false)")),
	)
	s.AddTool(waitTool, ih.handleWait)
	return nil
}

func (ih *IntentHandler) handleRecognize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	handle, _ := req.GetArguments()["handle"].(bool)

	intent, err := ih.client.TextToIntent(ctx, text, handle)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recognize_intent failed: %v", err)), nil
	}

	b, _ := json.MarshalIndent(intent, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (ih *IntentHandler) handleWait(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	handle, _ := req.GetArguments()["handle"].(bool)

	intent, err := ih.client.ListenForCommand(ctx, handle)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("wait_for_command failed: %v", err)), nil
	}

	b, _ := json.MarshalIndent(intent, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
