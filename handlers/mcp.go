package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"slacknotifier/models/api"
	"slacknotifier/usecases"
)

const serverName = "slack-notifier"

const serverInstructions = `Slack notification and communication server.

Use this server to:
- Send notifications when tasks complete or need attention
- Ask the user questions and wait for their reply via Slack
- Communicate asynchronously when the user is away from their terminal

Environment variables required:
- SLACK_BOT_TOKEN: Your Slack bot token (xoxb-...)
- SLACK_DEFAULT_CHANNEL: Optional default channel for messages
- SLACK_USER_ID: Optional user ID for @mentions

The user can reply to your messages in Slack threads, and you can
retrieve their responses using the ask_user tool or get_thread_replies.`

// MCPServer exposes the messaging tools over the Model Context Protocol
type MCPServer struct {
	mcpServer        *mcp.Server
	messagingUseCase usecases.MessagingUseCaseInterface
}

// NewMCPServer creates a new MCP server with all messaging tools registered
func NewMCPServer(messagingUseCase usecases.MessagingUseCaseInterface, version string) (*MCPServer, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: serverInstructions,
	})

	s := &MCPServer{
		mcpServer:        mcpServer,
		messagingUseCase: messagingUseCase,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Run serves the MCP protocol on the given transport until the context is
// cancelled. Blocking.
func (s *MCPServer) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

func (s *MCPServer) registerTools() error {
	notifySchema, err := jsonschema.For[api.NotifyArgs](nil)
	if err != nil {
		return fmt.Errorf("schema for notify: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "notify",
		Description: "Send a notification message to Slack. " +
			"Use this to notify the user about task completion, errors, or when you need their attention.",
		InputSchema: notifySchema,
	}, s.Notify)

	sendSchema, err := jsonschema.For[api.SendMessageArgs](nil)
	if err != nil {
		return fmt.Errorf("schema for send_message: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "send_message",
		Description: "Send a message to a Slack channel or thread. " +
			"Lower-level than notify - use this for conversational messages or to reply in a specific thread.",
		InputSchema: sendSchema,
	}, s.SendMessage)

	askSchema, err := jsonschema.For[api.AskUserArgs](nil)
	if err != nil {
		return fmt.Errorf("schema for ask_user: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "ask_user",
		Description: "Send a question to the user via Slack and wait for their reply. " +
			"Use this when you need user input or a decision. This BLOCKS until the user replies " +
			"in the Slack thread or the timeout is reached.",
		InputSchema: askSchema,
	}, s.AskUser)

	repliesSchema, err := jsonschema.For[api.ThreadRepliesArgs](nil)
	if err != nil {
		return fmt.Errorf("schema for get_thread_replies: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "get_thread_replies",
		Description: "Get replies in a Slack thread. " +
			"Use this to check for new messages in a thread you started.",
		InputSchema: repliesSchema,
	}, s.GetThreadReplies)

	return nil
}

// Notify handles the notify MCP tool call
func (s *MCPServer) Notify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	args api.NotifyArgs,
) (*mcp.CallToolResult, any, error) {
	response := s.messagingUseCase.Send(ctx, args)
	return toolResult(response), response, nil
}

// SendMessage handles the send_message MCP tool call
func (s *MCPServer) SendMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	args api.SendMessageArgs,
) (*mcp.CallToolResult, any, error) {
	response := s.messagingUseCase.Send(ctx, api.NotifyArgs{
		Message:  args.Message,
		Channel:  args.Channel,
		ThreadTS: args.ThreadTS,
	})
	return toolResult(response), response, nil
}

// AskUser handles the ask_user MCP tool call
func (s *MCPServer) AskUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	args api.AskUserArgs,
) (*mcp.CallToolResult, any, error) {
	response := s.messagingUseCase.AskUser(ctx, args)
	return toolResult(response), response, nil
}

// GetThreadReplies handles the get_thread_replies MCP tool call
func (s *MCPServer) GetThreadReplies(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	args api.ThreadRepliesArgs,
) (*mcp.CallToolResult, any, error) {
	response := s.messagingUseCase.GetThreadReplies(ctx, args)
	return toolResult(response), response, nil
}

// toolResult renders a normalized response as JSON text content. Remote
// failures are part of the response shape (success=false), never an MCP
// protocol error, so IsError stays unset.
func toolResult(response any) *mcp.CallToolResult {
	data, err := json.Marshal(response)
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("failed to encode response: %v", err)}},
			IsError: true,
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}
