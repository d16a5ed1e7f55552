package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"slacknotifier/clients/slack"
	"slacknotifier/config"
	"slacknotifier/handlers"
	messagingservice "slacknotifier/services/messaging"
	messagingusecase "slacknotifier/usecases/messaging"
)

const version = "1.0.0"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slackClient := slack.NewSlackClient(cfg.SlackConfig.BotToken)
	messagingService := messagingservice.NewMessagingService(slackClient, cfg.SlackConfig)

	// Verify the bot token before serving any tools
	botUserID, err := messagingService.BotUserID(ctx)
	if err != nil {
		log.Fatalf("❌ Slack authentication failed: %v", err)
	}
	log.Printf("✅ Authenticated with Slack as bot user %s", botUserID)

	messagingUseCase := messagingusecase.NewMessagingUseCase(messagingService)

	server, err := handlers.NewMCPServer(messagingUseCase, version)
	if err != nil {
		log.Fatalf("❌ Failed to create MCP server: %v", err)
	}

	log.Printf("✅ MCP server listening on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("❌ MCP server error: %v", err)
	}

	log.Printf("👋 MCP server shut down")
}
