package telegram

import (
	"context"
	"fmt"

	httpclient "staybook/pkg/client"
	apperrors "staybook/pkg/errors"
)

// Client sends messages through the Telegram Bot API.
type Client struct {
	http   *httpclient.HttpClient
	chatID string
}

// NewClient builds a client for one bot and one target chat. baseURL is
// the API prefix without the token, e.g. "https://api.telegram.org/bot".
func NewClient(baseURL, botToken, chatID string) *Client {
	return &Client{
		http:   httpclient.NewHttpClient(baseURL + botToken),
		chatID: chatID,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// SendMessage posts a Markdown message to the configured chat.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	resp, err := c.http.POST(ctx, "/sendMessage", sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}

	var body sendMessageResponse
	if err := resp.DecodeJSON(&body); err != nil {
		return fmt.Errorf("telegram returned undecodable response (status %d): %w", resp.StatusCode, err)
	}
	if !body.OK {
		return fmt.Errorf("telegram rejected message (status %d): %s", resp.StatusCode, body.Description)
	}

	return nil
}

type getMeResponse struct {
	OK     bool `json:"ok"`
	Result struct {
		Username string `json:"username"`
	} `json:"result"`
	Description string `json:"description,omitempty"`
}

// CheckBot verifies the configured token against the Bot API and
// returns the bot username. Called once at startup before consuming.
func (c *Client) CheckBot(ctx context.Context) (string, error) {
	resp, err := c.http.GET(ctx, "/getMe")
	if err != nil {
		appErr := apperrors.Unavailable("Telegram Bot API")
		appErr.Err = err
		return "", appErr
	}

	var body getMeResponse
	if err := resp.DecodeJSON(&body); err != nil {
		return "", fmt.Errorf("telegram returned undecodable response (status %d): %w", resp.StatusCode, err)
	}
	if !body.OK {
		return "", fmt.Errorf("telegram rejected token (status %d): %s", resp.StatusCode, body.Description)
	}

	return body.Result.Username, nil
}
