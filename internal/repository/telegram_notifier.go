package repository

import (
	"context"
	"errors"
	"strings"

	"ChainPulse/internal/domain/models"
	"ChainPulse/internal/domain/repository"
	xhttp "ChainPulse/pkg/http"
)

// DefaultTelegramBaseURL is the public Bot API endpoint.
const DefaultTelegramBaseURL = "https://api.telegram.org"

// TelegramNotifier sends reports through the Telegram Bot API sendMessage call.
type TelegramNotifier struct {
	client    *xhttp.Client
	baseURL   string
	token     string
	parseMode string
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// NewTelegramNotifier creates a Notifier for the given bot token.
func NewTelegramNotifier(client *xhttp.Client, baseURL, token, parseMode string) repository.Notifier {
	if baseURL == "" {
		baseURL = DefaultTelegramBaseURL
	}
	return &TelegramNotifier{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		parseMode: parseMode,
	}
}

func (n *TelegramNotifier) Channel() string { return "telegram" }

// Deliver makes a single sendMessage request to chatID.
func (n *TelegramNotifier) Deliver(ctx context.Context, chatID, text string) error {
	if n.token == "" {
		return n.fail(chatID, errors.New("bot token not configured"))
	}
	if chatID == "" {
		return n.fail(chatID, errors.New("chat id not configured"))
	}

	body := map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	}
	if n.parseMode != "" {
		body["parse_mode"] = n.parseMode
	}

	var resp telegramResponse
	err := n.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     n.baseURL + "/bot" + n.token + "/sendMessage",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	}, &resp)
	if err != nil {
		return n.fail(chatID, n.redact(err))
	}
	if !resp.OK {
		return n.fail(chatID, &TelegramAPIError{Code: resp.ErrorCode, Description: resp.Description})
	}
	return nil
}

func (n *TelegramNotifier) fail(chatID string, err error) error {
	return &models.DeliveryError{Channel: n.Channel(), Destination: chatID, Err: err}
}

// redact keeps the bot token out of error strings, which embed the request URL.
func (n *TelegramNotifier) redact(err error) error {
	msg := err.Error()
	if n.token == "" || !strings.Contains(msg, n.token) {
		return err
	}
	return &redactedError{err: err, secret: n.token}
}

// redactedError hides secret in the message and keeps the chain for errors.Is.
type redactedError struct {
	err    error
	secret string
}

func (e *redactedError) Error() string {
	return strings.ReplaceAll(e.err.Error(), e.secret, "<redacted>")
}

func (e *redactedError) Unwrap() error { return e.err }

// TelegramAPIError is a Bot API response with ok=false.
type TelegramAPIError struct {
	Code        int
	Description string
}

func (e *TelegramAPIError) Error() string {
	return "telegram api: " + e.Description
}
