// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer sends transactional email through the Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Client posts messages to Resend.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	attempts   uint64
	backoff    time.Duration
}

// NewClient returns a Resend client, or nil when apiKey is empty, which
// disables email.
func NewClient(apiKey string, timeout time.Duration) *Client {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		endpoint:   defaultResendEndpoint,
		httpClient: &http.Client{Timeout: timeout},
		attempts:   3,
		backoff:    200 * time.Millisecond,
	}
}

// Send delivers m and returns the provider's message id. Network errors,
// 429 and 5xx responses are retried; other 4xx responses fail immediately.
func (c *Client) Send(ctx context.Context, m Message) (string, error) {
	if c == nil {
		return "", errors.New("resend client is nil")
	}
	if strings.TrimSpace(m.To) == "" {
		return "", errors.New("missing recipient email")
	}
	if strings.TrimSpace(m.Subject) == "" {
		return "", errors.New("missing subject")
	}
	if strings.TrimSpace(m.HTML) == "" {
		return "", errors.New("missing html body")
	}

	payload := resendSendRequest{
		From:    m.From,
		To:      []string{m.To},
		Subject: m.Subject,
		HTML:    m.HTML,
	}
	if m.ReplyTo != "" {
		payload.ReplyTo = []string{m.ReplyTo}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("resend marshal payload: %w", err)
	}

	var id string
	b := retry.WithMaxRetries(c.attempts-1, retry.NewExponential(c.backoff))
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		var sendErr error
		id, sendErr = c.post(ctx, raw)
		return sendErr
	})
	return id, err
}

func (c *Client) post(ctx context.Context, raw []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("resend create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", retry.RetryableError(fmt.Errorf("resend request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("resend send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return "", retry.RetryableError(err)
		}
		return "", err
	}

	var out resendSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("resend decode response: %w", err)
	}
	if strings.TrimSpace(out.ID) == "" {
		return "", errors.New("resend response missing id")
	}
	return out.ID, nil
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo []string `json:"reply_to,omitempty"`
}

type resendSendResponse struct {
	ID string `json:"id"`
}
