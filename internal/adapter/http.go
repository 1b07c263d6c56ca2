// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

const (
	// pushSendPath is the relay endpoint receiving one notification.
	pushSendPath = "/push/send"

	// signatureHeader carries the hex HMAC-SHA256 of the request body.
	signatureHeader = "X-Signature"
)

type httpPushRelay struct {
	client  *utils.HTTPClient
	signKey string

	logger *logger.Logger
}

// NewPushRelay returns the HTTP relay for cfg, or a no-op relay when no
// relay URL is configured.
func NewPushRelay(cfg config.Adapter, logger *logger.Logger) (PushRelay, error) {
	if strings.TrimSpace(cfg.PushRelayURL) == "" {
		logger.Info().Str("func", "adapter.NewPushRelay").Msg("push relay is not configured, notifications are dropped")
		return NewNoopPushRelay(), nil
	}
	return NewHTTPPushRelay(cfg, logger)
}

// NewHTTPPushRelay constructs an HTTP implementation of [PushRelay].
// It normalises and validates cfg.PushRelayURL and configures the underlying
// HTTP client with the resolved base URL and request timeout.
func NewHTTPPushRelay(cfg config.Adapter, logger *logger.Logger) (PushRelay, error) {
	baseURL, err := normalizeBaseURL(cfg.PushRelayURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRelayAddress, err)
	}

	return &httpPushRelay{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		signKey: cfg.PushRelayKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [PushRelay]. It POSTs the notification as JSON to
// POST /push/send and signs the body when a relay key is configured.
func (h *httpPushRelay) Send(ctx context.Context, notification models.PushNotification) error {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("encode push notification: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetBody(body)
	if h.signKey != "" {
		req.SetHeader(signatureHeader, utils.HashBytes(body, h.signKey))
	}

	resp, err := req.Post(pushSendPath)
	if err != nil {
		log.Err(err).Str("func", "httpPushRelay.Send").Int("type", int(notification.Type)).Msg("push request failed")
		return fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpPushRelay.Send").Int("status", resp.StatusCode()).Msg("push rejected by relay")
		return err
	}

	return nil
}

type noopPushRelay struct{}

// NewNoopPushRelay returns a [PushRelay] that drops every notification.
func NewNoopPushRelay() PushRelay {
	return noopPushRelay{}
}

func (noopPushRelay) Send(context.Context, models.PushNotification) error {
	return nil
}
