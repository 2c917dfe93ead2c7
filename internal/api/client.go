// Package api is the typed client for the formation backend REST API.
// The backend owns all data; this frontend only relays requests and
// renders what comes back.
package api

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

	"go.uber.org/zap"

	"oyokai/internal/models"
)

// ErrUnauthorized is returned when the backend answers 401. Callers must
// tear the session down and send the operator back to the login page.
var ErrUnauthorized = errors.New("session expirée")

// Error is a structured failure from the backend (any non-2xx response
// other than 401).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Envelope is the JSON wrapper every backend response uses.
type Envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
	Message string           `json:"message,omitempty"`
	Token   string           `json:"token,omitempty"`
	User    *models.AuthUser `json:"user,omitempty"`
}

// failureMessage picks the human-readable reason out of an error payload.
func (e *Envelope) failureMessage() string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return "Une erreur est survenue"
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// Call performs one backend request. endpoint is relative to the base
// URL; token, when non-empty, rides along as a bearer credential. Every
// request is JSON in, JSON out.
func (c *Client) Call(ctx context.Context, method, endpoint string, payload any, token string) (*Envelope, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend unreachable",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("erreur de connexion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("réponse illisible du serveur: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		c.log.Info("backend rejected request",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return nil, &Error{Status: resp.StatusCode, Message: env.failureMessage()}
	}
	return &env, nil
}

// dataAs decodes an envelope's data field into a concrete payload type.
func dataAs[T any](env *Envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("réponse illisible du serveur: %w", err)
	}
	return out, nil
}
