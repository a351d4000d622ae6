package chart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tartampluch/go-ziwei/internal/config"
)

// Validator defines the contract for the out-of-band remote validation
// call. It is fire-and-forget: the orchestrator never awaits its outcome
// and a failure never affects the returned chart.
type Validator interface {
	Validate(ctx context.Context, endpoint string, payload ValidationPayload) error
}

// ValidationPayload is the opaque JSON body sent to the remote service.
type ValidationPayload struct {
	Fingerprint string `json:"fingerprint"`
	LunarYear   int    `json:"lunarYear"`
	LunarMonth  int    `json:"lunarMonth"`
	LunarDay    int    `json:"lunarDay"`
	MingIndex   int    `json:"mingIndex"`
	Version     string `json:"version"`
}

// HTTPValidator implements Validator using the standard net/http library.
type HTTPValidator struct {
	Client *http.Client
}

// NewHTTPValidator creates a validator with the configured timeout.
func NewHTTPValidator() *HTTPValidator {
	return &HTTPValidator{
		Client: &http.Client{
			Timeout: config.ValidationTimeout,
		},
	}
}

// Validate POSTs the payload to the endpoint. The URL is checked and
// sanitized for logging; only the status code is inspected on return.
func (v *HTTPValidator) Validate(ctx context.Context, endpoint string, payload ValidationPayload) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}
	safeURL := u.Scheme + "://" + u.Host + u.Path

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrEncodeChart, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	req.Header.Set(config.HeaderContentType, config.MimeJSON)

	resp, err := v.Client.Do(req)
	if err != nil {
		return fmt.Errorf("network error during validation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("validation service returned status: %d %s", resp.StatusCode, resp.Status)
	}

	slog.Debug(config.MsgValidationSent,
		config.LogKeyComponent, config.CompValidator,
		config.LogKeyURL, safeURL,
		config.LogKeyStatus, resp.StatusCode,
	)
	return nil
}
