package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"apnidisha/internal/config"
)

// ErrCallNotConfigured means Twilio credentials are missing.
var ErrCallNotConfigured = errors.New("twilio credentials not configured")

// CallService places outbound quiz calls through the Twilio REST API,
// pointing the call at the voice start webhook.
type CallService struct {
	cfg     *config.Config
	client  *http.Client
	baseURL string
}

// NewCallService creates a call service.
func NewCallService(cfg *config.Config) *CallService {
	return &CallService{
		cfg:     cfg,
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://api.twilio.com/2010-04-01",
	}
}

// IsEnabled reports whether outbound calling is configured.
func (s *CallService) IsEnabled() bool {
	return s.cfg.TwilioAccountSID != "" && s.cfg.TwilioAuthToken != "" &&
		s.cfg.TwilioPhoneNumber != "" && s.cfg.PublicBaseURL != ""
}

// PlaceCall starts an outbound call to phone and returns the call SID.
func (s *CallService) PlaceCall(ctx context.Context, phone string) (string, error) {
	if !s.IsEnabled() {
		return "", ErrCallNotConfigured
	}

	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", s.cfg.TwilioPhoneNumber)
	form.Set("Url", strings.TrimSuffix(s.cfg.PublicBaseURL, "/")+"/api/voice/start")

	endpoint := fmt.Sprintf("%s/Accounts/%s/Calls.json", s.baseURL, s.cfg.TwilioAccountSID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.cfg.TwilioAccountSID, s.cfg.TwilioAuthToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, body)
	}

	var created struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", err
	}
	return created.SID, nil
}
