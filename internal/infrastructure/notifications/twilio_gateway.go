package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingTwilioCredentials = errors.New("missing TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN or TWILIO_FROM_NUMBER")
)

const twilioAPIBase = "https://api.twilio.com"

// TwilioGateway dispatches SMS through the Twilio Messages API over plain
// HTTP. Twilio has no Go SDK in use here; the API is a single form-encoded
// POST.
//
// Env vars:
//   - TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_FROM_NUMBER
//   - SMS_GATEWAY_MOCK (1/true/yes/on/mock skips the provider entirely)
type TwilioGateway struct {
	accountSid string
	authToken  string
	fromNumber string
	baseURL    string
	client     *http.Client
	mockMode   bool
}

var _ interfaces.ISmsGateway = (*TwilioGateway)(nil)

func NewTwilioGateway() (*TwilioGateway, error) {
	if isSmsGatewayMockEnabled() {
		log.Printf("[sms][gateway] mock mode enabled")
		return &TwilioGateway{mockMode: true}, nil
	}

	sid := os.Getenv("TWILIO_ACCOUNT_SID")
	token := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")
	if sid == "" || token == "" || from == "" {
		return nil, ErrMissingTwilioCredentials
	}

	return &TwilioGateway{
		accountSid: sid,
		authToken:  token,
		fromNumber: from,
		baseURL:    twilioAPIBase,
		client:     &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type twilioMessageResponse struct {
	Sid     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SendSms posts the message to the provider and returns its sid.
func (g *TwilioGateway) SendSms(ctx context.Context, to, body string) (string, error) {
	if g.mockMode {
		sid := "SM" + strings.ReplaceAll(uuid.NewString(), "-", "")
		log.Printf("[sms][gateway] mock send to=%s len=%d sid=%s", to, len(body), sid)
		return sid, nil
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", g.baseURL, g.accountSid)
	form := url.Values{}
	form.Set("From", g.fromNumber)
	form.Set("To", normalizePhone(to))
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.accountSid, g.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("twilio response read failed: %w", err)
	}

	var parsed twilioMessageResponse
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("twilio api error (status %d): %s", resp.StatusCode, parsed.Message)
	}
	if parsed.Sid == "" {
		return "", fmt.Errorf("twilio response missing sid")
	}

	log.Printf("[sms][gateway] sent to=%s sid=%s status=%s", to, parsed.Sid, parsed.Status)
	return parsed.Sid, nil
}

// normalizePhone ensures the number carries a country prefix; bare national
// numbers default to Brazil.
func normalizePhone(phone string) string {
	p := strings.TrimSpace(phone)
	if strings.HasPrefix(p, "+") {
		return p
	}
	return "+55" + p
}

func isSmsGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SMS_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
