package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sheisstarwithoutmoon/SafeLink/internal/config"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/domain"
)

const defaultBaseURL = "https://api.twilio.com"

// Client sends SMS messages through the Twilio Messages REST API.
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string
	client     *http.Client
}

func NewClient(cfg *config.Config) *Client {
	base := cfg.TwilioBaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL:    base,
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioFromNumber,
		client: &http.Client{
			Timeout: cfg.TwilioTimeout,
		},
	}
}

type messageResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Send performs one form-encoded POST to the Messages endpoint. It never
// retries; the caller owns the retry policy.
func (c *Client) Send(ctx context.Context, to, body string) (*domain.Receipt, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var mr messageResponse
	decodeErr := json.Unmarshal(raw, &mr)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && mr.Message != "" {
			return nil, fmt.Errorf("gateway rejected message: %s (code %d)", mr.Message, mr.Code)
		}
		return nil, fmt.Errorf("unexpected status code: %d body=%q", resp.StatusCode, string(raw))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode json: %w body=%q", decodeErr, string(raw))
	}
	if mr.SID == "" {
		return nil, fmt.Errorf("missing sid in response body=%q", string(raw))
	}

	return &domain.Receipt{MessageID: mr.SID, Status: mr.Status}, nil
}
