package sms

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client sends text messages through the Twilio Messages API.
type Client struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	client     *http.Client
}

func NewClient(accountSID, authToken, from, baseURL string) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Send(ctx context.Context, to, body string) error {
	start := time.Now()

	if c.accountSID == "" || c.authToken == "" || c.from == "" {
		return fmt.Errorf("twilio configuration is not set")
	}

	log.Printf("[SMS] Preparing to send | Recipient=%s | From=%s", to, c.from)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	apiURL := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Printf("[SMS] HTTP error sending to %s: %v", to, err)
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	duration := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[SMS] Failed sending | Recipient=%s | Status=%d | Duration=%v | Response=%s",
			to, resp.StatusCode, duration, string(respBody))
		return fmt.Errorf("sms api error: %s", string(respBody))
	}

	log.Printf("[SMS] Successfully sent | Recipient=%s | Duration=%v", to, duration)
	return nil
}
