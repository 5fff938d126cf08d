package sms

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://sms.arkesel.com"

// Client sends text messages through the Arkesel v2 API. The API key
// and sender id are read from the environment on every call; a missing
// key is sent as-is and rejected by the gateway, never a startup error.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client pointed at the production gateway.
func NewClient() *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type sendPayload struct {
	Sender     string   `json:"sender"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

// Send delivers one message to one recipient. The recipient must
// already be in 233xxxxxxxxx form (see NormalizeRecipient). Any
// non-success gateway response or transport error comes back as a
// single error; there is no retry or queuing.
func (c *Client) Send(recipient, message string) error {
	payload := sendPayload{
		Sender:     getEnv("ARKESEL_SENDER_ID", "Arkesel"),
		Message:    message,
		Recipients: []string{recipient},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/api/v2/sms/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", os.Getenv("ARKESEL_API_KEY"))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("sms gateway unreachable")
		return errors.New("could not reach sms gateway")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.New("could not read sms gateway response")
	}

	// Arkesel signals delivery with a "status":"success" field.
	if gjson.GetBytes(respBody, "status").String() != "success" {
		logrus.WithField("response", string(respBody)).Error("sms gateway rejected message")
		if msg := gjson.GetBytes(respBody, "message").String(); msg != "" {
			return errors.New("sms gateway error: " + msg)
		}
		return errors.New("sms gateway error")
	}
	return nil
}

// NormalizeRecipient rewrites a phone number into the Ghana
// international format the gateway expects: digits only, leading "0"
// replaced with "233", anything without a recognized prefix blanket
// prefixed with "233".
func NormalizeRecipient(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch {
	case strings.HasPrefix(digits, "0"):
		return "233" + digits[1:]
	case strings.HasPrefix(digits, "233"):
		return digits
	default:
		return "233" + digits
	}
}

func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists && v != "" {
		return v
	}
	return defaultValue
}
