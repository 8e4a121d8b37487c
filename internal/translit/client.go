// Package translit converts phonetically typed text into the target script
// through a remote input-tools service. The conversion is best-effort by
// contract: any failure falls back to the original input silently, so the
// document assembly path never observes transliteration errors.
package translit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://inputtools.google.com/request"

// Client calls an input-tools transliteration endpoint with a fixed
// input-method identifier (e.g. "ml-t-i0-und" for phonetic Malayalam).
type Client struct {
	baseURL     string
	inputMethod string
	httpClient  *http.Client
	log         zerolog.Logger
}

// New builds a transliteration client. Empty baseURL and nil httpClient
// fall back to usable defaults.
func New(baseURL, inputMethod string, httpClient *http.Client, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 4 * time.Second}
	}
	return &Client{
		baseURL:     baseURL,
		inputMethod: inputMethod,
		httpClient:  httpClient,
		log:         log,
	}
}

// Transliterate converts text to the target script. On any failure
// (transport error, non-200 status, unexpected response shape, service-
// reported failure) it returns the input unchanged.
func (c *Client) Transliterate(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	converted, err := c.request(ctx, text)
	if err != nil {
		c.log.Warn().Err(err).Msg("transliteration failed, keeping original text")
		return text
	}
	return converted
}

func (c *Client) request(ctx context.Context, text string) (string, error) {
	values := url.Values{}
	values.Set("text", text)
	values.Set("itc", c.inputMethod)
	values.Set("num", "1")
	values.Set("ie", "utf-8")
	values.Set("oe", "utf-8")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("transliteration service status %d", resp.StatusCode)
	}

	// Response shape: ["SUCCESS", [[input, [candidate, ...], ...], ...]]
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload) < 2 {
		return "", fmt.Errorf("unexpected response shape")
	}

	var status string
	if err := json.Unmarshal(payload[0], &status); err != nil {
		return "", err
	}
	if status != "SUCCESS" {
		return "", fmt.Errorf("service reported %q", status)
	}

	var entries [][]json.RawMessage
	if err := json.Unmarshal(payload[1], &entries); err != nil {
		return "", err
	}
	if len(entries) == 0 || len(entries[0]) < 2 {
		return "", fmt.Errorf("no transliteration entries")
	}

	var candidates []string
	if err := json.Unmarshal(entries[0][1], &candidates); err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no transliteration candidates")
	}
	return candidates[0], nil
}
