package esign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the external e-sign provider. Every method performs exactly
// one network round trip and reports the outcome verbatim; retry policy
// belongs to the caller.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateDocument builds a document from a template and returns its identifier.
func (c *Client) CreateDocument(ctx context.Context, params CreateDocumentParams) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/documents", params)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", &CreationError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	var body struct {
		ID string `json:"id"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding create response: %w", err)
	}

	if body.ID == "" {
		return "", &CreationError{StatusCode: resp.StatusCode, Message: "response carried no document id"}
	}

	return body.ID, nil
}

// GetStatus queries the document lifecycle state. Read-only; it never
// mutates remote state.
func (c *Client) GetStatus(ctx context.Context, documentID string) (Status, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/documents/"+documentID, nil)
	if err != nil {
		return StatusUnknown, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return StatusUnknown, fmt.Errorf("status query failed with status %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return StatusUnknown, fmt.Errorf("decoding status response: %w", err)
	}

	switch s := Status(body.Status); s {
	case StatusProcessing, StatusDraft, StatusSent:
		return s, nil
	default:
		return StatusUnknown, nil
	}
}

// CreateSigningLink mints a time-limited signing URL for one recipient.
// Valid only once the document is in the sent state.
func (c *Client) CreateSigningLink(ctx context.Context, documentID, recipientEmail string, lifetime time.Duration) (string, error) {
	payload := map[string]any{
		"recipient": recipientEmail,
		"lifetime":  int(lifetime.Seconds()),
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/documents/"+documentID+"/session", payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("signing link request failed with status %d: %s", resp.StatusCode, readMessage(resp.Body))
	}

	var body struct {
		URL string `json:"url"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding signing link response: %w", err)
	}

	return body.URL, nil
}

// Send dispatches the document over the given channel. Typed failures:
// *NotReadyError on 409, ErrChannelDenied on 403; anything else is a
// transient failure the caller may retry.
func (c *Client) Send(ctx context.Context, documentID string, params SendParams) (*SendResult, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/documents/"+documentID+"/send", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
	case http.StatusConflict:
		var body struct {
			RetryAfter int `json:"retry_after"`
		}

		_ = json.NewDecoder(resp.Body).Decode(&body)

		return nil, &NotReadyError{RetryAfter: time.Duration(body.RetryAfter) * time.Second}
	case http.StatusForbidden:
		return nil, ErrChannelDenied
	default:
		return nil, fmt.Errorf("send failed with status %d: %s", resp.StatusCode, readMessage(resp.Body))
	}

	var body struct {
		SigningURL string `json:"signing_url"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding send response: %w", err)
	}

	return &SendResult{SigningURL: body.SigningURL}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader

	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}

		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func readMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}

	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}

	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}

	return strings.TrimSpace(string(raw))
}
