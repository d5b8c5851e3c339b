// Package mailcow wraps the subset of the mailcow administrative REST API the
// bridge drives: mailbox listing and provisioning, mailbox custom attributes,
// and domain-admin grants.
package mailcow

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/mailcow-tools/scim-bridge/pkg/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// RequestRecorder observes downstream API calls. Implemented by the metrics
// collector; a nil recorder disables recording.
type RequestRecorder interface {
	MailcowRequest(endpoint string, code int)
}

type Client struct {
	baseURL  string
	apiKey   string
	domain   string
	password string
	http     *http.Client
	logger   *zerolog.Logger
	recorder RequestRecorder
}

func NewClient(cfg *config.Mailcow, logger *zerolog.Logger, httpClient *http.Client, recorder RequestRecorder) *Client {
	clientLogger := logger.With().Str("component", "mailcow-client").Logger()

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:  strings.TrimSuffix(cfg.APIURL, "/") + "/",
		apiKey:   cfg.APIKey,
		domain:   cfg.DefaultDomain,
		password: cfg.DefaultPassword,
		http:     httpClient,
		logger:   &clientLogger,
		recorder: recorder,
	}
}

// ListMailboxes returns all mailboxes of the configured default domain.
func (c *Client) ListMailboxes(ctx context.Context) ([]Mailbox, error) {
	status, body, err := c.do(ctx, http.MethodGet, "get/mailbox/all/"+c.domain, nil)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, errors.Errorf("mailbox list failed with status %d: %s", status, body)
	}

	var mailboxes []Mailbox
	if err := json.Unmarshal(body, &mailboxes); err != nil {
		return nil, errors.Wrap(err, "failed to decode mailbox list")
	}

	return mailboxes, nil
}

// CreateMailbox provisions a mailbox and returns the downstream status code
// and raw response body so callers can branch on the outcome.
func (c *Client) CreateMailbox(ctx context.Context, req CreateMailboxRequest) (int, string, error) {
	status, body, err := c.do(ctx, http.MethodPost, "add/mailbox", req)
	if err != nil {
		return 0, "", err
	}

	return status, string(body), nil
}

// DeleteMailbox removes a mailbox by address.
func (c *Client) DeleteMailbox(ctx context.Context, address string) error {
	status, body, err := c.do(ctx, http.MethodPost, "delete/mailbox", []string{address})
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return errors.Errorf("mailbox delete failed with status %d: %s", status, body)
	}

	return nil
}

// SetCustomAttribute overwrites the named custom attribute on every listed
// mailbox. The attribute name is repeated once per value, matching the
// payload shape the API expects.
func (c *Client) SetCustomAttribute(ctx context.Context, items []string, attribute string, values []string) error {
	names := make([]string, len(values))
	for i := range values {
		names[i] = attribute
	}

	req := customAttributeRequest{
		Attr: CustomAttribute{
			Attribute: names,
			Value:     values,
		},
		Items: items,
	}

	status, body, err := c.do(ctx, http.MethodPost, "edit/mailbox/custom-attribute", req)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return errors.Errorf("custom attribute update failed with status %d: %s", status, body)
	}

	return nil
}

// AddDomainAdmin grants domain-admin over the default domain to the mailbox
// at the given address. A 409 means the grant already exists and is success.
func (c *Client) AddDomainAdmin(ctx context.Context, address string) error {
	req := createDomainAdminRequest{
		Active:    "1",
		Domains:   c.domain,
		Password:  c.password,
		Password2: c.password,
		Username:  localPart(address),
	}

	status, body, err := c.do(ctx, http.MethodPost, "add/domain-admin", req)
	if err != nil {
		return err
	}

	if status == http.StatusConflict {
		c.logger.Debug().Str("address", address).Msg("domain admin already exists")
		return nil
	}

	if status != http.StatusOK {
		return errors.Errorf("domain admin create failed with status %d: %s", status, body)
	}

	return nil
}

// DeleteDomainAdmin revokes a domain-admin grant. A missing grant is success.
func (c *Client) DeleteDomainAdmin(ctx context.Context, address string) error {
	status, body, err := c.do(ctx, http.MethodPost, "delete/domain-admin", []string{localPart(address)})
	if err != nil {
		return err
	}

	if status == http.StatusNotFound {
		c.logger.Debug().Str("address", address).Msg("domain admin already absent")
		return nil
	}

	if status != http.StatusOK {
		return errors.Errorf("domain admin delete failed with status %d: %s", status, body)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any) (int, []byte, error) {
	var reqBody io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "failed to encode %s request", endpoint)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to build %s request", endpoint)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("mailcow request failed")
		return 0, nil, errors.Wrapf(err, "mailcow %s request failed", endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to read %s response", endpoint)
	}

	if c.recorder != nil {
		c.recorder.MailcowRequest(endpoint, resp.StatusCode)
	}

	c.logger.Trace().
		Str("endpoint", endpoint).
		Str("status", strconv.Itoa(resp.StatusCode)).
		Msg("mailcow request")

	return resp.StatusCode, body, nil
}

// localPart returns the part of the address before the last '@'. Domain-admin
// usernames are local parts, not full addresses.
func localPart(address string) string {
	if i := strings.LastIndex(address, "@"); i >= 0 {
		return address[:i]
	}

	return address
}
