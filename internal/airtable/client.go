package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/akostin/punchpass/internal/config"
	"github.com/akostin/punchpass/internal/service/syncservice"
	"github.com/akostin/punchpass/pkg/clients"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type listResponse struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

type record struct {
	ID          string    `json:"id"`
	CreatedTime time.Time `json:"createdTime"`
	Fields      fields    `json:"fields"`
}

type fields struct {
	Name           string `json:"Name"`
	Email          string `json:"Email"`
	MembershipType string `json:"Membership Type"`
	QRCodeURL      string `json:"QR Code URL"`
}

// Client fetches membership applications from the Airtable REST API and
// adapts them to the reconciliation engine's candidate shape.
type Client struct {
	baseURL string
	token   string
	base    string
	table   string
	client  clients.HTTPClientI
}

func NewClient(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: cfg.AirtableAddress,
		token:   cfg.AirtableToken,
		base:    cfg.AirtableBase,
		table:   cfg.AirtableTable,
		client:  client,
	}
}

// FetchAll walks every page of the table before returning. The engine's
// dedup needs the complete candidate set, so a failed page fails the
// whole fetch.
func (c *Client) FetchAll(ctx context.Context) ([]syncservice.Candidate, error) {
	var candidates []syncservice.Candidate

	offset := ""
	for {
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}
		for _, rec := range page.Records {
			candidates = append(candidates, syncservice.Candidate{
				ExternalID:     rec.ID,
				Name:           rec.Fields.Name,
				Email:          rec.Fields.Email,
				MembershipType: rec.Fields.MembershipType,
				QRCodeURL:      rec.Fields.QRCodeURL,
				CreatedAt:      rec.CreatedTime,
			})
		}
		if page.Offset == "" {
			return candidates, nil
		}
		offset = page.Offset
	}
}

func (c *Client) fetchPage(ctx context.Context, offset string) (*listResponse, error) {
	pageURL := fmt.Sprintf("%s/v0/%s/%s", c.baseURL, c.base, url.PathEscape(c.table))
	if offset != "" {
		pageURL += "?offset=" + url.QueryEscape(offset)
	}
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.token)

	var statusCode int
	var respBody []byte
	var respHeaders http.Header
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = c.client.Get(ctx, pageURL, headers)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return nil, fmt.Errorf("failed to fetch applications after %d retries: %w", maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				c.waitRateLimit(respHeaders, attempt)
				continue

			case http.StatusOK:
				var page listResponse
				if err := json.Unmarshal(respBody, &page); err != nil {
					return nil, fmt.Errorf("failed to parse applications page: %w", err)
				}
				return &page, nil

			default:
				zap.L().Error("Unexpected status code from airtable", zap.Int("status", statusCode))
				return nil, fmt.Errorf("unexpected status code %d", statusCode)
			}
		}
	}
	return nil, fmt.Errorf("failed to fetch applications after %d retries", maxRetries)
}

func (c *Client) waitRateLimit(respHeaders http.Header, attempt int) {
	retryAfter := retryInterval * time.Duration(attempt)
	if h := respHeaders.Get("Retry-After"); h != "" {
		if seconds, err := strconv.Atoi(h); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("Rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
	time.Sleep(retryAfter)
}
