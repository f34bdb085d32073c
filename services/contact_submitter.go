package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"digital_analytics_site/models"
)

// maxResponseBytes caps how much of an endpoint response is decoded
const maxResponseBytes = 64 << 10

// HTTPSubmitter posts contact requests as JSON to a submission endpoint
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter bounds every request by timeout. Requests are never retried.
func NewHTTPSubmitter(endpoint string, timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build contact request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach contact endpoint: %w", err)
	}
	defer resp.Body.Close()

	var out models.ContactResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode contact response (status %d): %w", resp.StatusCode, err)
	}

	// a non-2xx status is a failure whatever the body claims
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		out.Success = false
	}
	return &out, nil
}

// MailSubmitter submits in-process through the ContactService
type MailSubmitter struct {
	contacts *ContactService
}

func NewMailSubmitter(contacts *ContactService) *MailSubmitter {
	return &MailSubmitter{contacts: contacts}
}

func (s *MailSubmitter) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactResponse, error) {
	id, err := s.contacts.Deliver(ctx, req)
	if err != nil {
		return &models.ContactResponse{Success: false, Error: PublicContactError(err)}, nil
	}
	return &models.ContactResponse{Success: true, ID: id}, nil
}
