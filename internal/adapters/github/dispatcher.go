package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"standby-builder/internal/core/domain"
	"standby-builder/internal/core/ports"
)

var _ ports.Dispatcher = (*Dispatcher)(nil)

// Dispatcher implements ports.Dispatcher with GitHub repository_dispatch events.
type Dispatcher struct {
	logger ports.Logger
	client *gh.Client
}

// clientPayload is what the workflow reads as github.event.client_payload.
// The timestamp rides inside it since repository_dispatch has no other slot.
type clientPayload struct {
	Timestamp string `json:"timestamp"`
	domain.ClientPayload
}

// NewDispatcher creates a Dispatcher authenticating with token. apiURL
// overrides the API root for GitHub Enterprise; empty means api.github.com.
func NewDispatcher(logger ports.Logger, token, apiURL string) (*Dispatcher, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("github token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gh.NewClient(oauth2.NewClient(context.Background(), ts))

	if apiURL != "" {
		base, err := url.Parse(strings.TrimRight(apiURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
		}
		client.BaseURL = base
	}

	return &Dispatcher{logger: logger, client: client}, nil
}

// Dispatch sends payload as a repository_dispatch event to destination
// ("owner/repo"). Non-success answers come back as *domain.RejectionError.
func (d *Dispatcher) Dispatch(ctx context.Context, destination string, payload domain.DispatchPayload) error {
	owner, repo, err := splitDestination(destination)
	if err != nil {
		return err
	}

	body, err := json.Marshal(clientPayload{Timestamp: payload.Timestamp, ClientPayload: payload.ClientPayload})
	if err != nil {
		return fmt.Errorf("failed to marshal client payload: %w", err)
	}
	raw := json.RawMessage(body)

	d.logger.Debug("Sending repository_dispatch", "component", "github", "owner", owner, "repo", repo, "event_type", payload.EventType)
	_, _, err = d.client.Repositories.Dispatch(ctx, owner, repo, gh.DispatchRequestOptions{
		EventType:     payload.EventType,
		ClientPayload: &raw,
	})
	if err != nil {
		return asRejection(err)
	}
	return nil
}

func splitDestination(destination string) (string, string, error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(destination), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid destination %q: expected owner/repo", destination)
	}
	return owner, repo, nil
}

// asRejection turns GitHub API error answers into *domain.RejectionError and
// wraps everything else as a transport failure.
func asRejection(err error) error {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return &domain.RejectionError{StatusCode: errResp.Response.StatusCode, Message: errResp.Message}
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &domain.RejectionError{StatusCode: rateErr.Response.StatusCode, Message: rateErr.Message}
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return &domain.RejectionError{StatusCode: abuseErr.Response.StatusCode, Message: abuseErr.Message}
	}
	return fmt.Errorf("repository dispatch failed: %w", err)
}
