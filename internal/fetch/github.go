package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-cleanhttp"

	"tuicomplete/internal/domain"
)

// GitHubUsers searches GitHub accounts by login
type GitHubUsers struct {
	baseURL string
	client  *http.Client
}

type githubSearchResponse struct {
	Items []struct {
		Login string `json:"login"`
		ID    int64  `json:"id"`
	} `json:"items"`
}

// NewGitHubUsers creates a fetcher against baseURL, normally
// https://api.github.com/search/users. A nil client uses a pooled cleanhttp client.
func NewGitHubUsers(baseURL string, client *http.Client) *GitHubUsers {
	if client == nil {
		client = cleanhttp.DefaultPooledClient()
	}
	return &GitHubUsers{baseURL: baseURL, client: client}
}

// Fetch returns login → id candidates
func (g *GitHubUsers) Fetch(ctx context.Context, query string, n int) (domain.ResultSet, error) {
	u, err := url.Parse(g.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", g.baseURL, err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("per_page", strconv.Itoa(n))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("user search returned %s", resp.Status)
	}

	var body githubSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode user search: %w", err)
	}

	results := make(domain.ResultSet, 0, len(body.Items))
	for _, item := range body.Items {
		results = append(results, domain.Candidate{Text: item.Login, Value: item.ID})
	}
	return results, nil
}
