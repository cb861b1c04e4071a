package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/osse101/crimson/internal/domain"
	"github.com/osse101/crimson/internal/logger"
	"github.com/osse101/crimson/internal/metrics"
)

// User is a single entry of the directory's users response
type User struct {
	ID          int64   `json:"id"`
	SlackID     string  `json:"slack_id"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	ProjectIDs  []int64 `json:"project_ids"`
	Cookies     *int64  `json:"cookies"`
}

// UsersResponse is the body of GET /users
type UsersResponse struct {
	Users []User `json:"users"`
}

// Config holds the settings for a directory Client
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64
	// Transport is the base round tripper; nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// Client resolves helper IDs to identities through the Flavortown user directory
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	cache   *lru.Cache[string, domain.ResolvedIdentity]
}

// NewClient creates a directory client. The API key is sent as a static
// bearer token on every request.
func NewClient(cfg Config) (*Client, error) {
	base, err := ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfiguration, ErrMsgAPIKeyRequired)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}

	cache, err := lru.New[string, domain.ResolvedIdentity](DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity cache: %w", err)
	}

	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey, TokenType: "Bearer"})

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
			Transport: &oauth2.Transport{
				Source: tokens,
				Base:   metrics.Transport(cfg.Transport),
			},
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		cache:   cache,
	}, nil
}

// ParseBaseURL validates the directory base URL. A path other than /api/v1
// is allowed but logged, since it is usually a copy-paste mistake.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfiguration, fmt.Sprintf(ErrMsgInvalidBaseURL, raw), err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfiguration, fmt.Sprintf(ErrMsgBaseURLNotAbs, raw))
	}
	if strings.TrimRight(u.Path, "/") != ExpectedAPIPath {
		logger.Warn(LogMsgBaseURLPathWarning, "base_url", raw)
	}
	return u, nil
}

// Resolve looks up one helper. Zero matches fail with domain.ErrNoMatchFound;
// several matches resolve to the first in the directory's order.
func (c *Client) Resolve(ctx context.Context, helperID string) (domain.ResolvedIdentity, error) {
	log := logger.FromContext(ctx)

	if helperID == "" {
		return domain.ResolvedIdentity{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgHelperIDRequired)
	}

	if identity, ok := c.cache.Get(helperID); ok {
		log.Debug(LogMsgCacheHit, "helper_id", helperID)
		return identity, nil
	}

	resp, err := c.SearchUsers(ctx, helperID)
	if err != nil {
		metrics.DirectoryLookupsTotal.WithLabelValues(metrics.OutcomeUnavailable).Inc()
		return domain.ResolvedIdentity{}, err
	}

	switch n := len(resp.Users); {
	case n == 0:
		metrics.DirectoryLookupsTotal.WithLabelValues(metrics.OutcomeNoMatch).Inc()
		return domain.ResolvedIdentity{}, fmt.Errorf("%w: %s", domain.ErrNoMatchFound, fmt.Sprintf(ErrMsgNoUsersForHelper, helperID))
	case n > 1:
		metrics.DirectoryLookupsTotal.WithLabelValues(metrics.OutcomeAmbiguous).Inc()
		log.Warn(LogMsgAmbiguousMatch, "helper_id", helperID, "matches", n, "chosen_id", resp.Users[0].ID)
	default:
		metrics.DirectoryLookupsTotal.WithLabelValues(metrics.OutcomeResolved).Inc()
	}

	identity := c.identityFor(helperID, resp.Users[0])
	c.cache.Add(helperID, identity)
	return identity, nil
}

// SearchUsers calls GET /users?query=<query> and returns the decoded body.
// Transport failures, non-2xx statuses and undecodable bodies all fail with
// domain.ErrDirectoryUnavailable.
func (c *Client) SearchUsers(ctx context.Context, query string) (*UsersResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDirectoryUnavailable, ErrMsgRateLimiterWait, err)
	}

	endpoint := c.baseURL.JoinPath(usersPath)
	q := endpoint.Query()
	q.Set(queryParam, query)
	endpoint.RawQuery = q.Encode()

	logger.FromContext(ctx).Debug(LogMsgFetchingUsers, "url", endpoint.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDirectoryUnavailable, ErrMsgRequestFailed, err)
	}
	req.Header.Set(headerAccept, contentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDirectoryUnavailable, ErrMsgRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryUnavailable,
			fmt.Sprintf(ErrMsgUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(string(body))))
	}

	var data UsersResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDirectoryUnavailable, ErrMsgDecodeFailed, err)
	}

	return &data, nil
}

// ProfileURL returns the public profile page of a directory user.
func (c *Client) ProfileURL(directoryID int64) string {
	origin := url.URL{Scheme: c.baseURL.Scheme, Host: c.baseURL.Host}
	return origin.JoinPath(profilePath, strconv.FormatInt(directoryID, 10)).String()
}

func (c *Client) identityFor(helperID string, u User) domain.ResolvedIdentity {
	return domain.ResolvedIdentity{
		HelperID:    helperID,
		DisplayName: u.DisplayName,
		ProfileURL:  c.ProfileURL(u.ID),
		DirectoryID: u.ID,
		Avatar:      u.Avatar,
		Cookies:     u.Cookies,
	}
}
