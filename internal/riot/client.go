package riot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
)

const (
	defaultTimeout = 10 * time.Second

	// account-v1 is served from any regional route
	defaultAccountRoute = "asia"
)

// Config holds configuration for the Riot API client
type Config struct {
	// APIKey is sent as X-Riot-Token
	APIKey string

	// HTTPClient is optional; a client with a 10s timeout is used when nil
	HTTPClient *http.Client

	// BaseURL replaces https://{host}.api.riotgames.com for every request when set
	BaseURL string

	// AccountRoute is the regional route for account-v1, defaults to asia
	AccountRoute string
}

// client implements the Client interface over HTTP
type client struct {
	apiKey       string
	httpClient   *http.Client
	baseURL      string
	accountRoute string
}

// New creates a new Riot API client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("api key cannot be empty")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	accountRoute := cfg.AccountRoute
	if accountRoute == "" {
		accountRoute = defaultAccountRoute
	}

	return &client{
		apiKey:       cfg.APIKey,
		httpClient:   httpClient,
		baseURL:      cfg.BaseURL,
		accountRoute: accountRoute,
	}, nil
}

// host builds the scheme and host for a platform or regional route
func (c *client) host(route string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", route)
}

// doRequest makes a single GET and decodes a 200 response into result.
// There is no retry; 429 and 5xx come back as *APIError.
func (c *client) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("riot: failed to build request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("riot: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Endpoint: req.URL.Path}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("riot: failed to decode %s: %w", req.URL.Path, err)
	}

	return nil
}

// GetAccountByPUUID resolves the current Riot ID for an account
func (c *client) GetAccountByPUUID(ctx context.Context, puuid string) (*AccountResponse, error) {
	endpoint := fmt.Sprintf("%s/riot/account/v1/accounts/by-puuid/%s",
		c.host(c.accountRoute), url.PathEscape(puuid))

	var account AccountResponse
	if err := c.doRequest(ctx, endpoint, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByRiotID fetches account info by Riot ID (gameName#tagLine)
func (c *client) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*AccountResponse, error) {
	endpoint := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.host(c.accountRoute), url.PathEscape(gameName), url.PathEscape(tagLine))

	var account AccountResponse
	if err := c.doRequest(ctx, endpoint, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetSummonerByPUUID returns level and icon for an account on a platform
func (c *client) GetSummonerByPUUID(ctx context.Context, region, puuid string) (*SummonerResponse, error) {
	endpoint := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s",
		c.host(region), url.PathEscape(puuid))

	var summoner SummonerResponse
	if err := c.doRequest(ctx, endpoint, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// GetLeagueEntries returns ranked standings for an account on a platform
func (c *client) GetLeagueEntries(ctx context.Context, region, puuid string) ([]LeagueEntryResponse, error) {
	endpoint := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s",
		c.host(region), url.PathEscape(puuid))

	var entries []LeagueEntryResponse
	if err := c.doRequest(ctx, endpoint, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetActiveGame returns the live match the account is in
func (c *client) GetActiveGame(ctx context.Context, region, puuid string) (*ActiveGameResponse, error) {
	endpoint := fmt.Sprintf("%s/lol/spectator/v5/active-games/by-summoner/%s",
		c.host(region), url.PathEscape(puuid))

	var game ActiveGameResponse
	if err := c.doRequest(ctx, endpoint, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// GetRecentMatchIDs returns the most recent completed match IDs, newest first
func (c *client) GetRecentMatchIDs(ctx context.Context, puuid, region string, count int) ([]string, error) {
	if count <= 0 {
		count = 1
	}
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?count=%d",
		c.host(RoutingRegion(region)), url.PathEscape(puuid), count)

	var matchIDs []string
	if err := c.doRequest(ctx, endpoint, &matchIDs); err != nil {
		return nil, err
	}
	return matchIDs, nil
}

// GetMatch returns full details for a completed match
func (c *client) GetMatch(ctx context.Context, matchID, region string) (*MatchResponse, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/%s",
		c.host(RoutingRegion(region)), url.PathEscape(matchID))

	var match MatchResponse
	if err := c.doRequest(ctx, endpoint, &match); err != nil {
		return nil, err
	}
	return &match, nil
}
