package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/metrics"
)

const (
	ProviderSpoonacular = "spoonacular"
	ProviderJokeAPI     = "jokeapi"

	maxBodySize = 5 << 20
)

// Config holds what the client needs to reach both providers
type Config struct {
	RecipeBaseURL string
	JokeBaseURL   string
	APIKey        string
	PageSize      int
	Timeout       time.Duration
}

// ConfigFrom extracts the client settings from the application config
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		RecipeBaseURL: cfg.SpoonacularBaseURL,
		JokeBaseURL:   cfg.JokeAPIBaseURL,
		APIKey:        cfg.SpoonacularAPIKey,
		PageSize:      cfg.RecipePageSize,
		Timeout:       cfg.UpstreamTimeout,
	}
}

// SearchResult is one page of a recipe search as the provider reported it.
// Results are left raw so the service layer decides how to read them.
type SearchResult struct {
	Results      []json.RawMessage
	Offset       int
	Number       int
	TotalResults int
}

// Client queries the recipe and joke providers. It never retries.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new upstream client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// SearchRecipes runs a complexSearch with full recipe information. Empty
// query and cuisine are not sent.
func (c *Client) SearchRecipes(ctx context.Context, query, cuisine string, offset int) (*SearchResult, error) {
	params := c.recipeParams()
	params.Set("number", strconv.Itoa(c.cfg.PageSize))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	params.Set("offset", strconv.Itoa(offset))
	if query != "" {
		params.Set("query", query)
	}
	if cuisine != "" {
		params.Set("cuisine", cuisine)
	}

	body, err := c.get(ctx, request{
		provider: ProviderSpoonacular,
		endpoint: "complexSearch",
		base:     c.cfg.RecipeBaseURL,
		path:     []string{"recipes", "complexSearch"},
		query:    params.Encode(),
		check: func(doc gjson.Result) error {
			if !doc.Get("results").IsArray() {
				return errors.New("results is not an array")
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	doc := gjson.ParseBytes(body)
	results := doc.Get("results").Array()
	out := &SearchResult{
		Results:      make([]json.RawMessage, 0, len(results)),
		Offset:       int(doc.Get("offset").Int()),
		Number:       int(doc.Get("number").Int()),
		TotalResults: int(doc.Get("totalResults").Int()),
	}
	for _, r := range results {
		out.Results = append(out.Results, json.RawMessage(r.Raw))
	}
	return out, nil
}

// GetRecipeByID fetches the full information document for one recipe
func (c *Client) GetRecipeByID(ctx context.Context, id string) (json.RawMessage, error) {
	body, err := c.get(ctx, request{
		provider: ProviderSpoonacular,
		endpoint: "information",
		base:     c.cfg.RecipeBaseURL,
		path:     []string{"recipes", url.PathEscape(id), "information"},
		query:    c.recipeParams().Encode(),
		check:    expectObject,
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// ListCuisines returns the cuisine names the provider knows. Elements may be
// plain strings or objects carrying a cuisine field.
func (c *Client) ListCuisines(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, request{
		provider: ProviderSpoonacular,
		endpoint: "cuisines",
		base:     c.cfg.RecipeBaseURL,
		path:     []string{"recipes", "cuisines"},
		query:    c.recipeParams().Encode(),
		check: func(doc gjson.Result) error {
			if !doc.IsArray() {
				return errors.New("cuisines is not an array")
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	var cuisines []string
	for _, el := range gjson.ParseBytes(body).Array() {
		name := el.String()
		if el.IsObject() {
			name = el.Get("cuisine").String()
		}
		if name != "" {
			cuisines = append(cuisines, name)
		}
	}
	return cuisines, nil
}

// GetJoke fetches one safe-mode joke from any category
func (c *Client) GetJoke(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, request{
		provider: ProviderJokeAPI,
		endpoint: "Any",
		base:     c.cfg.JokeBaseURL,
		path:     []string{"Any"},
		query:    "safe-mode",
		check:    expectObject,
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) recipeParams() url.Values {
	params := url.Values{}
	if c.cfg.APIKey != "" {
		params.Set("apiKey", c.cfg.APIKey)
	}
	return params
}

type request struct {
	provider string
	endpoint string
	base     string
	path     []string
	query    string
	// check validates the top-level shape of a decoded body
	check func(gjson.Result) error
}

func expectObject(doc gjson.Result) error {
	if !doc.IsObject() {
		return errors.New("body is not an object")
	}
	return nil
}

// get performs the request and returns the body once it is known to be a
// 2xx response holding JSON of the expected shape.
func (c *Client) get(ctx context.Context, r request) (body []byte, err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		metrics.RecordUpstreamRequest(r.provider, r.endpoint, outcome(err), elapsed)
		c.logger.Debug("Upstream request",
			zap.String("provider", r.provider),
			zap.String("endpoint", r.endpoint),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
	}()

	fail := func(status int, kind, cause error) error {
		return &Error{Provider: r.provider, Endpoint: r.endpoint, StatusCode: status, Kind: kind, Err: cause}
	}

	u, err := url.Parse(r.base)
	if err != nil {
		return nil, fail(0, ErrRequestFailed, fmt.Errorf("invalid base URL: %w", err))
	}
	u = u.JoinPath(r.path...)
	u.RawQuery = r.query

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fail(0, ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fail(0, ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fail(resp.StatusCode, ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fail(resp.StatusCode, ErrUnexpectedStatus, nil)
	}
	if !gjson.ValidBytes(body) {
		return nil, fail(resp.StatusCode, ErrMalformedResponse, errors.New("body is not valid JSON"))
	}
	if r.check != nil {
		if err := r.check(gjson.ParseBytes(body)); err != nil {
			return nil, fail(resp.StatusCode, ErrMalformedResponse, err)
		}
	}
	return body, nil
}
