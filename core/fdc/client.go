// ABOUTME: FoodData Central client service implementing the fixed lookup endpoints
// ABOUTME: One HTTP GET per call with cache-backed per-call memoization

package fdc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"fooddata-api-client/core/config"
	"fooddata-api-client/core/domain"
	coreerrors "fooddata-api-client/core/errors"
	"fooddata-api-client/core/interfaces"
)

const (
	// apiName identifies the backend in external API errors
	apiName = "fooddata-central"

	// maxBatchSize is the backend's ceiling for one bulk lookup
	maxBatchSize = 20
)

// Client is a FoodData Central API client. It holds an API key and base URL
// for its lifetime and memoizes results per call through the injected cache.
// The mapping from API endpoints to methods:
//
//	/food/{fdcId}  -> FoodByID
//	/foods         -> FoodsByID
//	/foods/search  -> SearchFoods
//	/json-spec     -> JSONSpec
//	/yaml-spec     -> YAMLSpec
//
// Memoized results live in the injected Cache keyed by the canonicalized
// endpoint path and parameter set; concurrent safety of memoization is that
// of the cache backend. Concurrent callers may race to perform duplicate
// fetches, which is harmless but wasteful.
type Client struct {
	apiKey string
	config config.ClientConfig
	deps   interfaces.Dependencies

	// Spec documents are fetched once per client instance and kept for
	// its lifetime. Write-once on success, guarded by specMu.
	specMu      sync.Mutex
	jsonSpec    json.RawMessage
	yamlSpec    string
	yamlFetched bool
}

// NewClient creates a new FoodData Central client. The API key is the
// caller's credential for the backend; deps must include an HTTP client.
func NewClient(apiKey string, deps interfaces.Dependencies, opts ...config.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	return &Client{
		apiKey: apiKey,
		config: config.NewClientConfig(opts...),
		deps:   deps,
	}, nil
}

// FoodByID implements the /food/{fdcId} endpoint. It looks up a single food
// record by its FoodData Central ID and returns the normalized entry.
// For multiple ids use FoodsByID. Extra query parameters (e.g. "format",
// "nutrients") are passed through to the backend.
func (c *Client) FoodByID(ctx context.Context, foodID int64, extra map[string]string) (*domain.FoodEntry, error) {
	path := "food/" + strconv.FormatInt(foodID, 10)
	params := queryParams(extra)

	key := c.cacheKey(path, params)
	var cached domain.FoodEntry
	if c.lookupCache(ctx, key, &cached) {
		return &cached, nil
	}

	body, err := c.getJSON(ctx, path, params, "food", strconv.FormatInt(foodID, 10))
	if err != nil {
		return nil, err
	}

	var raw RawFood
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse food record")
	}

	entry, err := Normalize(raw)
	if err != nil {
		c.logError("Failed to normalize food record", map[string]interface{}{
			"fdc_id": foodID,
			"error":  err.Error(),
		})
		return nil, err
	}

	c.storeCache(ctx, key, entry)
	return entry, nil
}

// FoodsByID implements the /foods endpoint. It looks up multiple food
// records in one request; the backend accepts at most 20 ids per call.
// Ids the backend does not resolve are silently omitted from the result.
// For a single id use FoodByID.
func (c *Client) FoodsByID(ctx context.Context, foodIDs []int64, extra map[string]string) ([]domain.FoodEntry, error) {
	if len(foodIDs) > maxBatchSize {
		return nil, &coreerrors.ValidationError{
			Field:   "food_ids",
			Message: fmt.Sprintf("must contain at most %d ids, got %d", maxBatchSize, len(foodIDs)),
		}
	}

	ids := make([]string, 0, len(foodIDs))
	for _, id := range foodIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	joined := strings.Join(ids, ",")

	params := queryParams(extra)
	params.Set("fdcIds", joined)

	key := c.cacheKey("foods", params)
	var cached []domain.FoodEntry
	if c.lookupCache(ctx, key, &cached) {
		return cached, nil
	}

	body, err := c.getJSON(ctx, "foods", params, "foods", joined)
	if err != nil {
		return nil, err
	}

	entries, err := c.normalizeList(body)
	if err != nil {
		return nil, err
	}

	c.storeCache(ctx, key, entries)
	return entries, nil
}

// SearchFoods implements the /foods/search endpoint. The more specific the
// query, the fewer and better the results. An empty brand searches across
// all brand owners. Extra query parameters (e.g. "dataType", "pageSize")
// are passed through to the backend.
func (c *Client) SearchFoods(ctx context.Context, query, brand string, extra map[string]string) ([]domain.FoodEntry, error) {
	params := queryParams(extra)
	params.Set("query", query)
	if brand != "" {
		params.Set("brandOwner", brand)
	}

	key := c.cacheKey("foods/search", params)
	var cached []domain.FoodEntry
	if c.lookupCache(ctx, key, &cached) {
		return cached, nil
	}

	body, err := c.getJSON(ctx, "foods/search", params, "search", query)
	if err != nil {
		return nil, err
	}

	entries, err := c.normalizeList(body)
	if err != nil {
		return nil, err
	}

	c.storeCache(ctx, key, entries)
	return entries, nil
}

// JSONSpec returns the backend's JSON specification document. The document
// is fetched once per client instance and kept for its lifetime; callers
// must not modify the returned bytes.
func (c *Client) JSONSpec(ctx context.Context) (json.RawMessage, error) {
	c.specMu.Lock()
	defer c.specMu.Unlock()

	if c.jsonSpec != nil {
		return c.jsonSpec, nil
	}

	body, err := c.getJSON(ctx, "json-spec", url.Values{}, "spec", "json-spec")
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, errors.New("spec document is not valid JSON")
	}

	c.jsonSpec = json.RawMessage(body)
	return c.jsonSpec, nil
}

// YAMLSpec returns the backend's YAML specification document as raw text.
// No parsing is attempted. Fetched once per client instance.
func (c *Client) YAMLSpec(ctx context.Context) (string, error) {
	c.specMu.Lock()
	defer c.specMu.Unlock()

	if c.yamlFetched {
		return c.yamlSpec, nil
	}

	body, err := c.getJSON(ctx, "yaml-spec", url.Values{}, "spec", "yaml-spec")
	if err != nil {
		return "", err
	}

	c.yamlSpec = string(body)
	c.yamlFetched = true
	return c.yamlSpec, nil
}

// normalizeList parses a response body holding a "foods" list and
// normalizes each record. Any record failing normalization fails the call.
func (c *Client) normalizeList(body []byte) ([]domain.FoodEntry, error) {
	var response struct {
		Foods []RawFood `json:"foods"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse food records")
	}

	entries := make([]domain.FoodEntry, 0, len(response.Foods))
	for _, raw := range response.Foods {
		entry, err := Normalize(raw)
		if err != nil {
			c.logError("Failed to normalize food record", map[string]interface{}{
				"error": err.Error(),
			})
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

// getJSON performs one GET against the endpoint path, validates the status
// code and returns the response body. The API key is added here so it never
// appears in cache keys or logs.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, resource, id string) ([]byte, error) {
	reqParams := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			reqParams.Add(k, v)
		}
	}
	reqParams.Set("api_key", c.apiKey)

	endpoint := strings.TrimSuffix(c.config.BaseURL, "/") + "/" + path + "?" + reqParams.Encode()

	resp, err := c.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		c.logError("Request failed", map[string]interface{}{
			"endpoint": path,
			"error":    err.Error(),
		})
		return nil, coreerrors.WrapError(err, "request to "+path+" failed")
	}
	defer resp.Body().Close()

	if err := checkStatus(resp.StatusCode(), resource, id); err != nil {
		c.logError("Backend rejected request", map[string]interface{}{
			"endpoint": path,
			"status":   resp.StatusCode(),
		})
		return nil, err
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read response body")
	}

	return body, nil
}

// cacheKey builds the canonical memoization key for one call: the endpoint
// path plus the sorted, URL-encoded parameter set. The API key is excluded.
func (c *Client) cacheKey(path string, params url.Values) string {
	return "fdc:" + path + "?" + params.Encode()
}

// lookupCache loads a memoized result into dest. Returns false on miss,
// missing cache, or an undecodable entry.
func (c *Client) lookupCache(ctx context.Context, key string, dest interface{}) bool {
	if c.deps.Cache == nil {
		return false
	}

	data, err := c.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}

	c.logDebug("Cache hit", map[string]interface{}{"key": key})
	return true
}

// storeCache memoizes a result. Cache failures are not surfaced; the next
// call simply refetches.
func (c *Client) storeCache(ctx context.Context, key string, value interface{}) {
	if c.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	_ = c.deps.Cache.Set(ctx, key, data, c.config.CacheTTL)
}

// queryParams converts per-call extra options into url.Values
func queryParams(extra map[string]string) url.Values {
	params := url.Values{}
	for k, v := range extra {
		params.Set(k, v)
	}
	return params
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, fields)
	}
}

func (c *Client) logError(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Error(msg, fields)
	}
}
