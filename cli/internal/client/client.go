// ABOUTME: HTTP client for the PC build advisor API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/markalston/pc-build-advisor/models"
)

// Client is the API client for the build advisor backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-200 response from the backend
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend error: %s: %s", e.Message, e.Details)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var health models.HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GenerateBuild calls POST /api/v1/builds
func (c *Client) GenerateBuild(ctx context.Context, req *models.GenerateBuildRequest) (*models.FinishedBuild, error) {
	var build models.FinishedBuild
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/builds", req, &build); err != nil {
		return nil, err
	}
	return &build, nil
}

// GenerateVariants calls POST /api/v1/builds/variants
func (c *Client) GenerateVariants(ctx context.Context, req *models.VariantsRequest) (*models.VariantsResponse, error) {
	var variants models.VariantsResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/builds/variants", req, &variants); err != nil {
		return nil, err
	}
	return &variants, nil
}

// GetBuild calls GET /api/v1/builds/{id}
func (c *Client) GetBuild(ctx context.Context, id string) (*models.FinishedBuild, error) {
	var build models.FinishedBuild
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/builds/"+url.PathEscape(id), nil, &build); err != nil {
		return nil, err
	}
	return &build, nil
}

// ExportBuild calls GET /api/v1/builds/{id}/export and returns the text parts list
func (c *Client) ExportBuild(ctx context.Context, id string) (string, error) {
	resp, err := c.send(ctx, http.MethodGet, "/api/v1/builds/"+url.PathEscape(id)+"/export", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("invalid response from backend: %w", err)
	}
	return string(data), nil
}

// CheckCompatibility calls POST /api/v1/compatibility
func (c *Client) CheckCompatibility(ctx context.Context, req *models.CompatibilityRequest) (*models.CompatibilityResponse, error) {
	var result models.CompatibilityResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/compatibility", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AnalyzeBudget calls POST /api/v1/budget/analysis
func (c *Client) AnalyzeBudget(ctx context.Context, prefs *models.UserPreferences) (*models.BudgetAnalysis, error) {
	var analysis models.BudgetAnalysis
	req := models.BudgetAnalysisRequest{Preferences: *prefs}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/budget/analysis", &req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// doJSON sends in as the JSON body (when non-nil) and decodes the reply into out
func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal input: %w", err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// send performs the request and returns the response only for 200 OK
func (c *Client) send(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, c.handleErrorResponse(resp)
	}
	return resp, nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("request canceled")
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}
	return &APIError{Status: resp.StatusCode, Message: errResp.Error, Details: errResp.Details}
}
