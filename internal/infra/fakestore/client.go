// Package fakestore implements the catalog and auth gateways against the
// Fake Store API.
package fakestore

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTimeout = 10 * time.Second

// Client talks to the Fake Store API. It implements both the catalog and the
// auth gateway since the upstream serves both concerns.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientParams holds dependencies for the Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
}

// NewClient creates a Fake Store API client.
func NewClient(params ClientParams) (*Client, error) {
	cfg := params.Config.Store
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("store base URL must be provided")
	}

	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// NewCatalogGateway exposes the client as the catalog gateway.
func NewCatalogGateway(client *Client) service.CatalogGateway {
	return client
}

// NewAuthGateway exposes the client as the auth gateway.
func NewAuthGateway(client *Client) service.AuthGateway {
	return client
}

// FetchProducts retrieves the full product catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}

	return products, nil
}

// FetchCategories retrieves the list of category names.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// FetchProductsByCategory retrieves the products of a single category.
// Category names contain spaces and apostrophes, so the path segment is escaped.
func (c *Client) FetchProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.getJSON(ctx, "/products/category/"+url.PathEscape(category), &products); err != nil {
		return nil, err
	}

	return products, nil
}

// loginRequest is the credential payload for the auth endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse carries the opaque token the store returns on success.
type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token. The store responds with a non-2xx
// status for bad credentials; every failure collapses into a plain error so
// callers treat it as a rejection.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "login request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("login rejected with status %d", resp.StatusCode)
	}

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.Wrap(err, "failed to decode login response")
	}
	if decoded.Token == "" {
		return "", errors.New("login response carried no token")
	}

	return decoded.Token, nil
}

// getJSON performs a GET and decodes the JSON response. Network failures and
// non-2xx statuses surface as the store-unavailable error.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domainerrors.ErrStoreUnavailable.WrapMessage(
			errors.Errorf("store returned status %d for %s", resp.StatusCode, path).Error())
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	return nil
}
