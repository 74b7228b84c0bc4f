package fakestore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Store: &config.StoreConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
	}

	client, err := NewClient(ClientParams{Config: cfg})
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(ClientParams{Config: &config.Config{}})
	require.Error(t, err)

	_, err = NewClient(ClientParams{Config: &config.Config{Store: &config.StoreConfig{}}})
	require.Error(t, err)
}

func TestClient_FetchProducts(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Backpack","price":109.95,"description":"Fits laptops","category":"men's clothing","image":"https://example.com/1.jpg","rating":{"rate":3.9,"count":120}},
			{"id":2,"title":"T-Shirt","price":22.3,"category":"men's clothing","rating":{"rate":4.1,"count":259}}
		]`))
	}))

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("109.95")))
	assert.Equal(t, 3.9, products[0].Rating.Rate)
	assert.Equal(t, 259, products[1].Rating.Count)
}

func TestClient_FetchProductsByCategory_EscapesPath(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The raw category name carries a space and an apostrophe.
		assert.Equal(t, "/products/category/men's clothing", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Backpack","price":109.95,"category":"men's clothing"}]`))
	}))

	products, err := client.FetchProductsByCategory(context.Background(), "men's clothing")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "men's clothing", products[0].Category)
}

func TestClient_FetchCategories(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["electronics","jewelery","men's clothing","women's clothing"]`))
	}))

	categories, err := client.FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 4)
	assert.Contains(t, categories, "jewelery")
}

func TestClient_FetchProducts_UpstreamFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	products, err := client.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Nil(t, products)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestClient_FetchProducts_MalformedBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))

	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		if payload["username"] == "johnd" && payload["password"] == "m38rmF$" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"eyJhbGciOi.fake.token"}`))

			return
		}

		w.WriteHeader(http.StatusUnauthorized)
	}))

	token, err := client.Login(context.Background(), "johnd", "m38rmF$")
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOi.fake.token", token)

	_, err = client.Login(context.Background(), "johnd", "wrong")
	require.Error(t, err)
}

func TestClient_Login_EmptyToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.Login(context.Background(), "johnd", "m38rmF$")
	require.Error(t, err)
}
