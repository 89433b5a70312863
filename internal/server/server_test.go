package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-stock-api/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	// One in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.Category{},
		&model.Provider{},
		&model.Product{},
		&model.Batch{},
	))
	return New(db)
}

// request performs a JSON request against the app; token is sent as the
// opaque auth credential when non-empty.
func request(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out))
}

// signup registers a user and returns a fresh login token.
func signup(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	status, _ := request(t, app, http.MethodPost, "/register/", "", fiber.Map{
		"username": username,
		"password": "pw123",
		"email":    username + "@example.com",
	})
	require.Equal(t, 201, status)

	status, raw := request(t, app, http.MethodPost, "/login/", "", fiber.Map{
		"username": username,
		"password": "pw123",
	})
	require.Equal(t, 200, status)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, raw, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}

func createCategory(t *testing.T, app *fiber.App, token, label string) string {
	t.Helper()
	status, raw := request(t, app, http.MethodPost, "/categories/", token, fiber.Map{"label": label})
	require.Equal(t, 201, status)
	var resp struct {
		ID string `json:"id"`
	}
	decode(t, raw, &resp)
	return resp.ID
}

func createProvider(t *testing.T, app *fiber.App, token, label, city string) string {
	t.Helper()
	status, raw := request(t, app, http.MethodPost, "/providers/", token, fiber.Map{
		"label":   label,
		"address": "1 Market Lane",
		"city":    city,
		"zipcode": "69000",
		"phone":   "0400000000",
	})
	require.Equal(t, 201, status)
	var resp struct {
		ID string `json:"id"`
	}
	decode(t, raw, &resp)
	return resp.ID
}

func createProduct(t *testing.T, app *fiber.App, token, label, categoryID string) string {
	t.Helper()
	status, raw := request(t, app, http.MethodPost, "/products/", token, fiber.Map{
		"label":    label,
		"unit":     "L",
		"category": categoryID,
	})
	require.Equal(t, 201, status)
	var resp struct {
		ID string `json:"id"`
	}
	decode(t, raw, &resp)
	return resp.ID
}

func createBatch(t *testing.T, app *fiber.App, token, productID string, current float64, limit, providerID string) string {
	t.Helper()
	status, raw := request(t, app, http.MethodPost, "/products/"+productID+"/batches/", token, fiber.Map{
		"initial":  current,
		"current":  current,
		"price":    1.5,
		"purchase": "2025-01-10",
		"limit":    limit,
		"provider": providerID,
	})
	require.Equal(t, 201, status)
	var resp struct {
		ID string `json:"id"`
	}
	decode(t, raw, &resp)
	return resp.ID
}
