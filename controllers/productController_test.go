package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/freshfare/freshfare-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	payload := map[string]any{
		"name":        "Sourdough Loaf",
		"brand":       "FreshFare Bakery",
		"description": "Naturally leavened, baked daily.",
		"category":    "bakery",
		"price":       550,
		"tags":        []string{"bread", "fresh"},
	}

	rr := doRequest(t, server, http.MethodPost, "/products", payload)
	require.Equal(t, http.StatusCreated, rr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateProduct_MissingFields(t *testing.T) {
	setupTestDB(t)
	server := setupRouter()

	rr := doRequest(t, server, http.MethodPost, "/products", map[string]any{"name": "No category"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetProducts_SearchAndPagination(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	names := []string{"Green Apples", "Red Apples", "Bananas", "Apple Juice", "Oranges"}
	for _, name := range names {
		require.NoError(t, db.Create(&models.Product{Name: name, Category: "produce", Price: 100}).Error)
	}

	rr := doRequest(t, server, http.MethodGet, "/products?search=Apple", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Products   []models.Product `json:"products"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 3)
	assert.Equal(t, 3, resp.Pagination.Total)
}

func TestGetProduct(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	product := models.Product{Name: "Oat Milk", Category: "dairy", Price: 320}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.ProductImage{Url: "https://cdn.freshfare.store/oat-milk.jpg", ProductID: product.ID}).Error)

	testCases := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"found", "/products/1", http.StatusOK},
		{"not found", "/products/42", http.StatusNotFound},
		{"bad id", "/products/latest", http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doRequest(t, server, http.MethodGet, tc.target, nil)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}

	rr := doRequest(t, server, http.MethodGet, "/products/1", nil)
	var got models.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Oat Milk", got.Name)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "https://cdn.freshfare.store/oat-milk.jpg", got.Images[0].Url)
}
