package main

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeProfile(t *testing.T, body []byte) map[string]interface{} {
	var response struct {
		Profile map[string]interface{} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(body, &response))
	return response.Profile
}

func TestGetProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testDB := setupTestDB()
	db = testDB
	router := setupRouter()

	programming := createTestCategory(testDB, "Programação")
	education := createTestCategory(testDB, "Educação")
	fiction := createTestCategory(testDB, "Ficção")

	user := createTestUser(testDB, "Jaxson Dias", "jaxson@test.com")
	clean := createTestBook(testDB, "Código Limpo", "Robert C. Martin", 365, programming, education)
	arch := createTestBook(testDB, "Arquitetura limpa", "Robert C. Martin", 288, programming)
	hobbit := createTestBook(testDB, "O Hobbit", "J.R.R. Tolkien", 360, fiction)

	now := time.Now()
	createTestRating(testDB, user, clean, 5, now.Add(-2*time.Hour))
	createTestRating(testDB, user, arch, 4, now.Add(-time.Hour))
	createTestRating(testDB, user, hobbit, 5, now)

	w := performRequest(router, "GET", "/profile/"+user.UserUid, nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	profile := decodeProfile(t, w.Body.Bytes())

	assert.Equal(t, float64(3), profile["ratedBooks"])
	assert.Equal(t, float64(365+288+360), profile["readPages"])
	// two books by the same author count once
	assert.Equal(t, float64(2), profile["readAuthors"])
	assert.Equal(t, "Programação", profile["mostReadCategory"])

	userInfo := profile["user"].(map[string]interface{})
	assert.Equal(t, "Jaxson Dias", userInfo["name"])

	ratings := profile["ratings"].([]interface{})
	require.Len(t, ratings, 3)
	newest := ratings[0].(map[string]interface{})
	newestBook := newest["book"].(map[string]interface{})
	assert.Equal(t, "O Hobbit", newestBook["name"])
}

func TestGetProfileNoRatings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testDB := setupTestDB()
	db = testDB
	router := setupRouter()

	user := createTestUser(testDB, "Novo Leitor", "novo@test.com")

	w := performRequest(router, "GET", "/profile/"+user.UserUid, nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	profile := decodeProfile(t, w.Body.Bytes())

	assert.Equal(t, float64(0), profile["ratedBooks"])
	assert.Equal(t, float64(0), profile["readPages"])
	assert.Equal(t, float64(0), profile["readAuthors"])
	_, hasCategory := profile["mostReadCategory"]
	assert.False(t, hasCategory, "a user with no ratings has no most-read category")
}

func TestGetProfileStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testDB := setupTestDB()
	db = testDB
	router := setupRouter()

	user := createTestUser(testDB, "Jaxson Dias", "jaxson@test.com")

	sqlDB, _ := testDB.DB()
	sqlDB.Close()

	w := performRequest(router, "GET", "/profile/"+user.UserUid, nil, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetProfileUnknownUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testDB := setupTestDB()
	db = testDB
	router := setupRouter()

	w := performRequest(router, "GET", "/profile/11111111-2222-3333-4444-555555555555", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
