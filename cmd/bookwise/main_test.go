package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookwise/pkg/database"
	"bookwise/pkg/models"
)

func setupTestDB() *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect test database")
	}
	// one connection, or every pooled connection gets its own empty memory db
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(testDB); err != nil {
		panic("failed to migrate test database")
	}
	return testDB
}

func createTestUser(testDB *gorm.DB, name, email string) models.User {
	user := models.User{
		UserUid:   uuid.New().String(),
		Name:      name,
		Email:     email,
		AvatarURL: "https://example.com/" + name + ".png",
	}
	testDB.Create(&user)
	return user
}

func createTestCategory(testDB *gorm.DB, name string) models.Category {
	category := models.Category{
		CategoryUid: uuid.New().String(),
		Name:        name,
	}
	testDB.Create(&category)
	return category
}

func createTestBook(testDB *gorm.DB, name, author string, totalPages int, categories ...models.Category) models.Book {
	book := models.Book{
		BookUid:    uuid.New().String(),
		Name:       name,
		Author:     author,
		Summary:    "Test summary",
		CoverURL:   "/images/books/test.png",
		TotalPages: totalPages,
		Categories: categories,
	}
	testDB.Create(&book)
	return book
}

func createTestRating(testDB *gorm.DB, user models.User, book models.Book, rate int, createdAt time.Time) models.Rating {
	rating := models.Rating{
		RatingUid:   uuid.New().String(),
		UserID:      user.ID,
		BookID:      book.ID,
		Rate:        rate,
		Description: "Test review",
		CreatedAt:   createdAt,
	}
	testDB.Create(&rating)
	return rating
}

func performRequest(router *gin.Engine, method, path string, body *string, userUid string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(*body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userUid != "" {
		req.Header.Set(userIDHeader, userUid)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db = setupTestDB()
	router := setupRouter()

	w := performRequest(router, "GET", "/manage/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UP")
}

func TestWrongMethodReturns405(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db = setupTestDB()
	router := setupRouter()

	w := performRequest(router, "PUT", "/books", nil, "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
