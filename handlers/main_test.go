package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"food-rescue-api/config"
	"food-rescue-api/models"
	"food-rescue-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires a fresh in-memory database and a full engine so every
// test exercises the real middleware chain
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodListing{},
		&models.Request{},
		&models.Feedback{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	config.DB = db
	config.UploadDir = t.TempDir()

	r := gin.New()
	r.Static("/uploads", config.UploadDir)
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// register creates a user through the API and returns its token and id
func register(t *testing.T, r *gin.Engine, role models.UserRole, email string) (string, uint) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name":     string(role) + " user",
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s failed: %d %s", email, w.Code, w.Body.String())
	}
	body := decode(t, w)
	token, _ := body["token"].(string)
	user, _ := body["user"].(map[string]interface{})
	id, _ := user["id"].(float64)
	if token == "" || id == 0 {
		t.Fatalf("register %s returned no token or id: %s", email, w.Body.String())
	}
	return token, uint(id)
}

// postFood creates a listing via the multipart endpoint and returns its id
func postFood(t *testing.T, r *gin.Engine, token, itemName, quantity string) uint {
	t.Helper()
	w := doMultipartFood(t, r, token, itemName, quantity, "image/png", []byte("png-bytes"))
	if w.Code != http.StatusCreated {
		t.Fatalf("post food failed: %d %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	food, _ := body["food"].(map[string]interface{})
	id, _ := food["id"].(float64)
	if id == 0 {
		t.Fatalf("post food returned no id: %s", w.Body.String())
	}
	return uint(id)
}

func doMultipartFood(t *testing.T, r *gin.Engine, token, itemName, quantity, contentType string, image []byte) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if err := mw.WriteField("item_name", itemName); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	if err := mw.WriteField("quantity", quantity); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="food_image"; filename="food.png"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(image); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/foods", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// createRequest places a charity request against a listing and returns its id
func createRequest(t *testing.T, r *gin.Engine, charityToken string, foodID uint) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/requests", charityToken, gin.H{"food_id": foodID})
	if w.Code != http.StatusCreated {
		t.Fatalf("create request failed: %d %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	request, _ := body["request"].(map[string]interface{})
	id, _ := request["id"].(float64)
	if id == 0 {
		t.Fatalf("create request returned no id: %s", w.Body.String())
	}
	return uint(id)
}
