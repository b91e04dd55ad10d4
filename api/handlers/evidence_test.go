package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSignature(t *testing.T) {
	t.Setenv("CLOUDINARY_UPLOAD_PRESET", "case-evidence")
	t.Setenv("CLOUDINARY_API_SECRET", "test-secret")

	handler := Evidence{}

	req := httptest.NewRequest("POST", "/evidence/sign-upload", nil)
	w := httptest.NewRecorder()

	handler.GenerateSignature(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	err := json.NewDecoder(w.Body).Decode(&got)
	assert.NoError(t, err)
	assert.NotEmpty(t, got["timestamp"])
	assert.NotEmpty(t, got["signature"])
}
