package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	cldapi "github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/plataforma-367/traffic-case-api/config"
)

// Evidence handles Cloudinary related requests for case photo uploads
type Evidence struct{}

// GenerateSignature signs the upload parameters so the frontend can push
// evidence photos straight to Cloudinary
func (e Evidence) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	params := url.Values{}
	params.Set("timestamp", timestamp)
	params.Set("upload_preset", uploadPreset)

	signature, err := cldapi.SignParameters(params, apiSecret)
	if err != nil {
		config.ErrorStatus("failed to sign upload parameters", http.StatusInternalServerError, w, err)
		return
	}

	response := map[string]string{
		"timestamp": timestamp,
		"signature": signature,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
