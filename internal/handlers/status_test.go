package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukuru1/UbuzimaHC-2/internal/config"
	"github.com/mukuru1/UbuzimaHC-2/internal/handlers"
	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

func statusRequest(t *testing.T, cfg *config.Config, prober handlers.Prober) models.StatusResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/status", handlers.NewStatusHandler(cfg, prober).GetStatus)

	req, _ := http.NewRequest("GET", "/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestStatus_PlaceholderCredentials(t *testing.T) {
	cfg := &config.Config{
		SupabaseURL:     config.PlaceholderURL,
		SupabaseAnonKey: config.PlaceholderAnonKey,
	}

	response := statusRequest(t, cfg, &fakeProber{})
	assert.False(t, response.Configured)
	assert.NotEmpty(t, response.Reason)
	assert.Nil(t, response.Probe)
}

func TestStatus_MissingCredentials(t *testing.T) {
	response := statusRequest(t, &config.Config{}, &fakeProber{})
	assert.False(t, response.Configured)
}

func TestStatus_ConfiguredAndReachable(t *testing.T) {
	cfg := &config.Config{
		SupabaseURL:     "https://abc.supabase.co",
		SupabaseAnonKey: "anon-key",
	}

	response := statusRequest(t, cfg, &fakeProber{})
	assert.True(t, response.Configured)
	require.NotNil(t, response.Probe)
	assert.True(t, response.Probe.OK)
	assert.Empty(t, response.Probe.Error)
}

func TestStatus_ProbeFailureSurfacesRawError(t *testing.T) {
	cfg := &config.Config{
		SupabaseURL:     "https://abc.supabase.co",
		SupabaseAnonKey: "anon-key",
	}
	prober := &fakeProber{err: errors.New(`relation "users" does not exist`)}

	response := statusRequest(t, cfg, prober)
	assert.True(t, response.Configured)
	require.NotNil(t, response.Probe)
	assert.False(t, response.Probe.OK)
	assert.Equal(t, `relation "users" does not exist`, response.Probe.Error)
}

func TestStatus_NoProber(t *testing.T) {
	cfg := &config.Config{
		SupabaseURL:     "https://abc.supabase.co",
		SupabaseAnonKey: "anon-key",
	}

	response := statusRequest(t, cfg, nil)
	assert.True(t, response.Configured)
	assert.Nil(t, response.Probe)
}
