package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSharedVoice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath, gotKey string
		var gotBody addVoiceRequest

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("xi-api-key")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})
		err := client.AddSharedVoice(context.Background(), "key-1", "owner-1", "voice-1", "My Voice")

		require.NoError(t, err)
		assert.Equal(t, "/v1/voices/add/owner-1/voice-1", gotPath)
		assert.Equal(t, "key-1", gotKey)
		assert.Equal(t, "My Voice", gotBody.NewName)
	})

	t.Run("Non-2xx Captured As APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail":"voice not shareable"}`))
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})
		err := client.AddSharedVoice(context.Background(), "key-1", "owner-1", "voice-1", "")

		require.Error(t, err)
		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "voice not shareable")
		assert.Contains(t, err.Error(), "422")
	})

	t.Run("Transport Error Is Not APIError", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1})
		err := client.AddSharedVoice(context.Background(), "key-1", "owner-1", "voice-1", "")

		require.Error(t, err)
		_, ok := err.(*APIError)
		assert.False(t, ok)
	})
}
