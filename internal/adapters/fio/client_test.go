package fio_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplacht/prunplanner-go/internal/adapters/fio"
)

func TestClient_Fetch_RequestsDatasetEndpoint(t *testing.T) {
	// Arrange
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := fio.NewClient(server.URL, 0)

	// Act
	body, err := client.Fetch(context.Background(), "buildings")

	// Assert
	require.NoError(t, err)
	defer body.Close()
	payload, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "/building/allbuildings", gotPath)
	assert.Equal(t, "[]", string(payload))
}

func TestClient_Fetch_UnknownKind(t *testing.T) {
	// Arrange
	client := fio.NewClient("http://localhost", 0)

	// Act
	_, err := client.Fetch(context.Background(), "ships")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dataset kind")
}

func TestClient_Fetch_NonOKStatus(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := fio.NewClient(server.URL, 0)

	// Act
	_, err := client.Fetch(context.Background(), "exchange")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}
