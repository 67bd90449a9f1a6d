package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchUnconfiguredProvider(t *testing.T) {
	client := NewClient(nil)

	entries, remote, err := client.Fetch(context.Background(), "fitbit")
	require.NoError(t, err)
	require.False(t, remote)
	require.Nil(t, entries)
}

func TestFetchBareArrayPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"timestamp":"2026-03-01T07:00:00Z","steps":8200},{"timestamp":"2026-03-02T07:00:00Z"}]`))
	}))
	defer server.Close()

	client := NewClient(map[string]string{"whoop": server.URL})
	entries, remote, err := client.Fetch(context.Background(), "whoop")
	require.NoError(t, err)
	require.True(t, remote)
	require.Len(t, entries, 2)
	require.Equal(t, 8200, *entries[0].Steps)
}

func TestFetchWrappedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"entries":[{"timestamp":"2026-03-01T07:00:00Z"}]}`))
	}))
	defer server.Close()

	client := NewClient(map[string]string{"fitbit": server.URL})
	entries, remote, err := client.Fetch(context.Background(), "fitbit")
	require.NoError(t, err)
	require.True(t, remote)
	require.Len(t, entries, 1)
}

func TestFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(map[string]string{"whoop": server.URL})
	_, remote, err := client.Fetch(context.Background(), "whoop")
	require.True(t, remote)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=502")
}

func TestFetchRejectsUnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": "nothing useful"}`))
	}))
	defer server.Close()

	client := NewClient(map[string]string{"whoop": server.URL})
	_, _, err := client.Fetch(context.Background(), "whoop")
	require.Error(t, err)

	server2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server2.Close()

	client = NewClient(map[string]string{"whoop": server2.URL})
	_, _, err = client.Fetch(context.Background(), "whoop")
	require.Error(t, err)
}
