package infra

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestClient(t *testing.T, h http.HandlerFunc) *DepotClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewDepotClient(srv.URL+"/api/", 5*time.Second)
}

func TestDo_DecodesSuccessBody(t *testing.T) {
	var gotPath, gotRequestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[{"id":"1","name":"Catan"}]`))
	})

	var out []item
	ctx := WithRequestID(context.Background(), "req-1")
	require.NoError(t, c.Do(ctx, http.MethodGet, "games/rayon", nil, &out))

	assert.Equal(t, "/api/games/rayon", gotPath)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, []item{{ID: "1", Name: "Catan"}}, out)
}

func TestDo_SendsJSONBody(t *testing.T) {
	var got map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Do(context.Background(), http.MethodPut, "games/7", map[string]string{"status": "payé"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "payé", got["status"])
}

func TestDo_ServerErrorCarriesStatusAndMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Jeu déjà vendu"}`))
	})

	err := c.Do(context.Background(), http.MethodPut, "games/7", map[string]string{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServerError))
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
	assert.Equal(t, "Erreur serveur 400: Jeu déjà vendu", err.Error())
}

func TestDo_ServerErrorWithoutMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.Do(context.Background(), http.MethodGet, "games", nil, &[]item{})
	assert.True(t, errors.Is(err, ErrServerError))
	assert.Equal(t, "Erreur serveur: 500", err.Error())
}

func TestDo_EmptyBodyWhenDecodingExpected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	var out []item
	err := c.Do(context.Background(), http.MethodGet, "games", nil, &out)
	assert.True(t, errors.Is(err, ErrEmptyResponse))
	assert.Nil(t, out)
}

func TestDo_EmptyBodyIsFineWithoutOutput(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	assert.NoError(t, c.Do(context.Background(), http.MethodDelete, "buyers/1", nil, nil))
}

func TestDo_DecodeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	var out []item
	err := c.Do(context.Background(), http.MethodGet, "games", nil, &out)
	assert.True(t, errors.Is(err, ErrDecodeFailure))
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL + "/api/"
	srv.Close()

	c := NewDepotClient(base, time.Second)
	err := c.Do(context.Background(), http.MethodGet, "games", nil, nil)
	assert.True(t, errors.Is(err, ErrNetworkFailure))
	assert.Zero(t, StatusOf(err))
}

func TestDo_InvalidEndpoint(t *testing.T) {
	c := NewDepotClient("://bad base", time.Second)
	err := c.Do(context.Background(), http.MethodGet, "games", nil, nil)
	assert.True(t, errors.Is(err, ErrInvalidEndpoint))
	assert.Equal(t, "URL invalide", err.Error())
}

func TestRaw_ReturnsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`"42"`))
	})

	body, err := c.Raw(context.Background(), http.MethodGet, "games/nextId")
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(body))
}
