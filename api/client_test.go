package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", 5*time.Second, zap.NewNop())
}

func TestClientDo(t *testing.T) {
	t.Run("sends bearer token and json content type", func(t *testing.T) {
		var gotAuth, gotContentType string
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		var out map[string]bool
		err := client.post(context.Background(), "/anything", map[string]string{"k": "v"}, &out)
		assert.NoError(t, err)
		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.Equal(t, "application/json", gotContentType)
		assert.True(t, out["ok"])
	})

	t.Run("non-2xx becomes a StatusError carrying the body", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"quantity too large"}`))
		})

		var out map[string]any
		err := client.get(context.Background(), "/promotions", &out)

		var statusErr *StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
		assert.Contains(t, statusErr.Body, "quantity too large")
	})

	t.Run("malformed 2xx body becomes a DecodeError", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>definitely not json</html>`))
		})

		var out map[string]any
		err := client.get(context.Background(), "/promotions", &out)

		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("nil out skips decoding entirely", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json either`))
		})

		err := client.del(context.Background(), "/ratings/3", nil)
		assert.NoError(t, err)
	})

	t.Run("context cancellation aborts the request", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		var out map[string]any
		err := client.get(ctx, "/promotions", &out)
		assert.Error(t, err)
	})
}

func TestListPromotions(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/partners/7/promotions", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"promotion_id":1,"title":"2x1 menu","available_quantity":5,
			 "start_date":"2024-01-01","expiration_date":"2024-12-31",
			 "status":{"id":1,"name":"active"}},
			{"promotion_id":2,"title":"free entry","available_quantity":null,
			 "start_date":"2024-03-01","expiration_date":"2024-03-31",
			 "status":{"id":2,"name":"inactive"}}
		]`))
	})

	promotions, err := client.ListPromotions(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, promotions, 2)

	assert.Equal(t, "2x1 menu", promotions[0].Title)
	assert.NotNil(t, promotions[0].AvailableQuantity)
	assert.Equal(t, 5, *promotions[0].AvailableQuantity)
	assert.Equal(t, "2024-01-01", promotions[0].StartDate.String())
	assert.Equal(t, "active", promotions[0].Status.Name)

	assert.Nil(t, promotions[1].AvailableQuantity)
}
