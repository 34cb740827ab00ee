package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetReturnsBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("model bytes"))
	}))
	defer upstream.Close()

	body, err := NewClient(time.Second).Get(context.Background(), upstream.URL)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if string(body) != "model bytes" {
		t.Errorf("Unexpected body %q", body)
	}
}

func TestGetNonSuccessStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	_, err := NewClient(time.Second).Get(context.Background(), upstream.URL)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", statusErr.StatusCode)
	}
}

func TestGetEmptyBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	_, err := NewClient(time.Second).Get(context.Background(), upstream.URL)
	if !errors.Is(err, ErrEmptyBody) {
		t.Errorf("Expected ErrEmptyBody, got %v", err)
	}
}

func TestGetTimeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer upstream.Close()

	_, err := NewClient(50 * time.Millisecond).Get(context.Background(), upstream.URL)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("A slow upstream must always map to ErrTimeout, got %v", err)
	}
}

func TestGetTransportFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	_, err := NewClient(time.Second).Get(context.Background(), url)
	if !errors.Is(err, ErrTransport) {
		t.Errorf("Expected ErrTransport, got %v", err)
	}
}

func TestGetInvalidURL(t *testing.T) {
	_, err := NewClient(time.Second).Get(context.Background(), "http://\x00invalid")
	if !errors.Is(err, ErrTransport) {
		t.Errorf("Expected ErrTransport, got %v", err)
	}
}
