package source

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPSourceFetchesCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testCSV)
	}))
	defer server.Close()

	src, err := Open(server.URL)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	row, err := src.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if row.TrackName != "Song A" {
		t.Errorf("row = %+v", row)
	}
}

func TestHTTPSourceRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		io.WriteString(w, testCSV)
	}))
	defer server.Close()

	src, err := Open(server.URL)
	if err != nil {
		t.Fatalf("Open after retries: %v", err)
	}
	src.Close()
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestHTTPSourceDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Open(server.URL)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want no retries on 404", attempts)
	}
}
