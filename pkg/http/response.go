package http

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/net/html/charset"
)

// maxBodySize caps how much of a page is read into memory.
const maxBodySize = 5 * 1024 * 1024

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s: %s", e.StatusCode, e.URL, e.Status)
}

// ReadResponseBody reads and closes HTTP response body
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Error("Failed to close response body", "error", closeErr)
		}
	}()
	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}

// GetContentType returns the content type of the response
func GetContentType(resp *http.Response) string {
	return resp.Header.Get("Content-Type")
}

// EnsureSuccess checks that the response status is 2xx
func EnsureSuccess(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		url := ""
		if resp.Request != nil && resp.Request.URL != nil {
			url = resp.Request.URL.String()
		}
		return &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}

// DecodeToUTF8 converts body to UTF-8 using the declared or sniffed charset.
func DecodeToUTF8(body []byte, contentType string) string {
	utf8Reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		slog.Warn("Failed to detect charset, assuming UTF-8", "error", err)
		return string(body)
	}

	utf8Bytes, err := io.ReadAll(utf8Reader)
	if err != nil {
		slog.Warn("Failed to convert body to UTF-8, using raw bytes", "error", err)
		return string(body)
	}

	return string(utf8Bytes)
}
