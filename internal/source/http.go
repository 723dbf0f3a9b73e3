package source

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"
)

type httpStatusError struct {
	code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// newHTTPSource downloads a CSV export and serves it like a local file.
// Server-side errors are retried; client-side errors are not.
func newHTTPSource(url string) (Source, error) {
	var body []byte
	err := retry.Do(
		func() error {
			resp, err := http.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return &httpStatusError{code: resp.StatusCode}
			}

			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Attempts(4),
		retry.Delay(time.Second),
		retry.RetryIf(func(err error) bool {
			if serr, ok := err.(*httpStatusError); ok {
				return serr.code/100 == 5
			}
			return true
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrUnavailable, url, err)
	}

	return newCSVSourceFromReader(io.NopCloser(bytes.NewReader(body)))
}
