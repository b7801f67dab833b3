package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/nets"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrUnavailable = errors.New("source unavailable")

// Load returns the program text at location, a file path or an http(s) URL.
type Load func(ctx context.Context, location string) (string, error)

func (Module) Load(
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (string, error) {
		var r io.ReadCloser
		var err error
		if isURL(location) {
			r, err = fetch(ctx, client, location)
		} else {
			r, err = os.Open(location)
		}
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrUnavailable, location, err)
		}
		defer r.Close()

		text, err := Decode(r)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrUnavailable, location, err)
		}
		logger.InfoContext(ctx, "source loaded",
			"location", location,
			"bytes", len(text),
		)
		return text, nil
	}
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") ||
		strings.HasPrefix(location, "https://")
}

func fetch(ctx context.Context, client nets.HTTPClient, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	return resp.Body, nil
}

// Decode reads all of r as text. A byte order mark is dropped, UTF-16 is converted to UTF-8.
func Decode(r io.Reader) (string, error) {
	content, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	if err != nil {
		return "", err
	}
	return string(content), nil
}
