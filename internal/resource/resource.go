package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// MaxResourceSize caps how much of a resource body is read
const MaxResourceSize = 4 << 20

var (
	ErrNotFound = errors.New("resource not found")
	ErrStatus   = errors.New("unexpected response status")
)

// Source fetches raw JSON documents by site-relative path (e.g. "/auth-codes.json")
type Source interface {
	Fetch(ctx context.Context, p string) ([]byte, error)
}

type fileSource struct {
	fs   afero.Fs
	root string
}

// NewFileSource reads resources from root on the given filesystem
func NewFileSource(fs afero.Fs, root string) Source {
	return &fileSource{fs: fs, root: root}
}

// NewOSFileSource reads resources from a directory on disk
func NewOSFileSource(root string) Source {
	return NewFileSource(afero.NewOsFs(), root)
}

func (s *fileSource) Fetch(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// path.Clean on a rooted path keeps lookups inside root
	clean := path.Clean("/" + strings.TrimPrefix(p, "/"))
	full := path.Join(s.root, clean)

	f, err := s.fs.Open(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return nil, fmt.Errorf("failed to open resource %s: %w", clean, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxResourceSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", clean, err)
	}
	return data, nil
}

type httpSource struct {
	client  *http.Client
	baseURL string
}

// NewHTTPSource fetches resources relative to baseURL
func NewHTTPSource(baseURL string, timeout time.Duration) Source {
	return &httpSource{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *httpSource) Fetch(ctx context.Context, p string) ([]byte, error) {
	url := s.baseURL + "/" + strings.TrimPrefix(p, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResourceSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return data, nil
}

// StatusError reports a non-success HTTP response
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}

// New picks the HTTP source when baseURL is set and the public directory otherwise
func New(baseURL, publicDir string, timeout time.Duration) Source {
	if baseURL != "" {
		return NewHTTPSource(baseURL, timeout)
	}
	return NewOSFileSource(publicDir)
}

type observedSource struct {
	Source
	observe func(p string, err error)
}

// Observed reports the outcome of every fetch to observe
func Observed(src Source, observe func(p string, err error)) Source {
	return &observedSource{Source: src, observe: observe}
}

func (s *observedSource) Fetch(ctx context.Context, p string) ([]byte, error) {
	data, err := s.Source.Fetch(ctx, p)
	s.observe(p, err)
	return data, err
}
