// Package verifier checks product authentication codes against the dataset
// the site publishes at /auth-codes.json.
//
// The dataset is public: anyone can download it and read or brute-force the
// accepted codes. Salted hashes only keep the plaintext codes out of the
// published file. This is a product decision, not something this package
// can enforce.
package verifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"dnalab/internal/domain"
	"dnalab/internal/resource"

	"go.uber.org/zap"
)

// DefaultCodesPath is where the site publishes the verification dataset
const DefaultCodesPath = "/auth-codes.json"

var ErrMalformedDataset = errors.New("malformed verification dataset")

// CodeVerifier defines the authentication code checker
type CodeVerifier interface {
	// Load fetches the dataset once. Failures leave an empty dataset and an
	// error message; a cancelled context leaves the state untouched.
	Load(ctx context.Context) error
	// Start runs Load in the background. The returned channel closes when it finishes.
	Start(ctx context.Context) <-chan struct{}
	State() (domain.LoadState, string)
	Verify(ctx context.Context, input string) domain.Verdict
}

type codeVerifier struct {
	source resource.Source
	path   string
	logger *zap.Logger

	mu     sync.RWMutex
	state  domain.LoadState
	errMsg string
	codes  map[string]struct{}
	hashes map[string]struct{}
	salt   string
}

// NewCodeVerifier creates a verifier in the loading state
func NewCodeVerifier(source resource.Source, path string, logger *zap.Logger) CodeVerifier {
	return &codeVerifier{
		source: source,
		path:   path,
		logger: logger,
		state:  domain.LoadStateLoading,
		codes:  map[string]struct{}{},
		hashes: map[string]struct{}{},
	}
}

func (v *codeVerifier) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = v.Load(ctx)
	}()
	return done
}

func (v *codeVerifier) Load(ctx context.Context) error {
	data, err := v.source.Fetch(ctx, v.path)
	if ctx.Err() != nil {
		v.logger.Debug("Verification dataset load abandoned", zap.Error(ctx.Err()))
		return ctx.Err()
	}
	if err != nil {
		v.fail(err)
		return fmt.Errorf("failed to fetch verification dataset: %w", err)
	}

	dataset, err := ParseDataset(data)
	if err != nil {
		v.fail(err)
		return err
	}

	v.apply(dataset)
	v.logger.Info("Verification dataset loaded",
		zap.Int("codes", len(dataset.Codes)),
		zap.Int("hashed_codes", len(dataset.CodesSHA256)),
	)
	return nil
}

func (v *codeVerifier) fail(err error) {
	v.logger.Warn("Failed to load verification dataset",
		zap.String("path", v.path),
		zap.Error(err),
	)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = domain.LoadStateFailed
	v.errMsg = errorMessage(err)
}

func (v *codeVerifier) apply(dataset domain.VerificationDataset) {
	codes := make(map[string]struct{}, len(dataset.Codes))
	for _, c := range dataset.Codes {
		codes[c] = struct{}{}
	}
	hashes := make(map[string]struct{}, len(dataset.CodesSHA256))
	for _, h := range dataset.CodesSHA256 {
		hashes[h] = struct{}{}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = domain.LoadStateReady
	v.errMsg = ""
	v.codes = codes
	v.hashes = hashes
	v.salt = dataset.Salt
}

func (v *codeVerifier) State() (domain.LoadState, string) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state, v.errMsg
}

func (v *codeVerifier) Verify(ctx context.Context, input string) domain.Verdict {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return domain.VerdictNone
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	if _, ok := v.codes[trimmed]; ok {
		return domain.VerdictValid
	}
	if len(v.hashes) > 0 {
		if _, ok := v.hashes[HashCode(v.salt, trimmed)]; ok {
			return domain.VerdictValid
		}
	}
	return domain.VerdictInvalid
}

// HashCode returns the lower-case hex SHA-256 digest of salt+code
func HashCode(salt, code string) string {
	sum := sha256.Sum256([]byte(salt + code))
	return hex.EncodeToString(sum[:])
}

// ParseDataset decodes the published dataset. Invalid JSON and null are
// malformed. Any other value is accepted: a non-object reads as an empty
// dataset, each field falls back to its zero value when missing or mistyped
// and non-string list elements are ignored.
func ParseDataset(data []byte) (domain.VerificationDataset, error) {
	var doc json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || strings.TrimSpace(string(doc)) == "null" {
		return domain.VerificationDataset{}, ErrMalformedDataset
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		fields = nil
	}

	dataset := domain.VerificationDataset{
		Codes:       stringList(fields["codes"]),
		CodesSHA256: stringList(fields["codesSha256"]),
	}
	if raw, ok := fields["salt"]; ok {
		if err := json.Unmarshal(raw, &dataset.Salt); err != nil {
			dataset.Salt = ""
		}
	}
	return dataset, nil
}

func stringList(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if string(item) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

func errorMessage(err error) string {
	var statusErr *resource.StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.Is(err, resource.ErrNotFound):
		return "HTTP 404"
	default:
		return err.Error()
	}
}
