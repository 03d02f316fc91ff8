package domain

// VerificationDataset holds the codes accepted by the authenticator.
// CodesSHA256 entries are hex encoded SHA-256 digests of Salt+code.
type VerificationDataset struct {
	Codes       []string `json:"codes"`
	CodesSHA256 []string `json:"codesSha256"`
	Salt        string   `json:"salt"`
}

// Verdict is the outcome of a single code check
type Verdict string

const (
	VerdictNone    Verdict = "none"
	VerdictValid   Verdict = "valid"
	VerdictInvalid Verdict = "invalid"
)

// LoadState tracks the lifecycle of the verification dataset
type LoadState string

const (
	LoadStateLoading LoadState = "loading"
	LoadStateReady   LoadState = "ready"
	LoadStateFailed  LoadState = "failed"
)
