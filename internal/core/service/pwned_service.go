package service

import (
	"bufio"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/darksignal/darksignal/internal/core/domain"
)

const (
	defaultPwnedBaseURL = "https://api.pwnedpasswords.com"
	defaultPwnedTimeout = 10 * time.Second

	// The range API takes the first 5 hex characters of the SHA-1 digest;
	// the remaining 35 are matched locally against the returned candidates.
	rangePrefixLen = 5
)

// PwnedService checks passwords against the HaveIBeenPwned range API using
// the k-anonymity scheme: only the digest prefix ever leaves the process.
type PwnedService struct {
	baseURL string
	client  *http.Client
}

func NewPwnedService(baseURL string, timeout time.Duration) *PwnedService {
	if baseURL == "" {
		baseURL = defaultPwnedBaseURL
	}
	if timeout <= 0 {
		timeout = defaultPwnedTimeout
	}
	return &PwnedService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// HashPassword returns the uppercase hex SHA-1 digest of password, the format
// the range API indexes on.
func HashPassword(password string) string {
	return fmt.Sprintf("%X", sha1.Sum([]byte(password)))
}

// SplitDigest splits a digest into its 5-character range prefix and the
// remaining suffix.
func SplitDigest(digest string) (prefix, suffix string) {
	return digest[:rangePrefixLen], digest[rangePrefixLen:]
}

// Check hashes the password, queries the range API with the digest prefix and
// scans the returned candidates for the suffix. Every call issues a live
// request. Transport failures and malformed bodies wrap ErrLookupFailed.
func (s *PwnedService) Check(ctx context.Context, password string) (bool, int, error) {
	prefix, suffix := SplitDigest(HashPassword(password))

	url := s.baseURL + "/range/" + prefix
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, 0, fmt.Errorf("%w: build request: %v", domain.ErrLookupFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, 0, fmt.Errorf("%w: unexpected status %d", domain.ErrLookupFailed, resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		candidate, err := parseCandidate(line)
		if err != nil {
			return false, 0, err
		}
		if candidate.Suffix == suffix {
			return true, candidate.Count, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, 0, fmt.Errorf("%w: read body: %v", domain.ErrLookupFailed, err)
	}

	return false, 0, nil
}

// parseCandidate parses a single SUFFIX:COUNT record.
func parseCandidate(line string) (domain.BreachCandidate, error) {
	sfx, cnt, ok := strings.Cut(line, ":")
	if !ok {
		return domain.BreachCandidate{}, fmt.Errorf("%w: malformed record %q", domain.ErrLookupFailed, line)
	}
	count, err := strconv.Atoi(strings.TrimSpace(cnt))
	if err != nil {
		return domain.BreachCandidate{}, fmt.Errorf("%w: malformed count in %q", domain.ErrLookupFailed, line)
	}
	return domain.BreachCandidate{Suffix: sfx, Count: count}, nil
}
