package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/mod/semver"
)

// Release coordinates.
const (
	DefaultOwner           = "abhisek"
	DefaultRepo            = "mastermind"
	DefaultBaseURL         = "https://api.github.com"
	DefaultDownloadBaseURL = "https://github.com"
)

// DevVersion is what debug.ReadBuildInfo reports for a build outside a
// module download.
const DevVersion = "(devel)"

// Checker talks to the GitHub releases API and applies updates.
type Checker struct {
	owner           string
	repo            string
	baseURL         string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
	goos            string
	goarch          string
	logger          zerolog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL points release lookups at another API host.
func WithBaseURL(u string) Option {
	return func(c *Checker) { c.baseURL = u }
}

// WithDownloadBaseURL points asset downloads at another host.
func WithDownloadBaseURL(u string) Option {
	return func(c *Checker) { c.downloadBaseURL = u }
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Checker) { c.client = hc }
}

// WithTimeout bounds every HTTP request made by the checker.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client = &http.Client{Timeout: d} }
}

// WithRepo selects the GitHub repository releases are read from.
func WithRepo(owner, repo string) Option {
	return func(c *Checker) {
		c.owner = owner
		c.repo = repo
	}
}

// WithLogger sets the logger for progress diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

func withPlatform(goos, goarch string) Option {
	return func(c *Checker) {
		c.goos = goos
		c.goarch = goarch
	}
}

// NewChecker returns a Checker for the mastermind releases.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:           DefaultOwner,
		repo:            DefaultRepo,
		baseURL:         DefaultBaseURL,
		downloadBaseURL: DefaultDownloadBaseURL,
		client:          &http.Client{Timeout: 30 * time.Second},
		execPath:        os.Executable,
		goos:            runtime.GOOS,
		goarch:          runtime.GOARCH,
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CheckInput struct {
	Version string
}

type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check looks up the latest release and compares it with input.Version.
// Development and non-semver builds never report an update.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.baseURL, "/"), c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	result := &CheckResult{
		CurrentVersion: input.Version,
		LatestVersion:  rel.TagName,
		ReleaseURL:     rel.HTMLURL,
	}
	current, latest := canonical(input.Version), canonical(rel.TagName)
	if current != "" && latest != "" {
		result.UpdateAvailable = semver.Compare(latest, current) > 0
	}

	c.logger.Debug().
		Str("current", input.Version).
		Str("latest", rel.TagName).
		Bool("update_available", result.UpdateAvailable).
		Msg("checked for updates")
	return result, nil
}

// canonical returns v as a valid "vX.Y.Z" semver string, or "" if it is
// not one.
func canonical(v string) string {
	if v == "" || v == DevVersion {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
