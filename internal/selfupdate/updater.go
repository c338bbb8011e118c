package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// binaryName is the executable inside release archives.
const binaryName = "mastermind"

var (
	ErrDevBuild            = errors.New("cannot update a development build")
	ErrAlreadyLatest       = errors.New("already running the latest version")
	ErrChecksum            = errors.New("checksum verification failed")
	ErrBinaryNotFound      = errors.New("binary not found in archive")
	ErrUnsupportedPlatform = errors.New("no release for this platform")
)

// Stage names one step of an update.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

// UpdateInput selects the version to install. An empty TargetVersion
// means the latest release.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress reports the stage an update has reached.
type UpdateProgress struct {
	Stage   Stage
	Message string
}

// Update downloads, verifies and installs a release over the running
// executable. progress may be nil.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == DevVersion {
		return ErrDevBuild
	}
	report := func(s Stage, format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		c.logger.Debug().Str("stage", string(s)).Msg(msg)
		if progress != nil {
			progress(UpdateProgress{Stage: s, Message: msg})
		}
	}

	tag := input.TargetVersion
	if tag == "" {
		report(StageCheck, "Checking for latest version...")
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	a, err := assetFor(c.goos, c.goarch)
	if err != nil {
		return err
	}
	c.logger.Info().Str("tag", tag).Str("asset", a.Name).Msg("updating")

	report(StageDownload, "Downloading %s...", tag)
	archive, err := c.fetch(ctx, c.downloadURL(tag, a.Name))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(StageVerify, "Verifying checksum...")
	sums, err := c.fetch(ctx, c.downloadURL(tag, checksumsFile))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	if err := parseChecksumTable(sums).verify(a.Name, archive); err != nil {
		return err
	}

	report(StageExtract, "Extracting %s...", a.Binary)
	binary, err := a.Format.extract(archive, a.Binary)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(StageApply, "Applying update...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := install(target, binary); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(StageDone, "Updated to %s", tag)
	return nil
}

// fetch GETs url and returns the whole body.
func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}
