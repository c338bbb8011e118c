package selfupdate

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// install replaces the executable at target with binary. The new file is
// staged next to the target, read back and checked against binary's
// digest, then renamed over the target with the target's permissions.
func install(target string, binary []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staged, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}
	stagedPath := staged.Name()
	defer func() { _ = os.Remove(stagedPath) }()

	if _, err := staged.Write(binary); err != nil {
		_ = staged.Close()
		return fmt.Errorf("write staging file: %w", err)
	}
	if err := staged.Sync(); err != nil {
		_ = staged.Close()
		return fmt.Errorf("sync staging file: %w", err)
	}
	if err := staged.Close(); err != nil {
		return fmt.Errorf("close staging file: %w", err)
	}

	written, err := os.ReadFile(stagedPath)
	if err != nil {
		return fmt.Errorf("read back staging file: %w", err)
	}
	want, got := sha256.Sum256(binary), sha256.Sum256(written)
	if !bytes.Equal(want[:], got[:]) {
		return fmt.Errorf("%w: staged binary changed after write", ErrChecksum)
	}

	if err := os.Chmod(stagedPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(stagedPath, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
