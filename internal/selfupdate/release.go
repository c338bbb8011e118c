package selfupdate

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// checksumsFile is published next to every release archive.
const checksumsFile = "checksums.txt"

// asset is one downloadable release archive.
type asset struct {
	Name   string
	Format archiveFormat
	Binary string
}

// releaseArch maps GOARCH to the architecture label used in asset names.
var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// assetFor returns the archive published for a platform. macOS ships a
// single universal archive.
func assetFor(goos, goarch string) (asset, error) {
	if goos == "darwin" {
		return asset{Name: binaryName + "_Darwin_all.tar.gz", Format: formatTarGz, Binary: binaryName}, nil
	}

	var (
		label  string
		format archiveFormat
		binary = binaryName
	)
	switch goos {
	case "linux":
		label, format = "Linux", formatTarGz
	case "windows":
		label, format, binary = "Windows", formatZip, binaryName+".exe"
	default:
		return asset{}, fmt.Errorf("%w: operating system %s", ErrUnsupportedPlatform, goos)
	}

	arch, ok := releaseArch[goarch]
	if !ok {
		return asset{}, fmt.Errorf("%w: architecture %s", ErrUnsupportedPlatform, goarch)
	}
	return asset{
		Name:   fmt.Sprintf("%s_%s_%s%s", binaryName, label, arch, format.ext()),
		Format: format,
		Binary: binary,
	}, nil
}

// downloadURL returns where a file of the tagged release is served.
func (c *Checker) downloadURL(tag, file string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, file)
}

// checksumTable maps file names to hex SHA-256 digests, as listed in a
// sha256sum-style file.
type checksumTable map[string]string

func parseChecksumTable(data []byte) checksumTable {
	table := checksumTable{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		table[fields[1]] = fields[0]
	}
	return table
}

// verify checks data against the digest listed for name.
func (t checksumTable) verify(name string, data []byte) error {
	want, ok := t[name]
	if !ok {
		return fmt.Errorf("%w: %s is not listed in %s", ErrChecksum, name, checksumsFile)
	}
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); !strings.EqualFold(got, want) {
		return fmt.Errorf("%w: %s: want %s, got %s", ErrChecksum, name, want, got)
	}
	return nil
}
