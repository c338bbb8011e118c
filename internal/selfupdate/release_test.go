package selfupdate

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		name         string
		format       archiveFormat
		binary       string
	}{
		{"darwin", "amd64", "mastermind_Darwin_all.tar.gz", formatTarGz, "mastermind"},
		{"darwin", "arm64", "mastermind_Darwin_all.tar.gz", formatTarGz, "mastermind"},
		{"linux", "amd64", "mastermind_Linux_x86_64.tar.gz", formatTarGz, "mastermind"},
		{"linux", "arm64", "mastermind_Linux_arm64.tar.gz", formatTarGz, "mastermind"},
		{"linux", "386", "mastermind_Linux_i386.tar.gz", formatTarGz, "mastermind"},
		{"windows", "amd64", "mastermind_Windows_x86_64.zip", formatZip, "mastermind.exe"},
		{"windows", "arm64", "mastermind_Windows_arm64.zip", formatZip, "mastermind.exe"},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			a, err := assetFor(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.name, a.Name)
			assert.Equal(t, tt.format, a.Format)
			assert.Equal(t, tt.binary, a.Binary)
		})
	}
}

func TestAssetForUnsupported(t *testing.T) {
	_, err := assetFor("freebsd", "amd64")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)

	_, err = assetFor("linux", "mips")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestDownloadURL(t *testing.T) {
	c := NewChecker(WithDownloadBaseURL("http://dl.example/"), WithRepo("someone", "mm"))
	assert.Equal(t, "http://dl.example/someone/mm/releases/download/v1.2.0/checksums.txt",
		c.downloadURL("v1.2.0", checksumsFile))
}

func TestParseChecksumTable(t *testing.T) {
	table := parseChecksumTable([]byte(
		"abc123  mastermind_Darwin_all.tar.gz\n" +
			"badline\n" +
			"   \n" +
			"foo  bar  baz\n" +
			"def456  mastermind_Linux_x86_64.tar.gz\n"))

	assert.Equal(t, checksumTable{
		"mastermind_Darwin_all.tar.gz":   "abc123",
		"mastermind_Linux_x86_64.tar.gz": "def456",
	}, table)
	assert.Empty(t, parseChecksumTable(nil))
}

func TestChecksumTableVerify(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)
	table := checksumTable{
		"good.tar.gz": hex.EncodeToString(sum[:]),
		"bad.tar.gz":  "0000000000000000000000000000000000000000000000000000000000000000",
	}

	assert.NoError(t, table.verify("good.tar.gz", data))
	assert.ErrorIs(t, table.verify("bad.tar.gz", data), ErrChecksum)

	err := table.verify("missing.tar.gz", data)
	assert.ErrorIs(t, err, ErrChecksum)
	assert.ErrorContains(t, err, "not listed")
}
