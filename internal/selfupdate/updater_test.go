package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "quizdrill_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "quizdrill_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "quizdrill_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "quizdrill_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "quizdrill_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "quizdrill_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "quizdrill_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "normal",
			input: "abc123  quizdrill_Darwin_all.tar.gz\ndef456  quizdrill_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"quizdrill_Darwin_all.tar.gz":    "abc123",
				"quizdrill_Linux_x86_64.tar.gz": "def456",
			},
		},
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "malformed lines skipped",
			input: "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n",
			want: map[string]string{
				"file.tar.gz":  "abc123",
				"other.tar.gz": "ghi789",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseChecksums([]byte(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)
	correctHex := hex.EncodeToString(h[:])

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifyChecksum(data, correctHex))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0o755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	return buf.Bytes()
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho quizdrill")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "quizdrill", binaryContent)
		got, err := extractBinary(archive, "quizdrill_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := extractBinary(archive, "quizdrill_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/amahdy/quizdrill/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name":"v1.4.0","html_url":"https://example.com/release"}`)
	}))
	defer srv.Close()

	checker := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	t.Run("update available", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.4.0", result.LatestVersion)
	})

	t.Run("already latest", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "1.4.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("newer local build", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})
}

func TestUpdateEndToEnd(t *testing.T) {
	// The archive matches whatever asset the running platform asks for.
	asset, err := assetName()
	if err != nil {
		t.Skipf("unsupported platform: %v", err)
	}
	binaryName := "quizdrill"
	if filepath.Ext(asset) == ".zip" {
		t.Skip("zip extraction covered separately; archive fixture is tar.gz")
	}
	binaryContent := []byte("new quizdrill binary")
	archive := buildTarGz(t, binaryName, binaryContent)
	archiveHash := sha256.Sum256(archive)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/amahdy/quizdrill/releases/latest":
			fmt.Fprint(w, `{"tag_name":"v9.9.9","html_url":""}`)
		case filepath.Base(r.URL.Path) == "checksums.txt":
			fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)
		default:
			_, _ = w.Write(archive)
		}
	}))
	defer srv.Close()

	// A stand-in binary to replace.
	target := filepath.Join(t.TempDir(), "quizdrill")
	require.NoError(t, os.WriteFile(target, []byte("old binary"), 0o755))

	checker := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	checker.execPath = func() (string, error) { return target, nil }

	var stages []string
	err = checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	updated, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, binaryContent, updated)
	assert.Contains(t, stages, "done")
}

func TestUpdateDevBuild(t *testing.T) {
	checker := NewChecker()
	err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}
