package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureSubDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureSubDir("attachments")
	require.NoError(t, err)

	want := filepath.Join(tmp, "attachments")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureSubDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	first, err := EnsureSubDir("attachments")
	require.NoError(t, err)

	second, err := EnsureSubDir("attachments")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnsureSubDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("attachments", []byte("x"), 0o660))

	_, err := EnsureSubDir("attachments")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestEncodeDecodeDataURL_Roundtrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "photo.png")
	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	require.NoError(t, os.WriteFile(path, content, 0o600))

	name, mimeType, dataURL, err := EncodeDataURL(path)
	require.NoError(t, err)
	require.Equal(t, "photo.png", name)
	require.Equal(t, "image/png", mimeType)

	gotMime, gotData, err := DecodeDataURL(dataURL)
	require.NoError(t, err)
	require.Equal(t, "image/png", gotMime)
	require.Equal(t, content, gotData)
}

func TestEncodeDataURL_UnknownExtension(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "blob.xyz123")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	_, mimeType, _, err := EncodeDataURL(path)
	require.NoError(t, err)
	require.Equal(t, "application/octet-stream", mimeType)
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not a data url", "https://example.com/a.png"},
		{"missing payload", "data:image/png;base64"},
		{"unsupported encoding", "data:image/png;base32,xxxx"},
		{"bad base64", "data:image/png;base64,!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeDataURL(tt.in)
			require.Error(t, err)
		})
	}
}
