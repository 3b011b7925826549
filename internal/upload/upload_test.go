package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes is a minimal PNG signature plus padding, enough for content-type
// sniffing
var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)

// fileHeader builds a real multipart.FileHeader by round-tripping content
// through a multipart form
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestValidateImageAcceptsSniffedImage(t *testing.T) {
	header := fileHeader(t, "logo.png", pngBytes)

	result, err := ValidateImage(header)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, "image/png", result.ContentType)
}

func TestValidateImageIgnoresMisleadingExtension(t *testing.T) {
	// PNG content behind a .txt name is still an image
	header := fileHeader(t, "notes.txt", pngBytes)

	result, err := ValidateImage(header)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, "image/png", result.ContentType)
}

func TestValidateImageRejectsNonImageContent(t *testing.T) {
	header := fileHeader(t, "script.png", []byte("<html><body>not an image</body></html>"))

	result, err := ValidateImage(header)
	assert.ErrorIs(t, err, ErrNotImage)
	assert.False(t, result.Accepted)
	assert.Contains(t, result.Reason, "not an image")
}

func TestValidateImageRejectsMissingFile(t *testing.T) {
	_, err := ValidateImage(nil)
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = ValidateImage(&multipart.FileHeader{})
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestValidateImageRejectsOversizedFile(t *testing.T) {
	// Size is checked before the content is read
	header := &multipart.FileHeader{Filename: "huge.png", Size: MaxUploadBytes + 1}

	result, err := ValidateImage(header)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Contains(t, result.Reason, "limit")
}

func TestStoreSaveFileWritesContent(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	name, err := store.SaveFile(fileHeader(t, "logo.png", pngBytes), "funeral", "logo")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "funeral_logo_"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	content, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, content)
}

func TestStoreSaveFileNamesNeverCollide(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.SaveFile(fileHeader(t, "logo.png", pngBytes), "funeral", "logo")
	require.NoError(t, err)
	second, err := store.SaveFile(fileHeader(t, "logo.png", pngBytes), "funeral", "logo")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStoreSanitizesNameComponents(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.SaveFile(fileHeader(t, "logo.png", pngBytes), "../etc", "lo go")
	require.NoError(t, err)

	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")
	assert.NotContains(t, name, " ")
}

func TestStoreRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.SaveFile(fileHeader(t, "logo.png", pngBytes), "funeral", "logo")
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(err))

	// Missing files and empty names are not errors
	assert.NoError(t, store.Remove(name))
	assert.NoError(t, store.Remove(""))
}

func TestStoreRemoveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	outside := filepath.Join(dir, "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	require.NoError(t, store.Remove("../outside.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err, "removal never escapes the upload directory")
}
