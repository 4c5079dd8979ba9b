package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulxkr/storekart-api/pkg/config"
)

func testUploader(t *testing.T, handler http.HandlerFunc) *Uploader {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u := NewUploader(config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: "secret456",
		Folder:    "storekart",
	})
	u.baseURL = server.URL
	u.httpClient = server.Client()
	u.now = func() time.Time { return time.Unix(1700000000, 0) }
	return u
}

func tempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))
	return path
}

func TestUploadSendsSignedForm(t *testing.T) {
	var gotPath string
	var form map[string]string
	var fileName string

	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		form = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			form[k] = v[0]
		}
		fileName = r.MultipartForm.File["file"][0].Filename
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/image/upload/v1/storekart/avatar.png"}`))
	})

	url, err := u.Upload(context.Background(), tempImage(t))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1/storekart/avatar.png", url)
	assert.Equal(t, "/demo/image/upload", gotPath)
	assert.Equal(t, "avatar.png", fileName)
	assert.Equal(t, "key123", form["api_key"])
	assert.Equal(t, "storekart", form["folder"])
	assert.Equal(t, "1700000000", form["timestamp"])

	sum := sha1.Sum([]byte("folder=storekart&timestamp=1700000000secret456"))
	assert.Equal(t, hex.EncodeToString(sum[:]), form["signature"])
}

func TestUploadRejectedByAPI(t *testing.T) {
	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`))
	})

	_, err := u.Upload(context.Background(), tempImage(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Signature")
}

func TestUploadMissingFile(t *testing.T) {
	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := u.Upload(context.Background(), "/nope/missing.png")
	assert.Error(t, err)
}

func TestUploadWithoutCloudName(t *testing.T) {
	u := NewUploader(config.CloudinaryConfig{})
	_, err := u.Upload(context.Background(), "/tmp/x.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLOUDINARY_CLOUD_NAME")
}
