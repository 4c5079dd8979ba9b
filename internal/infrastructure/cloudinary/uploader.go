package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rahulxkr/storekart-api/internal/application/ports"
	"github.com/rahulxkr/storekart-api/pkg/config"
)

var _ ports.AssetUploader = (*Uploader)(nil)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Uploader implements AssetUploader against the Cloudinary upload API using
// plain net/http; no SDK required. Requests are authenticated with the
// signed-upload scheme: SHA-1 over the sorted params plus the API secret.
type Uploader struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewUploader builds the adapter. An empty cloud name yields an uploader
// whose calls fail with a descriptive error instead of panicking.
func NewUploader(cfg config.CloudinaryConfig) *Uploader {
	return &Uploader{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		now: time.Now,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload pushes a local file and returns the hosted HTTPS URL.
func (u *Uploader) Upload(ctx context.Context, localPath string) (string, error) {
	if u.cloudName == "" {
		return "", fmt.Errorf("cloudinary: CLOUDINARY_CLOUD_NAME not configured")
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("cloudinary: open file: %w", err)
	}
	defer file.Close()

	timestamp := strconv.FormatInt(u.now().Unix(), 10)
	params := map[string]string{
		"timestamp": timestamp,
	}
	if u.folder != "" {
		params["folder"] = u.folder
	}

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return "", fmt.Errorf("cloudinary: write field: %w", err)
		}
	}
	if err := writer.WriteField("api_key", u.apiKey); err != nil {
		return "", fmt.Errorf("cloudinary: write field: %w", err)
	}
	if err := writer.WriteField("signature", u.sign(params)); err != nil {
		return "", fmt.Errorf("cloudinary: write field: %w", err)
	}
	part, err := writer.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return "", fmt.Errorf("cloudinary: create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("cloudinary: copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("cloudinary: close form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", u.baseURL, u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return "", fmt.Errorf("cloudinary: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("cloudinary: %w", ctx.Err())
		}
		return "", fmt.Errorf("cloudinary: upload request: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("cloudinary: read response: %w", err)
	}

	var out uploadResponse
	if err := json.Unmarshal(rawBody, &out); err != nil {
		return "", fmt.Errorf("cloudinary: decode response (HTTP %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("cloudinary: upload rejected: %s", out.Error.Message)
		}
		return "", fmt.Errorf("cloudinary: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	if out.SecureURL != "" {
		return out.SecureURL, nil
	}
	return out.URL, nil
}

// sign builds the request signature: SHA-1 over "k=v&k=v" (keys sorted) with
// the API secret appended. api_key and file are excluded by the protocol.
func (u *Uploader) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + u.apiSecret))
	return hex.EncodeToString(sum[:])
}
