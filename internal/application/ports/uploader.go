package ports

import "context"

// AssetUploader pushes a local file to the asset CDN and returns its public
// URL. One shot: either the URL comes back or the operation failed; callers
// never retry.
type AssetUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
