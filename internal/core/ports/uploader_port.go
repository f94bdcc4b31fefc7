package ports

import (
	"context"

	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
)

// AssetUploader pushes a picked image to the remote asset host and returns
// the hosted URL. Failures are reported to the caller, never retried.
type AssetUploader interface {
	Upload(ctx context.Context, image *domain.LocalImage) (string, error)
}
