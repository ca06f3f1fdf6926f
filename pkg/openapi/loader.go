package openapi

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader turns a Source into a Document. Implementations decide which source
// kinds they support and how fetching is performed.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions carries the knobs a Loader implementation needs. Zero values
// disable the corresponding strategy: without a FileSystem an fs source fails,
// and without HTTP enabled a url source fails.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS

	// HTTPClient, when set, is used for SourceKindURL fetches as-is.
	HTTPClient *http.Client

	// AllowHTTPFallback builds a default client when HTTPClient is nil.
	AllowHTTPFallback bool

	// RequestTimeout bounds URL fetches.
	RequestTimeout time.Duration
}
