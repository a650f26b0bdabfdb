package media

import (
	"context"
	"io"
)

// The upload gateway has two strategies. The signed-direct path hands the
// browser a one-shot authorization and keeps image bytes off the application
// server entirely; the relayed path accepts the bytes here, compresses them
// and stores them on object storage. Both end in a permanent URL the client
// attaches to a work ticket.

// UploadAuthorization is the proof handed to the client for one direct
// upload transaction against the media host. The signing secret itself is
// never exposed.
type UploadAuthorization struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Folder    string `json:"folder"`
}

type SignRequest struct {
	Folder   string
	PublicID string
	Tags     []string
}

// Signer authorizes direct client uploads.
type Signer interface {
	Configured() bool
	AuthorizeUpload(req SignRequest) (*UploadAuthorization, error)
}

// Store receives image bytes server-side and persists them, returning the
// permanent public URL.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}
