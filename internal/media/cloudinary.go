package media

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mondaynail/salon-api/internal/config"
	"github.com/mondaynail/salon-api/internal/httperr"
)

// CloudinarySigner implements the signed-direct upload strategy against
// Cloudinary's upload API.
type CloudinarySigner struct {
	cfg config.CloudinaryConfig
	now func() time.Time
}

func NewCloudinarySigner(cfg config.CloudinaryConfig) *CloudinarySigner {
	return &CloudinarySigner{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *CloudinarySigner) Configured() bool {
	return s.cfg.CloudName != "" && s.cfg.APIKey != "" && s.cfg.APISecret != ""
}

// AuthorizeUpload builds the signed parameter set for exactly one upload.
// Configuration is checked up front so a missing secret surfaces here, not
// mid-upload on the client.
func (s *CloudinarySigner) AuthorizeUpload(req SignRequest) (*UploadAuthorization, error) {
	if !s.Configured() {
		return nil, httperr.ErrBusiness("media_not_configured")
	}

	timestamp := s.now().Unix()

	folder := strings.TrimSpace(req.Folder)
	if folder == "" {
		folder = s.cfg.UploadFolder
	}

	params := map[string]string{
		"timestamp": strconv.FormatInt(timestamp, 10),
	}
	if folder != "" {
		params["folder"] = folder
	}
	if publicID := strings.TrimSpace(req.PublicID); publicID != "" {
		params["public_id"] = publicID
	}
	if tags := joinTags(req.Tags); tags != "" {
		params["tags"] = tags
	}

	return &UploadAuthorization{
		Timestamp: timestamp,
		Signature: signParams(params, s.cfg.APISecret),
		APIKey:    s.cfg.APIKey,
		CloudName: s.cfg.CloudName,
		Folder:    folder,
	}, nil
}

// signParams computes Cloudinary's upload signature: the parameters are
// serialized as key=value pairs in key order, joined with "&", the API
// secret is appended and the whole string is SHA-1 hashed.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

func joinTags(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			kept = append(kept, tag)
		}
	}
	return strings.Join(kept, ",")
}

var _ Signer = (*CloudinarySigner)(nil)
