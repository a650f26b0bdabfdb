package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	ticket "github.com/mondaynail/salon-api/internal/domain/ticket"
	"github.com/mondaynail/salon-api/internal/httperr"
	"github.com/mondaynail/salon-api/internal/media"
)

type MediaHandler struct {
	signer     media.Signer
	store      media.Store
	compressor *media.Compressor
	folder     string
	log        *zap.Logger
}

func NewMediaHandler(
	signer media.Signer,
	store media.Store,
	compressor *media.Compressor,
	folder string,
	log *zap.Logger,
) *MediaHandler {
	return &MediaHandler{
		signer:     signer,
		store:      store,
		compressor: compressor,
		folder:     folder,
		log:        log,
	}
}

// --------- Requests ---------

type SignatureRequest struct {
	Folder   string   `json:"folder"`
	PublicID string   `json:"publicId"`
	Tags     []string `json:"tags"`
}

// --------- Handlers ---------

// Signature hands out a one-shot authorization for a direct browser upload.
// The image bytes never pass through this server.
func (h *MediaHandler) Signature(c *gin.Context) {
	var req SignatureRequest
	// An empty or malformed body means "sign with defaults".
	_ = c.ShouldBindJSON(&req)

	auth, err := h.signer.AuthorizeUpload(media.SignRequest{
		Folder:   req.Folder,
		PublicID: req.PublicID,
		Tags:     req.Tags,
	})
	if err != nil {
		if httperr.IsBusiness(err, "media_not_configured") {
			httperr.Internal(c, "media_not_configured",
				"Media host credentials are not configured on the server.")
			return
		}
		h.log.Error("upload signature failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Failed to generate upload signature.")
		return
	}

	c.JSON(http.StatusOK, auth)
}

// Upload is the server-relayed path: images arrive here as multipart parts,
// are compressed, and land on object storage. A partially failed batch still
// returns the successful URLs together with the failure count so the caller
// can surface degraded success instead of silently creating a bare ticket.
func (h *MediaHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Multipart form expected.")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		httperr.BadRequest(c, "no_images", "No images supplied.")
		return
	}
	if len(files) > ticket.MaxImages {
		httperr.BadRequest(c, "too_many_images", "A maximum of 5 images is allowed.")
		return
	}

	urls := make([]string, 0, len(files))
	failed := 0

	for _, file := range files {
		url, err := h.relayOne(c, file)
		if err != nil {
			failed++
			h.log.Error("image relay failed",
				zap.String("filename", file.Filename),
				zap.Error(err),
			)
			continue
		}
		urls = append(urls, url)
	}

	if len(urls) == 0 {
		httperr.Internal(c, "upload_failed", "Failed to upload images.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"urls":   urls,
		"failed": failed,
	})
}

func (h *MediaHandler) relayOne(c *gin.Context, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", httperr.ErrBusiness("invalid_image")
	}

	img, err := h.compressor.Prepare(data, contentType)
	if err != nil {
		return "", err
	}

	key := strings.TrimSuffix(h.folder, "/") + "/" + uuid.NewString() + img.Ext

	return h.store.Put(
		c.Request.Context(),
		key,
		bytes.NewReader(img.Data),
		int64(len(img.Data)),
		img.ContentType,
	)
}
