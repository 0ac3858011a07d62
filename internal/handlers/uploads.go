package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing; larger
// parts spill to disk.
const maxUploadMemory = 32 << 20

var (
	errMissingFile     = errors.New("file is required")
	errUnsupportedType = errors.New("unsupported file type")
)

// savedUpload is a multipart file staged on local disk so it can be probed
// and uploaded without holding the whole payload in memory.
type savedUpload struct {
	Path        string
	ContentType string
	Ext         string
}

func (u savedUpload) Remove() {
	if u.Path != "" {
		_ = os.Remove(u.Path)
	}
}

// stageUpload copies the named multipart field to a temp file and sniffs its
// content type. kind restricts the detected type family, "image" or "video".
func stageUpload(r *http.Request, field, kind string) (savedUpload, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return savedUpload{}, fmt.Errorf("%s: %w", field, errMissingFile)
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "vidtube-upload-*")
	if err != nil {
		return savedUpload{}, fmt.Errorf("create temp upload: %w", err)
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return savedUpload{}, fmt.Errorf("stage upload %s: %w", field, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return savedUpload{}, fmt.Errorf("stage upload %s: %w", field, err)
	}

	mime, err := mimetype.DetectFile(tmp.Name())
	if err != nil {
		os.Remove(tmp.Name())
		return savedUpload{}, fmt.Errorf("detect upload type: %w", err)
	}
	if !strings.HasPrefix(mime.String(), kind+"/") {
		os.Remove(tmp.Name())
		return savedUpload{}, fmt.Errorf("%s is %s: %w", field, mime.String(), errUnsupportedType)
	}

	return savedUpload{
		Path:        tmp.Name(),
		ContentType: mime.String(),
		Ext:         mime.Extension(),
	}, nil
}

// storeUpload pushes a staged file to blob storage under a fresh key and
// returns its public location.
func storeUpload(ctx context.Context, storage BlobStorage, upload savedUpload, prefix string) (string, error) {
	file, err := os.Open(upload.Path)
	if err != nil {
		return "", fmt.Errorf("open staged upload: %w", err)
	}
	defer file.Close()

	key := path.Join(prefix, uuid.NewString()+upload.Ext)
	return storage.Save(ctx, key, file)
}

func respondUploadError(w http.ResponseWriter, r *http.Request, field string, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, errMissingFile):
		respondError(ctx, w, http.StatusBadRequest, field+" file is required")
	case errors.Is(err, errUnsupportedType):
		respondError(ctx, w, http.StatusBadRequest, field+" has an unsupported file type")
	default:
		logging.FromContext(ctx).Error("store upload", "error", err, "field", field)
		respondError(ctx, w, http.StatusInternalServerError, "failed to store "+field)
	}
}

// receiveUpload stages and stores a multipart field in one step for fields
// that do not need probing in between.
func receiveUpload(ctx context.Context, storage BlobStorage, r *http.Request, field, kind, prefix string) (string, error) {
	upload, err := stageUpload(r, field, kind)
	if err != nil {
		return "", err
	}
	defer upload.Remove()

	return storeUpload(ctx, storage, upload, prefix)
}
