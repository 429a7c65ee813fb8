package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	log "github.com/sirupsen/logrus"
)

type Cloudinary struct {
	CLD *cloudinary.Cloudinary
}

func NewCloudinary(cloudName, apiKey, apiSecret string) *Cloudinary {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	return &Cloudinary{CLD: cld}
}

// UploadImage pushes the file into the given folder and returns the public
// URL plus the public ID needed to delete it later.
func (c *Cloudinary) UploadImage(ctx context.Context, file io.Reader, folder string) (string, string, error) {
	resp, err := c.CLD.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", "", err
	}
	return resp.SecureURL, resp.PublicID, nil
}

// DeleteImage removes a previously uploaded image. Callers treat failures as
// best-effort: the row delete has already happened by the time this runs.
func (c *Cloudinary) DeleteImage(ctx context.Context, publicID string) error {
	_, err := c.CLD.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
