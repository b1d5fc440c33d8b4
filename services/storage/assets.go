package storage

import (
	"fmt"
	"path"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// AssetResolver maps a page image name such as "hero" to a URL the browser can load.
type AssetResolver interface {
	ImageURL(name string) string
}

// LocalAssets serves the images embedded in the binary under /static/img.
type LocalAssets struct{}

func (LocalAssets) ImageURL(name string) string {
	return "/static/img/" + name + ".svg"
}

// CloudinaryAssets builds Cloudinary delivery URLs for images uploaded under a folder.
type CloudinaryAssets struct {
	cld      *cloudinary.Cloudinary
	folder   string
	fallback AssetResolver
}

// NewCloudinaryAssets creates a resolver for the given account. Images that cannot be
// resolved fall back to the embedded copies.
func NewCloudinaryAssets(cloudName, apiKey, apiSecret, folder string) (*CloudinaryAssets, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryAssets{cld: cld, folder: folder, fallback: LocalAssets{}}, nil
}

func (c *CloudinaryAssets) ImageURL(name string) string {
	img, err := c.cld.Image(path.Join(c.folder, name))
	if err != nil {
		zap.L().Warn("cloudinary asset lookup failed", zap.String("name", name), zap.Error(err))
		return c.fallback.ImageURL(name)
	}
	img.Transformation = "f_auto,q_auto"
	url, err := img.String()
	if err != nil {
		zap.L().Warn("cloudinary url build failed", zap.String("name", name), zap.Error(err))
		return c.fallback.ImageURL(name)
	}
	return url
}
