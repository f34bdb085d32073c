package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Asset paths relative to the static dir, versioned for cache busting
const (
	AssetCSS      = "css/style.css"
	AssetFavicon  = "images/favicon.png"
	AssetMotionJS = "js/motion.js"
	AssetMarquee  = "js/marquee.js"
	AssetCarousel = "js/carousel.js"
	AssetFormJS   = "js/contact-form.js"
)

var versionedAssets = []string{AssetCSS, AssetFavicon, AssetMotionJS, AssetMarquee, AssetCarousel, AssetFormJS}

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string, logger *zap.Logger) {
	assetVersionsOnce.Do(func() {
		assetVersions = computeAssetVersions(staticDir, logger)
		logger.Info("asset versions initialized", zap.Int("files", len(assetVersions)))
	})
}

func computeAssetVersions(staticDir string, logger *zap.Logger) map[string]string {
	versions := make(map[string]string, len(versionedAssets))
	for _, name := range versionedAssets {
		path := filepath.Join(staticDir, filepath.FromSlash(name))
		version, err := computeFileHash(path)
		if err != nil {
			logger.Warn("failed to hash asset", zap.String("path", path), zap.Error(err))
			version = "1"
		}
		versions[name] = version
	}
	return versions
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil))[:8], nil
}

// AssetURL returns the /static URL of an asset with its version query
func AssetURL(name string) string {
	return "/static/" + name + "?v=" + AssetVersion(name)
}

// AssetVersion returns the version hash of an asset, "1" when unknown
func AssetVersion(name string) string {
	if version, ok := assetVersions[name]; ok {
		return version
	}
	return "1"
}
