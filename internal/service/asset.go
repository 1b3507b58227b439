package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const (
	imageKeyPrefix  = "recipe-images/"
	presignedURLTTL = 15 * time.Minute
)

// ObjectStore is the part of the S3 client the asset service needs
type ObjectStore interface {
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
	ObjectExists(ctx context.Context, objectKey string) (bool, error)
	Upload(ctx context.Context, objectKey, contentType string, body io.Reader) error
}

// ImageLocation is either a redirect target or a file on local disk
type ImageLocation struct {
	RedirectURL string
	LocalPath   string
}

// AssetService resolves recipe images against S3 when a bucket is
// configured, and the local static directory otherwise.
type AssetService struct {
	store     ObjectStore
	staticDir string
}

func NewAssetService(store ObjectStore, staticDir string) *AssetService {
	return &AssetService{store: store, staticDir: staticDir}
}

// StaticDir is the root that /static is served from
func (s *AssetService) StaticDir() string {
	return s.staticDir
}

// ResolveImage finds the image called name. Names that try to leave the
// images directory are treated as missing.
func (s *AssetService) ResolveImage(ctx context.Context, name string) (*ImageLocation, error) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" || name == "." {
		return nil, ErrImageNotFound
	}

	if s.store != nil {
		key := imageKeyPrefix + name
		exists, err := s.store.ObjectExists(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to check image %s: %w", key, err)
		}
		if !exists {
			return nil, ErrImageNotFound
		}
		url, err := s.store.GeneratePresignedURL(ctx, key, presignedURLTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to presign image %s: %w", key, err)
		}
		return &ImageLocation{RedirectURL: url}, nil
	}

	local := filepath.Join(s.staticDir, "images", filepath.FromSlash(name))
	info, err := os.Stat(local)
	if err != nil || info.IsDir() {
		return nil, ErrImageNotFound
	}
	return &ImageLocation{LocalPath: local}, nil
}

// PushImages uploads every file under dir to the bucket, keeping the
// relative path as the object name. Returns how many were uploaded.
func (s *AssetService) PushImages(ctx context.Context, dir string) (int, error) {
	if s.store == nil {
		return 0, errors.New("object storage is not configured")
	}

	uploaded := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := imageKeyPrefix + filepath.ToSlash(rel)

		contentType := mime.TypeByExtension(filepath.Ext(p))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		if err := s.store.Upload(ctx, key, contentType, f); err != nil {
			return err
		}
		log.Printf("[AssetService] uploaded %s", key)
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("failed to push images: %w", err)
	}
	return uploaded, nil
}
