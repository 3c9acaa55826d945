// internal/domain/upload/service.go
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/techstore-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles product image uploads on the local-disk provider.
// The S3 fields in the storage config are accepted but not yet wired
// to a provider implementation.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new upload service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// UploadImage validates and stores an uploaded image, records it, and
// returns the stored file with its public URL.
func (s *Service) UploadImage(file multipart.File, header *multipart.FileHeader, uploadedBy string) (*UploadedFile, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !s.extensionAllowed(ext) {
		return nil, fmt.Errorf("file extension %q is not allowed", ext)
	}

	if header.Size > s.config.Upload.MaxSize {
		return nil, fmt.Errorf("file exceeds maximum size of %d bytes", s.config.Upload.MaxSize)
	}

	if err := os.MkdirAll(s.config.Storage.LocalPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	storedName := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	destPath := filepath.Join(s.config.Storage.LocalPath, storedName)

	dest, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dest.Close()

	written, err := io.Copy(dest, file)
	if err != nil {
		os.Remove(destPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	record := UploadedFile{
		ID:           uuid.New().String(),
		OriginalName: header.Filename,
		StoredName:   storedName,
		URL:          s.publicURL(storedName),
		Size:         written,
		Extension:    ext,
		UploadedBy:   uploadedBy,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.db.Create(&record).Error; err != nil {
		os.Remove(destPath)
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	return &record, nil
}

// DeleteImage removes a stored image by its public URL
func (s *Service) DeleteImage(url string) error {
	var record UploadedFile
	if result := s.db.Where("url = ?", url).First(&record); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return fmt.Errorf("image not found")
		}
		return fmt.Errorf("failed to look up image: %w", result.Error)
	}

	path := filepath.Join(s.config.Storage.LocalPath, record.StoredName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	if err := s.db.Delete(&record).Error; err != nil {
		return fmt.Errorf("failed to delete upload record: %w", err)
	}

	return nil
}

func (s *Service) extensionAllowed(ext string) bool {
	for _, allowed := range s.config.Upload.AllowedExtensions {
		if ext == strings.ToLower(strings.TrimSpace(allowed)) {
			return true
		}
	}
	return false
}

func (s *Service) publicURL(storedName string) string {
	base := strings.TrimSuffix(s.config.Storage.PublicBaseURL, "/")
	return base + "/" + storedName
}
