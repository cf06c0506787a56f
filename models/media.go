package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openblog/backend/errs"
)

// Media file types.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MaxMediaFileSize is the upload size ceiling in bytes.
const MaxMediaFileSize = 10 << 20 // 10MB

// mediaExtensions maps a declared file type to its extension allow-list.
var mediaExtensions = map[string][]string{
	MediaTypeImage: {"jpg", "jpeg", "png", "gif", "webp"},
	MediaTypeVideo: {"mp4", "mov", "avi", "webm"},
}

// Media is a file attachment owned by an article. The file bytes live in
// the blob store; only the URL and metadata are persisted here.
type Media struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ArticleID    uuid.UUID `json:"articleId" db:"article_id" gorm:"type:uuid;not null;index"`
	FileName     string    `json:"fileName" db:"file_name" gorm:"type:varchar(255);not null"`
	FileURL      string    `json:"fileUrl" db:"file_url" gorm:"type:text;not null"`
	FileType     string    `json:"fileType" db:"file_type" gorm:"type:varchar(20);not null"`
	FileSize     int64     `json:"fileSize" db:"file_size" gorm:"not null;default:0"`
	Title        string    `json:"title,omitempty" db:"title" gorm:"type:varchar(200)"`
	Description  string    `json:"description,omitempty" db:"description" gorm:"type:text"`
	UploadedByID uuid.UUID `json:"uploadedById" db:"uploaded_by_id" gorm:"type:uuid;not null"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Article    *Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;references:ID;constraint:OnDelete:CASCADE"`
	UploadedBy *User    `json:"uploadedBy,omitempty" gorm:"foreignKey:UploadedByID;references:ID"`
}

func ValidMediaType(fileType string) bool {
	_, ok := mediaExtensions[fileType]
	return ok
}

// Validate enforces the declarative upload rules: size within the ceiling
// and extension matching the declared file type's allow-list.
func (m *Media) Validate() error {
	if !ValidMediaType(m.FileType) {
		return errs.NewInvalidFieldError("fileType", "must be image or video")
	}
	if m.FileSize > MaxMediaFileSize {
		return errs.NewInvalidFieldError("fileSize", "must be at most 10MB")
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(m.FileName)), ".")
	for _, allowed := range mediaExtensions[m.FileType] {
		if ext == allowed {
			return nil
		}
	}
	return errs.NewInvalidFieldError("fileName",
		fmt.Sprintf("extension .%s is not allowed for %s files", ext, m.FileType))
}
