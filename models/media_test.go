package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaValidate(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		fileType string
		fileSize int64
		wantErr  bool
	}{
		{"valid image", "photo.png", MediaTypeImage, 1 << 20, false},
		{"valid jpeg", "photo.JPG", MediaTypeImage, 1 << 20, false},
		{"valid video", "clip.mp4", MediaTypeVideo, 8 << 20, false},
		{"at size ceiling", "photo.png", MediaTypeImage, MaxMediaFileSize, false},
		{"over size ceiling", "photo.png", MediaTypeImage, MaxMediaFileSize + 1, true},
		{"executable disguised as image", "photo.exe", MediaTypeImage, 1 << 20, true},
		{"video extension on image type", "clip.mp4", MediaTypeImage, 1 << 20, true},
		{"image extension on video type", "photo.png", MediaTypeVideo, 1 << 20, true},
		{"unknown file type", "doc.pdf", "document", 1 << 20, true},
		{"no extension", "photo", MediaTypeImage, 1 << 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Media{
				FileName: tt.fileName,
				FileType: tt.fileType,
				FileSize: tt.fileSize,
			}
			err := m.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidMediaType(t *testing.T) {
	assert.True(t, ValidMediaType(MediaTypeImage))
	assert.True(t, ValidMediaType(MediaTypeVideo))
	assert.False(t, ValidMediaType("audio"))
	assert.False(t, ValidMediaType(""))
}
