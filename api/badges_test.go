package api

import (
	"testing"

	"github.com/openblog/backend/models"
	"github.com/stretchr/testify/assert"
)

func TestAnnouncementBadge(t *testing.T) {
	assert.Equal(t, "badge-info", AnnouncementBadge(models.AnnouncementInfo))
	assert.Equal(t, "badge-warning", AnnouncementBadge(models.AnnouncementWarning))
	assert.Equal(t, "badge-success", AnnouncementBadge(models.AnnouncementSuccess))
	assert.Equal(t, "badge-danger", AnnouncementBadge(models.AnnouncementDanger))
	assert.Equal(t, "badge-secondary", AnnouncementBadge("unknown"))
}

func TestArticleStatusColor(t *testing.T) {
	assert.Equal(t, "green", ArticleStatusColor(models.StatusPublished))
	assert.Equal(t, "gray", ArticleStatusColor(models.StatusDraft))
	assert.Equal(t, "gray", ArticleStatusColor("whatever"))
}

func TestRatingStars(t *testing.T) {
	tests := []struct {
		average float64
		want    string
	}{
		{0, "☆☆☆☆☆"},
		{1, "★☆☆☆☆"},
		{2.4, "★★☆☆☆"},
		{2.5, "★★⯨☆☆"},
		{4.3, "★★★★☆"},
		{4.7, "★★★★⯨"},
		{5, "★★★★★"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RatingStars(tt.average), "average %v", tt.average)
	}
}
