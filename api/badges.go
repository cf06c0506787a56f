package api

import (
	"strings"

	"github.com/openblog/backend/models"
)

// Presentation-only lookups for the admin console and clients. Display
// metadata stays out of the domain models.

// AnnouncementBadge returns the CSS badge class for an announcement type.
func AnnouncementBadge(announcementType string) string {
	switch announcementType {
	case models.AnnouncementInfo:
		return "badge-info"
	case models.AnnouncementWarning:
		return "badge-warning"
	case models.AnnouncementSuccess:
		return "badge-success"
	case models.AnnouncementDanger:
		return "badge-danger"
	}
	return "badge-secondary"
}

// ArticleStatusColor returns the display color for an article status.
func ArticleStatusColor(status string) string {
	switch status {
	case models.StatusPublished:
		return "green"
	case models.StatusDraft:
		return "gray"
	}
	return "gray"
}

// RatingStars renders a rounded average as a five-star string, half star
// for fractional parts of 0.5 and up.
func RatingStars(average float64) string {
	full := int(average)
	half := average-float64(full) >= 0.5

	var b strings.Builder
	for i := 0; i < full && i < 5; i++ {
		b.WriteRune('★')
	}
	if half && full < 5 {
		b.WriteRune('⯨')
	}
	for i := full + boolToInt(half); i < 5; i++ {
		b.WriteRune('☆')
	}
	return b.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
