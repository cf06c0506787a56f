package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnnouncement() Announcement {
	return Announcement{
		Title:    "Scheduled maintenance",
		Content:  "The site will be read-only on Saturday morning.",
		Type:     AnnouncementWarning,
		IsActive: true,
	}
}

func TestAnnouncementValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a := validAnnouncement()
		assert.NoError(t, a.Validate())
	})

	t.Run("short title", func(t *testing.T) {
		a := validAnnouncement()
		a.Title = "Hey"
		assert.Error(t, a.Validate())
	})

	t.Run("short content", func(t *testing.T) {
		a := validAnnouncement()
		a.Content = "short"
		assert.Error(t, a.Validate())
	})

	t.Run("whitespace does not count toward minimums", func(t *testing.T) {
		a := validAnnouncement()
		a.Title = "  ab  "
		assert.Error(t, a.Validate())
	})

	t.Run("short cyrillic title", func(t *testing.T) {
		a := validAnnouncement()
		a.Title = "Ніч"
		assert.Error(t, a.Validate())
	})

	t.Run("cyrillic at minimum lengths", func(t *testing.T) {
		a := validAnnouncement()
		a.Title = "Увага"
		a.Content = "Технічні роботи"
		assert.NoError(t, a.Validate())
	})

	t.Run("unknown type", func(t *testing.T) {
		a := validAnnouncement()
		a.Type = "urgent"
		assert.Error(t, a.Validate())
	})
}

func TestValidAnnouncementType(t *testing.T) {
	for _, valid := range []string{AnnouncementInfo, AnnouncementWarning, AnnouncementSuccess, AnnouncementDanger} {
		assert.True(t, ValidAnnouncementType(valid), valid)
	}
	assert.False(t, ValidAnnouncementType(""))
	assert.False(t, ValidAnnouncementType("notice"))
}

func TestAnnouncementValidateNew(t *testing.T) {
	t.Run("no expiry", func(t *testing.T) {
		a := validAnnouncement()
		assert.NoError(t, a.ValidateNew())
	})

	t.Run("future expiry", func(t *testing.T) {
		a := validAnnouncement()
		future := time.Now().Add(time.Hour)
		a.ExpiresAt = &future
		assert.NoError(t, a.ValidateNew())
	})

	t.Run("past expiry rejected at creation", func(t *testing.T) {
		a := validAnnouncement()
		past := time.Now().Add(-time.Second)
		a.ExpiresAt = &past
		assert.Error(t, a.ValidateNew())
	})
}

func TestAnnouncementExpiry(t *testing.T) {
	past := time.Now().Add(-time.Second)
	future := time.Now().Add(time.Hour)

	t.Run("no expiry never expires", func(t *testing.T) {
		a := Announcement{IsActive: true}
		assert.False(t, a.IsExpired())
		assert.True(t, a.IsVisible())
	})

	t.Run("future expiry is visible", func(t *testing.T) {
		a := Announcement{IsActive: true, ExpiresAt: &future}
		assert.False(t, a.IsExpired())
		assert.True(t, a.IsVisible())
	})

	t.Run("past expiry is hidden", func(t *testing.T) {
		a := Announcement{IsActive: true, ExpiresAt: &past}
		assert.True(t, a.IsExpired())
		assert.False(t, a.IsVisible())
	})

	t.Run("inactive is hidden regardless", func(t *testing.T) {
		a := Announcement{IsActive: false, ExpiresAt: &future}
		assert.False(t, a.IsVisible())
	})
}

func TestAnnouncementBeforeSaveDeactivatesExpired(t *testing.T) {
	past := time.Now().Add(-time.Second)
	a := validAnnouncement()
	a.ExpiresAt = &past

	require.NoError(t, a.BeforeSave(nil))
	assert.False(t, a.IsActive)

	// The flip is one-way: saving again does not reactivate.
	a.ExpiresAt = nil
	require.NoError(t, a.BeforeSave(nil))
	assert.False(t, a.IsActive)
}
