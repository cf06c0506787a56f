package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/openblog/backend/errs"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a star score for an article, unique per (article, user). A
// repeated submission by the same user overwrites the existing score.
type Rating struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ArticleID uuid.UUID `json:"articleId" db:"article_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_article_user,priority:1"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_article_user,priority:2"`
	Score     int       `json:"score" db:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Article *Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;references:ID;constraint:OnDelete:CASCADE"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// RatingSummary is the aggregated display rating of an article.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

func (r *Rating) Validate() error {
	if r.Score < MinRatingScore || r.Score > MaxRatingScore {
		return errs.NewInvalidFieldError("score", "must be between 1 and 5")
	}
	return nil
}

// RoundAverage rounds a raw mean to one decimal place for display.
func RoundAverage(mean float64) float64 {
	return math.Round(mean*10) / 10
}

// AverageScore returns the rounded arithmetic mean of the given scores.
// Zero scores yield an average of 0, not an error.
func AverageScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum int
	for _, s := range scores {
		sum += s
	}
	return RoundAverage(float64(sum) / float64(len(scores)))
}
