package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/openblog/backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "Great write-up, thanks!", false},
		{"minimum length", "abc", false},
		{"empty", "", true},
		{"whitespace only", "   \t\n", true},
		{"too short after trimming", " a ", true},
		{"at max length", strings.Repeat("x", 1000), false},
		{"over max length", strings.Repeat("x", 1001), true},
		{"two cyrillic characters", "дя", true},
		{"three cyrillic characters", "дяк", false},
		{"max length in cyrillic", strings.Repeat("я", 1000), false},
		{"over max length in cyrillic", strings.Repeat("я", 1001), true},
		{"padded over max trims within limit", "  " + strings.Repeat("x", 1000) + "  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := Comment{Content: tt.content}
			err := comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentValidateThread(t *testing.T) {
	articleID := uuid.New()
	otherArticleID := uuid.New()

	topLevel := Comment{ID: uuid.New(), ArticleID: articleID}
	reply := Comment{ID: uuid.New(), ArticleID: articleID, ParentID: &topLevel.ID}

	t.Run("top-level comment needs no parent", func(t *testing.T) {
		c := Comment{ArticleID: articleID}
		assert.NoError(t, c.ValidateThread(nil))
	})

	t.Run("reply to top-level comment is accepted", func(t *testing.T) {
		c := Comment{ArticleID: articleID, ParentID: &topLevel.ID}
		assert.NoError(t, c.ValidateThread(&topLevel))
	})

	t.Run("reply to a reply is rejected", func(t *testing.T) {
		c := Comment{ArticleID: articleID, ParentID: &reply.ID}
		err := c.ValidateThread(&reply)
		require.Error(t, err)
		assert.True(t, errs.IsInvalidFieldError(err))
	})

	t.Run("missing parent is rejected", func(t *testing.T) {
		parentID := uuid.New()
		c := Comment{ArticleID: articleID, ParentID: &parentID}
		assert.Error(t, c.ValidateThread(nil))
	})

	t.Run("parent on another article is rejected", func(t *testing.T) {
		c := Comment{ArticleID: otherArticleID, ParentID: &topLevel.ID}
		assert.Error(t, c.ValidateThread(&topLevel))
	})
}

func TestCommentCanBeModeratedBy(t *testing.T) {
	authorID := uuid.New()
	strangerID := uuid.New()
	article := Article{ID: uuid.New(), AuthorID: authorID}
	comment := Comment{ArticleID: article.ID, Article: &article}

	tests := []struct {
		name    string
		user    *User
		profile *Profile
		want    bool
	}{
		{"nil user", nil, &Profile{Role: RoleAdmin}, false},
		{"nil profile", &User{ID: strangerID}, nil, false},
		{"admin moderates anything", &User{ID: strangerID}, &Profile{Role: RoleAdmin}, true},
		{"staff moderates anything", &User{ID: strangerID, IsStaff: true}, &Profile{Role: RoleUser}, true},
		{"article author with author role", &User{ID: authorID}, &Profile{Role: RoleAuthor}, true},
		{"article author without author role", &User{ID: authorID}, &Profile{Role: RoleUser}, false},
		{"unrelated author role", &User{ID: strangerID}, &Profile{Role: RoleAuthor}, false},
		{"plain user", &User{ID: strangerID}, &Profile{Role: RoleUser}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, comment.CanBeModeratedBy(tt.user, tt.profile))
		})
	}
}

func TestCommentCanBeModeratedByWithoutArticleLoaded(t *testing.T) {
	comment := Comment{ArticleID: uuid.New()}
	user := User{ID: uuid.New()}

	// Without the article loaded the ownership check cannot pass.
	assert.False(t, comment.CanBeModeratedBy(&user, &Profile{Role: RoleAuthor}))
	// Admins don't need it.
	assert.True(t, comment.CanBeModeratedBy(&user, &Profile{Role: RoleAdmin}))
}

func TestCommentIsReply(t *testing.T) {
	parentID := uuid.New()
	assert.False(t, (&Comment{}).IsReply())
	assert.True(t, (&Comment{ParentID: &parentID}).IsReply())
}
