package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionValidate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "reader@example.com", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"no at sign", "reader.example.com", true},
		{"leading at sign", "@example.com", true},
		{"trailing at sign", "reader@", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Subscription{Email: tt.email}
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubscriptionTokenGeneratedOnce(t *testing.T) {
	s := Subscription{Email: "reader@example.com"}
	require.NoError(t, s.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, s.UnsubscribeToken)

	// An existing token is never regenerated.
	token := s.UnsubscribeToken
	require.NoError(t, s.BeforeCreate(nil))
	assert.Equal(t, token, s.UnsubscribeToken)
}
