package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingoleap/lingo_api/dto"
)

func TestNormalizeTopicList(t *testing.T) {
	got := NormalizeTopicList([]string{" violence ", "", "  ", "drugs"})
	assert.Equal(t, []string{"violence", "drugs"}, got)
}

func TestIsRestricted(t *testing.T) {
	restricted := []string{"violence", "Gambling"}

	tests := []struct {
		name string
		req  dto.GenerateContentRequest
		want bool
	}{
		{
			name: "clean topic passes",
			req:  dto.GenerateContentRequest{Topic: "Ordering food"},
			want: false,
		},
		{
			name: "topic substring match",
			req:  dto.GenerateContentRequest{Topic: "Domestic Violence awareness"},
			want: true,
		},
		{
			name: "case insensitive",
			req:  dto.GenerateContentRequest{Topic: "gambling tips"},
			want: true,
		},
		{
			name: "keyword match",
			req:  dto.GenerateContentRequest{Topic: "History", Keywords: dto.StringList{"war", "violence"}},
			want: true,
		},
		{
			name: "interest match",
			req:  dto.GenerateContentRequest{Topic: "Hobbies", Interests: dto.StringList{"casino gambling"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRestricted(tt.req, restricted))
		})
	}
}

func TestIsRestricted_EmptyListNeverMatches(t *testing.T) {
	req := dto.GenerateContentRequest{Topic: "anything at all"}
	assert.False(t, IsRestricted(req, nil))
	assert.False(t, IsRestricted(req, []string{"", "  "}))
}
