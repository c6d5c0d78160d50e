package services

import (
	"encoding/json"
	"testing"

	"github.com/contentstudio/backend/internal/repositories"
)

func TestExtractGeneratedContent(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected repositories.GeneratedContent
	}{
		{
			name:     "object form all canonical fields",
			response: `{"generated_text":"T","generated_image_url":"I","generated_video_url":"V"}`,
			expected: repositories.GeneratedContent{Text: "T", ImageURL: "I", VideoURL: "V"},
		},
		{
			name:     "generated_text beats post_content",
			response: `{"generated_text":"A","post_content":"B"}`,
			expected: repositories.GeneratedContent{Text: "A"},
		},
		{
			name:     "post_content fallback",
			response: `{"post_content":"B"}`,
			expected: repositories.GeneratedContent{Text: "B"},
		},
		{
			name:     "facebookOutput fallback",
			response: `{"facebookOutput":["C"]}`,
			expected: repositories.GeneratedContent{Text: "C"},
		},
		{
			name:     "text field matches in object form",
			response: `{"text":"D"}`,
			expected: repositories.GeneratedContent{Text: "D"},
		},
		{
			name:     "text field does not match in array form",
			response: `[{"text":"D"}]`,
			expected: repositories.GeneratedContent{},
		},
		{
			name:     "array form checks facebookOutput",
			response: `[{"facebookOutput":["C"]}]`,
			expected: repositories.GeneratedContent{Text: "C"},
		},
		{
			name:     "array form generated_image_url beats url",
			response: `[{"generated_image_url":"img1","url":["img2"]}]`,
			expected: repositories.GeneratedContent{ImageURL: "img1"},
		},
		{
			name:     "object form url array fallback",
			response: `{"url":["img2"]}`,
			expected: repositories.GeneratedContent{ImageURL: "img2"},
		},
		{
			name:     "image_url matches in object form only",
			response: `{"image_url":"img3"}`,
			expected: repositories.GeneratedContent{ImageURL: "img3"},
		},
		{
			name:     "image_url ignored in array form",
			response: `[{"image_url":"img3"}]`,
			expected: repositories.GeneratedContent{},
		},
		{
			name:     "url array beats image_url in object form",
			response: `{"url":["img2"],"image_url":"img3"}`,
			expected: repositories.GeneratedContent{ImageURL: "img2"},
		},
		{
			name:     "video_url fallback",
			response: `{"video_url":"vid1"}`,
			expected: repositories.GeneratedContent{VideoURL: "vid1"},
		},
		{
			name:     "generated_video_url beats video_url",
			response: `[{"generated_video_url":"vid1","video_url":"vid2"}]`,
			expected: repositories.GeneratedContent{VideoURL: "vid1"},
		},
		{
			name:     "array form uses first element only",
			response: `[{"generated_text":"first"},{"generated_text":"second"}]`,
			expected: repositories.GeneratedContent{Text: "first"},
		},
		{
			name:     "empty strings are treated as absent",
			response: `{"generated_text":"","post_content":"B","generated_image_url":""}`,
			expected: repositories.GeneratedContent{Text: "B"},
		},
		{
			name:     "null values are treated as absent",
			response: `{"generated_text":null,"post_content":"B"}`,
			expected: repositories.GeneratedContent{Text: "B"},
		},
		{
			name:     "empty url array yields nothing",
			response: `{"url":[]}`,
			expected: repositories.GeneratedContent{},
		},
		{
			name:     "empty array response",
			response: `[]`,
			expected: repositories.GeneratedContent{},
		},
		{
			name:     "scalar response",
			response: `"just a string"`,
			expected: repositories.GeneratedContent{},
		},
		{
			name:     "array of scalars",
			response: `["not an object"]`,
			expected: repositories.GeneratedContent{},
		},
		{
			name:     "non-string field values ignored",
			response: `{"generated_text":42,"post_content":"B"}`,
			expected: repositories.GeneratedContent{Text: "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractGeneratedContent(json.RawMessage(tt.response))
			if got != tt.expected {
				t.Errorf("ExtractGeneratedContent(%s) = %+v, want %+v", tt.response, got, tt.expected)
			}
		})
	}
}

func TestGeneratedContentHasMedia(t *testing.T) {
	tests := []struct {
		name     string
		gen      repositories.GeneratedContent
		expected bool
	}{
		{"nothing", repositories.GeneratedContent{}, false},
		{"text only", repositories.GeneratedContent{Text: "t"}, false},
		{"image only", repositories.GeneratedContent{ImageURL: "i"}, true},
		{"video only", repositories.GeneratedContent{VideoURL: "v"}, true},
		{"both", repositories.GeneratedContent{ImageURL: "i", VideoURL: "v"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.gen.HasMedia(); got != tt.expected {
				t.Errorf("HasMedia() = %v, want %v", got, tt.expected)
			}
		})
	}
}
