package services

import (
	"encoding/json"

	"github.com/contentstudio/backend/internal/repositories"
)

// The automation service has grown several response formats over time:
// sometimes an array whose first element carries the fields, sometimes a
// bare object, with varying key names per workflow branch. The lookup
// order below is a compatibility contract with all of them and must not
// be reordered.
//
// Array form (first element only):
//   text:  generated_text, post_content, facebookOutput[0]
//   image: generated_image_url, url[0]
//   video: generated_video_url, video_url
// Object form additionally checks `text` for text and `image_url` for image.

type responseShape int

const (
	shapeOther responseShape = iota
	shapeArray
	shapeObject
)

func classifyResponse(raw json.RawMessage) (map[string]any, responseShape) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, shapeOther
	}

	switch t := v.(type) {
	case []any:
		if len(t) == 0 {
			return nil, shapeOther
		}
		first, ok := t[0].(map[string]any)
		if !ok {
			return nil, shapeOther
		}
		return first, shapeArray
	case map[string]any:
		return t, shapeObject
	default:
		return nil, shapeOther
	}
}

// ExtractGeneratedContent pulls the generated text, image URL and video URL
// out of an upstream response. Absent fields come back as empty strings,
// which the committer treats as "leave the column alone".
func ExtractGeneratedContent(raw json.RawMessage) repositories.GeneratedContent {
	fields, shape := classifyResponse(raw)
	if shape == shapeOther {
		return repositories.GeneratedContent{}
	}

	var gen repositories.GeneratedContent

	textKeys := []string{"generated_text", "post_content"}
	if shape == shapeObject {
		textKeys = append(textKeys, "text")
	}
	gen.Text = firstNonEmpty(
		stringFields(fields, textKeys...),
		firstElement(fields, "facebookOutput"),
	)

	gen.ImageURL = firstNonEmpty(
		stringFields(fields, "generated_image_url"),
		firstElement(fields, "url"),
	)
	if gen.ImageURL == "" && shape == shapeObject {
		gen.ImageURL = stringFields(fields, "image_url")
	}

	gen.VideoURL = stringFields(fields, "generated_video_url", "video_url")

	return gen
}

// stringFields returns the first key whose value is a non-empty string.
func stringFields(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstElement returns m[key][0] when that field is a non-empty array
// whose first element is a non-empty string.
func firstElement(m map[string]any, key string) string {
	arr, ok := m[key].([]any)
	if !ok || len(arr) == 0 {
		return ""
	}
	s, _ := arr[0].(string)
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
