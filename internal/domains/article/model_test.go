package article

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-backend/internal/domains/tag"
)

func TestGenerateID(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)

	assert.Equal(t, "NEWS20240601123045", GenerateID(at))
}

func TestGenerateIDCollidesWithinSecond(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)

	assert.Equal(t, GenerateID(at), GenerateID(at.Add(500*time.Millisecond)))
	assert.NotEqual(t, GenerateID(at), GenerateID(at.Add(time.Second)))
}

func TestIsPublished(t *testing.T) {
	published := true
	inactive := false

	assert.False(t, (&Article{}).IsPublished())
	assert.False(t, (&Article{Status: &inactive}).IsPublished())
	assert.True(t, (&Article{Status: &published}).IsPublished())
}

func TestToSummaryOmitsContent(t *testing.T) {
	content := "the full body"
	a := &Article{
		ID:         "NEWS20240601123045",
		Title:      "Title",
		Headline:   "Headline",
		Content:    &content,
		AuthorName: "Staff Seven",
		Tags:       []tag.Tag{{ID: 1, Name: "go"}},
	}

	full := a.ToResponse()
	summary := a.ToSummary()

	require.NotNil(t, full.Content)

	raw, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "news_content")
	assert.NotContains(t, string(raw), "the full body")

	// Everything else survives the narrowing
	assert.Equal(t, full.ID, summary.ID)
	assert.Equal(t, full.Title, summary.Title)
	assert.Equal(t, full.Headline, summary.Headline)
	assert.Equal(t, full.AuthorName, summary.AuthorName)
	assert.Equal(t, full.Tags, summary.Tags)
}

func TestToResponseNormalizesNilTags(t *testing.T) {
	a := &Article{ID: "NEWS20240601123045"}

	resp := a.ToResponse()

	require.NotNil(t, resp.Tags)
	assert.Empty(t, resp.Tags)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tags":[]`)
}

func TestTagIDsPreservesOrder(t *testing.T) {
	a := &Article{Tags: []tag.Tag{{ID: 3}, {ID: 1}, {ID: 2}}}

	assert.Equal(t, []int{3, 1, 2}, a.TagIDs())
}
