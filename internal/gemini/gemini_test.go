package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseText_JoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{
				genai.Text("  Halo "),
				genai.Blob{MIMEType: "image/png", Data: []byte{1}},
				genai.Text("dunia  "),
			}},
		}},
	}

	out, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Halo dunia", out)
}

func TestResponseText_Empty(t *testing.T) {
	cases := []*genai.GenerateContentResponse{
		nil,
		{},
		{Candidates: []*genai.Candidate{{}}},
		{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text("   ")}}}}},
	}
	for _, resp := range cases {
		_, err := responseText(resp)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	}
}
