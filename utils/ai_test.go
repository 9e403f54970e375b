package utils

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
		{"Here:\n```json{\"a\":1}```", "Here:\n{\"a\":1}"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, StripFences(tc.in), tc.in)
	}
}

func TestExtractTextJoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(" {\"a\":"), genai.Text("1} ")}}},
		},
	}
	require.Equal(t, `{"a":1}`, extractText(resp))
	require.Equal(t, "", extractText(nil))
}
