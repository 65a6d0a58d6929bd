package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"caption-api/api/internal/caption"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestNewRejectsEmptyConfig(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, "", "gemini-2.5-flash-preview-04-17")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")

	_, err = New(ctx, "test-key", "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model name")
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	provider := &googleapi.Error{Code: 429, Message: "quota exceeded"}
	assert.Equal(t, caption.KindProvider, classify(provider))
	assert.Equal(t, caption.KindProvider, classify(fmt.Errorf("call: %w", provider)))

	assert.Equal(t, caption.KindTransport, classify(context.DeadlineExceeded))
	assert.Equal(t, caption.KindTransport, classify(context.Canceled))
	assert.Equal(t, caption.KindTransport, classify(timeoutErr{}))

	assert.Equal(t, caption.KindInternal, classify(errors.New("boom")))
}

func TestFirstText(t *testing.T) {
	assert.Equal(t, "", firstText(nil))
	assert.Equal(t, "", firstText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("A small red square.")}}},
		},
	}
	assert.Equal(t, "A small red square.", firstText(resp))
}
