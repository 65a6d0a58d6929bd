// Package gemini implements caption.Captioner on top of the Google
// generative AI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"caption-api/api/internal/caption"
	"caption-api/api/internal/util"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Engine is a long-lived handle to one named Gemini model. It is built once
// at startup and shared read-only by every request.
type Engine struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// New constructs the engine. An empty key or model name, or a client that
// cannot be built, is a configuration error the caller should treat as fatal.
func New(ctx context.Context, apiKey, model string) (*Engine, error) {
	apiKey = strings.TrimSpace(apiKey)
	model = strings.TrimSpace(model)
	if apiKey == "" {
		return nil, errors.New("gemini: API key is empty")
	}
	if model == "" {
		return nil, errors.New("gemini: model name is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}

	m := cl.GenerativeModel(model)
	if m == nil {
		_ = cl.Close()
		return nil, fmt.Errorf("gemini: model %q is nil", model)
	}

	return &Engine{client: cl, model: m, name: model}, nil
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.name }

// Close releases the underlying client.
func (e *Engine) Close() error { return e.client.Close() }

// Caption sends the fixed captioning prompt plus the image and returns the
// model's text. The call is synchronous; ctx is the only bound on it.
func (e *Engine) Caption(ctx context.Context, img []byte) (string, error) {
	parts := []genai.Part{
		genai.Text(caption.Prompt),
		genai.Blob{MIMEType: util.SniffImageMIME(img), Data: img},
	}

	resp, err := e.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", caption.Wrap(classify(err), err)
	}
	return firstText(resp), nil
}

// classify maps an SDK error onto the caption error taxonomy. Errors the
// provider signalled itself (quota, invalid request) come back as
// googleapi.Error or gax apierror.APIError depending on transport.
func classify(err error) caption.Kind {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return caption.KindProvider
	}
	var aerr *apierror.APIError
	if errors.As(err, &aerr) {
		return caption.KindProvider
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return caption.KindTransport
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return caption.KindTransport
	}
	return caption.KindInternal
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
