// Package caption holds the captioning domain: the instruction sent to the
// model, the engine contract, and result shaping.
package caption

import (
	"bytes"
	"context"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Prompt is the fixed instruction sent with every image.
const Prompt = `
Describe this image in detail. Focus on the main subjects, actions, setting, colors, and any discernible emotions or atmosphere.
Provide a concise yet comprehensive caption, suitable for accessibility purposes or a brief summary.
Make sure to include any notable features or context that would help someone understand the image without seeing it.
Translate to bahasa indonesia if necessary.
`

// Fallback is returned when the model produces no usable text.
const Fallback = "No caption could be generated for this image."

// Captioner generates a text caption for a single image. Implementations
// must be safe for concurrent use; one instance is shared by all requests.
type Captioner interface {
	Name() string
	GetModel() string
	Caption(ctx context.Context, img []byte) (string, error)
}

// Normalize trims the model output and substitutes Fallback for empty text.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fallback
	}
	return s
}

// CheckDecodable verifies the payload parses as an image (png, jpeg or gif).
func CheckDecodable(img []byte) error {
	if _, _, err := image.Decode(bytes.NewReader(img)); err != nil {
		return Wrap(KindDecode, err)
	}
	return nil
}
