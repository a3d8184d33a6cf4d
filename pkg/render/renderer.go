package render

import (
	"context"
)

// Renderer converts one control revision into a byte representation (HTML,
// JSON props, terminal output).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View, options RenderOptions) ([]byte, error)
}
