// Package markdown formats markdown text for terminal output.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/wordwrap"

	internalstrings "github.com/example/daytask/internal/strings"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown for a terminal of the given width. Rendering
// failures fall back to the word-wrapped original text; a bad body
// must never block the caller.
func Render(width int, input string) string {
	value := internalstrings.NormalizeNewlines(input)
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	rendered, ok := safeRender(markdownRenderer(width), value)
	if !ok {
		rendered = wordwrap.String(value, width)
	}

	return internalstrings.TrimTrailingNewlines(rendered)
}

func safeRender(r renderer, value string) (rendered string, ok bool) {
	if r == nil {
		return "", false
	}

	defer func() {
		if recover() != nil {
			rendered, ok = "", false
		}
	}()

	formatted, err := r.Render(value)
	if err != nil || strings.TrimSpace(formatted) == "" {
		return "", false
	}
	return formatted, true
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if r, ok := renderers[width]; ok {
		return r
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.NoTTYStyleConfig),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		renderers[width] = nil
		return nil
	}

	renderers[width] = r
	return r
}
