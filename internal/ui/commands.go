package ui

import (
	"context"
	"fmt"

	"dagenreels/internal/artifact"
	"dagenreels/internal/convert"
	"dagenreels/internal/progress"

	tea "github.com/charmbracelet/bubbletea"
)

// Saver persists a downloaded reel and returns its local path.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// Ensure artifact.Store implements Saver.
var _ Saver = (*artifact.Store)(nil)

// convertCmd returns a command that performs one conversion attempt: a single
// request to the endpoint, then saving the body under the reel filename.
// It always yields exactly one progress.Event.
func convertCmd(ctx context.Context, c convert.Converter, s Saver, url string) tea.Cmd {
	return func() tea.Msg {
		data, err := c.Convert(ctx, url)
		if err != nil {
			return progress.Failed(url, err)
		}
		path, err := s.Save(artifact.ReelFilename, data)
		if err != nil {
			return progress.Failed(url, fmt.Errorf("save reel: %w", err))
		}
		return progress.Done(url, path, len(data))
	}
}
