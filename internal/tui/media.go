package tui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/mlshowcase/internal/catalog"
)

// mediaOpenedMsg reports the end of an external viewer run.
type mediaOpenedMsg struct {
	title string
	err   error
}

func mediaPath(dir, ref string) string {
	if dir == "" || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(dir, ref)
}

// openMedia hands the demo's asset to the configured viewer. The
// showcase takes no corrective action on failure; it only reports it.
func (m Model) openMedia(d catalog.Demo) tea.Cmd {
	fail := func(err error) tea.Cmd {
		return func() tea.Msg { return mediaOpenedMsg{title: d.Title, err: err} }
	}
	path := mediaPath(m.cfg.Media.Dir, d.Media)
	if _, err := os.Stat(path); err != nil {
		return fail(fmt.Errorf("media %s unavailable: %w", d.Media, err))
	}
	args := strings.Fields(m.cfg.Media.OpenCommand)
	if len(args) == 0 {
		return fail(errors.New("media.open_command is empty"))
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	log.Printf("open media %s with %s", path, args[0])
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			err = fmt.Errorf("%s %s: %w", args[0], d.Media, err)
		}
		return mediaOpenedMsg{title: d.Title, err: err}
	})
}
