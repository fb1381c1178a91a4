package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"noserun/internal/domain"
)

// Viewer displays an output panel
type Viewer interface {
	View(panel *domain.Panel) error
}

// RerunFunc repeats the run recorded in a panel and returns the new panel
type RerunFunc func(run domain.Run) (*domain.Panel, error)

// PanelViewer displays a panel in an interactive TUI
type PanelViewer struct {
	rerun RerunFunc
}

// NewPanelViewer creates a PanelViewer. rerun may be nil to disable re-running.
func NewPanelViewer(rerun RerunFunc) *PanelViewer {
	return &PanelViewer{rerun: rerun}
}

// View displays the panel until the user quits
func (pv *PanelViewer) View(panel *domain.Panel) error {
	app := tview.NewApplication()

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	statusView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	outputView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true).
		SetWordWrap(true)
	outputView.SetBorder(true)

	running := false
	render := func(p *domain.Panel) {
		headerView.SetText(pv.headerText(p))
		statusView.SetText(pv.statusText(p))
		outputView.SetTitle(" " + tview.Escape(p.Name) + " ")
		outputView.SetText(tview.Escape(p.Text))
		outputView.ScrollToEnd()
	}
	render(panel)

	startRerun := func() {
		if pv.rerun == nil || panel.Run == nil || running {
			return
		}
		running = true
		statusView.SetText("[yellow]Running " + tview.Escape(panel.Run.Method) + "...[white]")
		run := *panel.Run

		go func() {
			next, err := pv.rerun(run)
			app.QueueUpdateDraw(func() {
				running = false
				if err != nil {
					statusView.SetText("[red]Rerun failed: " + tview.Escape(err.Error()) + "[white]")
					return
				}
				panel = next
				render(panel)
			})
		}()
	}

	outputView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.Stop()
				return nil
			case 'r', 'R':
				startRerun()
				return nil
			case 'g':
				outputView.ScrollToBeginning()
				return nil
			case 'G':
				outputView.ScrollToEnd()
				return nil
			}
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(statusView, 1, 0, false).
		AddItem(outputView, 0, 1, true)

	return app.SetRoot(layout, true).SetFocus(outputView).Run()
}

func (pv *PanelViewer) headerText(panel *domain.Panel) string {
	keys := "↑↓ scroll, g/G top/bottom, q to exit"
	if pv.rerun != nil && panel.Run != nil {
		keys = "↑↓ scroll, g/G top/bottom, [yellow]R[white] to rerun, q to exit"
	}
	return fmt.Sprintf(" Output panel %s | %s ", tview.Escape(panel.Name), keys)
}

func (pv *PanelViewer) statusText(panel *domain.Panel) string {
	if panel.Run == nil {
		return ""
	}
	status := "[yellow]no result[white]"
	if panel.Run.Result != nil {
		if panel.Run.Result.Passed() {
			status = "[green]" + Summary(*panel.Run.Result, false) + "[white]"
		} else {
			status = "[red]" + Summary(*panel.Run.Result, false) + "[white]"
		}
	}
	return fmt.Sprintf(" [cyan]%s[white]  %s", tview.Escape(panel.Run.Method), status)
}
