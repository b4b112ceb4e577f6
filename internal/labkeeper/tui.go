package labkeeper

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/term"
)

// runLogViewer shows the maintenance log in a scrollable viewer. When stdout
// is not a terminal the file is dumped verbatim instead so the command stays
// usable from cron mails and shell pipelines.
func runLogViewer(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No maintenance log found at %s: %v\n", path, err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		os.Stdout.Write(content)
		return 0
	}

	app := tview.NewApplication()

	headerBox := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetTextAlign(tview.AlignLeft)
	headerBox.SetBorder(true)
	headerBox.SetTitle("labkeeper Maintenance Log")

	logView := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(false).
		SetScrollable(true).
		SetChangedFunc(func() {
			app.Draw()
		})
	logView.SetBorder(true)

	footerBox := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetTextAlign(tview.AlignLeft)
	footerBox.SetBorder(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerBox, 3, 0, false).
		AddItem(logView, 0, 1, true).
		AddItem(footerBox, 3, 0, false)

	refresh := func() {
		data, err := os.ReadFile(path)
		if err == nil {
			content = data
		}
		info, _ := os.Stat(path)
		size := int64(0)
		if info != nil {
			size = info.Size()
		}
		headerBox.SetText(fmt.Sprintf("[yellow]%s[-] (%d bytes)", path, size))
		logView.SetText(string(content))
		logView.ScrollToEnd()
	}

	footerBox.SetText("[green]Up/Down[-] scroll  [green]Home/End[-] jump  [green]r[-] reload  [green]q/Esc[-] quit")

	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlQ, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyHome:
			logView.ScrollToBeginning()
			return nil
		case tcell.KeyEnd:
			logView.ScrollToEnd()
			return nil
		}
		switch event.Rune() {
		case 'q':
			app.Stop()
			return nil
		case 'r':
			refresh()
			return nil
		}
		return event
	})

	refresh()

	if err := app.SetRoot(flex, true).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Log viewer error: %v\n", err)
		return 1
	}
	return 0
}
