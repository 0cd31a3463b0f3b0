// Package chooserui renders a chooser session with tview.
package chooserui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/datatug/filechooser/pkg/chooser"
)

const (
	retryButton  = "Retry"
	cancelButton = "Cancel"

	listPage       = "list"
	permissionPage = "permission"
)

// Picker shows the current directory of a session and turns keys into transitions.
type Picker struct {
	*tview.Pages
	ctx     context.Context
	app     App
	session *chooser.Session
	onDone  func(chooser.Result)

	layout       *tview.Flex
	table        *tview.Table
	rows         *entryRows
	hint         *tview.TextView
	hintText     string
	selectFolder *tview.Button
	permission   *tview.Modal
}

func NewPicker(ctx context.Context, app App, session *chooser.Session, onDone func(chooser.Result)) *Picker {
	p := &Picker{
		ctx:     ctx,
		app:     app,
		session: session,
		onDone:  onDone,
		table:   tview.NewTable(),
		hint:    tview.NewTextView().SetDynamicColors(true),
		rows:    newEntryRows(nil, nil),
	}
	p.table.SetBorder(true)
	p.table.SetSelectable(true, false)
	p.table.SetContent(p.rows)
	p.table.SetInputCapture(p.inputCapture)

	p.layout = tview.NewFlex().SetDirection(tview.FlexRow)
	p.layout.AddItem(p.table, 0, 1, true)

	hint := hotkey("Enter") + " open  " + hotkey("←/Esc") + " back  " + hotkey("F5") + " refresh  " + hotkey("q") + " cancel"
	if session.Browser().Config().Mode == chooser.FolderMode {
		p.selectFolder = tview.NewButton("Select this folder").SetSelectedFunc(p.doSelectFolder)
		p.selectFolder.SetInputCapture(p.buttonInputCapture)
		p.layout.AddItem(p.selectFolder, 1, 0, false)
		hint += "  " + hotkey("Ctrl+S") + " select folder  " + hotkey("Tab") + " focus button"
	}
	p.hintText = hint
	p.hint.SetText(hint)
	p.layout.AddItem(p.hint, 1, 0, false)

	p.permission = tview.NewModal().
		SetText("Storage permission required.\nGrant read access to the folder and retry.").
		AddButtons([]string{retryButton, cancelButton}).
		SetDoneFunc(func(_ int, label string) {
			p.onPermissionChoice(label)
		})

	p.Pages = tview.NewPages().
		AddPage(listPage, p.layout, true, true).
		AddPage(permissionPage, p.permission, false, false)
	return p
}

// Start shows the first listing, or the permission prompt when initErr asks for it.
func (p *Picker) Start(initErr error) {
	if errors.Is(initErr, chooser.ErrPermissionDenied) {
		p.showPermissionPrompt()
		return
	}
	p.refresh()
}

func (p *Picker) refresh() {
	entries, err := p.session.Entries(p.ctx)
	if errors.Is(err, chooser.ErrSessionClosed) {
		return
	}
	p.rows = newEntryRows(entries, err)
	p.table.SetContent(p.rows)
	p.table.SetTitle(fmt.Sprintf(" %s ", tview.Escape(p.session.Browser().Title())))
	p.table.Select(0, 0)
	p.table.ScrollToBeginning()
	p.hint.SetText(p.hintText)
	if errors.Is(err, chooser.ErrPermissionDenied) {
		p.showPermissionPrompt()
	}
}

func (p *Picker) showPermissionPrompt() {
	p.ShowPage(permissionPage)
	p.app.SetFocus(p.permission)
}

func (p *Picker) onPermissionChoice(label string) {
	p.HidePage(permissionPage)
	p.app.SetFocus(p.table)
	switch label {
	case retryButton:
		if err := p.session.Browser().EnsureCurrentDir(p.ctx); errors.Is(err, chooser.ErrPermissionDenied) {
			p.showPermissionPrompt()
			return
		}
		p.refresh()
	default:
		_ = p.session.Cancel()
		p.finishIfDone()
	}
}

func (p *Picker) open(row int) {
	entry, ok := p.rows.entryAt(row)
	if !ok {
		return
	}
	if err := p.session.Open(entry); err != nil {
		p.hint.SetText(fmt.Sprintf("[#%06x]%s", current.err.Hex(), tview.Escape(err.Error())))
		return
	}
	p.afterTransition()
}

func (p *Picker) back() {
	_ = p.session.Back()
	p.afterTransition()
}

// abort cancels a session that is still browsing.
func (p *Picker) abort() {
	if _, done := p.session.Result(); done {
		return
	}
	p.cancel()
}

func (p *Picker) cancel() {
	_ = p.session.Cancel()
	p.afterTransition()
}

func (p *Picker) doSelectFolder() {
	if err := p.session.SelectFolder(); err != nil {
		return
	}
	p.afterTransition()
}

func (p *Picker) afterTransition() {
	if p.finishIfDone() {
		return
	}
	p.refresh()
}

func (p *Picker) finishIfDone() bool {
	result, done := p.session.Result()
	if !done {
		return false
	}
	if p.onDone != nil {
		p.onDone(result)
	}
	return true
}

func (p *Picker) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		row, _ := p.table.GetSelection()
		p.open(row)
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft, tcell.KeyEscape:
		p.back()
		return nil
	case tcell.KeyF5, tcell.KeyCtrlR:
		p.refresh()
		return nil
	case tcell.KeyCtrlS:
		if p.selectFolder != nil {
			p.doSelectFolder()
		}
		return nil
	case tcell.KeyTab:
		if p.selectFolder != nil {
			p.app.SetFocus(p.selectFolder)
			return nil
		}
		return event
	case tcell.KeyRune:
		if event.Rune() == 'q' {
			p.cancel()
			return nil
		}
		return event
	default:
		return event
	}
}

func (p *Picker) buttonInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyBacktab, tcell.KeyUp, tcell.KeyEscape:
		p.app.SetFocus(p.table)
		return nil
	default:
		return event
	}
}
