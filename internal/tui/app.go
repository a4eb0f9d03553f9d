package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/sant0-9/finder/internal/config"
	"github.com/sant0-9/finder/internal/finder"
)

type view int

const (
	viewSetup view = iota
	viewSearch
	viewSearching
	viewResult
	viewError
	viewSettings
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	service  *finder.Service
	log      *zap.Logger
	save     func(*config.Config) error
	quitting bool
}

func NewApp(cfg *config.Config, service *finder.Service, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		view:    viewSearch,
		state:   newState(cfg),
		service: service,
		log:     log.Named("tui"),
		save:    (*config.Config).Save,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		a.focusField(fieldQuery),
	)
}

type searchResultMsg struct {
	id      int
	result  finder.Result
	elapsed time.Duration
}

type setupCompleteMsg struct{}
type configSavedMsg struct{}
type configErrorMsg struct{ error }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case searchResultMsg:
		return a, a.handleResult(msg)

	case spinner.TickMsg:
		if !a.state.searching {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.view = viewSearch
		return a, a.focusField(fieldQuery)

	case configSavedMsg:
		a.state.notice = "Settings saved"
		a.state.noticeErr = nil
		return a, nil

	case configErrorMsg:
		a.log.Error("saving config failed", zap.Error(msg.error))
		a.state.notice = ""
		a.state.noticeErr = msg.error
		if a.view == viewSetup {
			// The key is still usable for this session.
			a.state.needsSetup = false
			a.view = viewSearch
			return a, a.focusField(fieldQuery)
		}
		return a, nil
	}

	return a, a.updateInputs(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Quit) {
		a.cancelSearch()
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewSearch:
		return a.handleSearchKey(msg)
	case viewSearching:
		if key.Matches(msg, keys.Back) {
			a.cancelSearch()
			a.state.notice = "Search cancelled"
			a.view = viewSearch
			return a.focusField(a.state.focus)
		}
		return nil
	case viewResult:
		return a.handleResultKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Back, keys.Help, keys.Enter) {
			a.view = viewSearch
			return a.focusField(a.state.focus)
		}
	}

	return nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, keys.Search, keys.Enter):
		return a.startSearch()
	case key.Matches(msg, keys.Tab):
		return a.focusField((a.state.focus + 1) % fieldCount)
	case key.Matches(msg, keys.ShiftTab):
		return a.focusField((a.state.focus + fieldCount - 1) % fieldCount)
	}

	if a.state.focus == fieldCategory {
		switch {
		case key.Matches(msg, keys.Left):
			a.state.category = a.state.category.Prev()
		case key.Matches(msg, keys.Right):
			a.state.category = a.state.category.Next()
		case key.Matches(msg, keys.Help):
			a.view = viewHelp
		case key.Matches(msg, keys.Settings):
			a.openSettings()
		}
		return nil
	}

	a.state.formError = nil
	return a.updateInputs(msg)
}

// focusField moves focus on the search form, blurring everything else
func (a *App) focusField(f field) tea.Cmd {
	a.state.focus = f
	a.state.queryInput.Blur()
	a.state.apiKeyInput.Blur()

	switch f {
	case fieldQuery:
		return tea.Batch(a.state.queryInput.Focus(), textarea.Blink)
	case fieldAPIKey:
		return tea.Batch(a.state.apiKeyInput.Focus(), textinput.Blink)
	}
	return nil
}

// updateInputs forwards a message to whichever text input has focus
func (a *App) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch {
	case a.view == viewSetup && a.state.setupStep == 1:
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
	case a.view == viewSearch && a.state.focus == fieldQuery:
		a.state.queryInput, cmd = a.state.queryInput.Update(msg)
	case a.view == viewSearch && a.state.focus == fieldAPIKey:
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
	case a.view == viewSettings && a.state.settingsMode == "apikey":
		a.state.settingsInput, cmd = a.state.settingsInput.Update(msg)
	}

	return cmd
}

// startSearch validates the form and launches the request in the
// background. Only one search runs at a time.
func (a *App) startSearch() tea.Cmd {
	if a.state.searching {
		return nil
	}

	req := a.state.request()
	if verr := req.Validate(); verr != nil {
		a.state.formError = verr
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())

	a.state.searchID++
	a.state.searching = true
	a.state.cancel = cancel
	a.state.searchStart = time.Now()
	a.state.lastRequest = req
	a.state.formError = nil
	a.state.notice = ""
	a.view = viewSearching

	return tea.Batch(a.state.spinner.Tick, a.searchCmd(ctx, a.state.searchID, req))
}

func (a *App) searchCmd(ctx context.Context, id int, req finder.Request) tea.Cmd {
	svc := a.service
	return func() tea.Msg {
		start := time.Now()
		res := svc.Search(ctx, req)
		return searchResultMsg{id: id, result: res, elapsed: time.Since(start)}
	}
}

func (a *App) cancelSearch() {
	if !a.state.searching {
		return
	}
	a.state.cancel()
	a.state.cancel = nil
	a.state.searching = false
}

func (a *App) handleResult(msg searchResultMsg) tea.Cmd {
	if !a.state.searching || msg.id != a.state.searchID {
		a.log.Debug("dropping stale search result", zap.Int("id", msg.id))
		return nil
	}

	a.state.cancel()
	a.state.cancel = nil
	a.state.searching = false
	a.state.elapsed = msg.elapsed

	if msg.result.OK() {
		a.state.result = msg.result.Text
		a.state.searchErr = nil
		a.view = viewResult
		a.refreshResult()
		return nil
	}

	a.state.searchErr = msg.result.Err
	if msg.result.Err.Kind == finder.KindValidation {
		a.state.formError = msg.result.Err
		a.view = viewSearch
		return a.focusField(a.state.focus)
	}
	a.view = viewError
	return nil
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewSearch
		return a.focusField(fieldQuery)
	case key.Matches(msg, keys.New):
		a.state.queryInput.Reset()
		a.state.result = ""
		a.view = viewSearch
		return a.focusField(fieldQuery)
	}

	var cmd tea.Cmd
	a.state.resultVP, cmd = a.state.resultVP.Update(msg)
	return cmd
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Retry):
		return a.startSearch()
	case key.Matches(msg, keys.Settings):
		a.openSettings()
	case key.Matches(msg, keys.Back, keys.Enter):
		a.view = viewSearch
		return a.focusField(a.state.focus)
	}
	return nil
}

// persist saves a snapshot of the config off the UI goroutine
func (a *App) persist() tea.Cmd {
	cfg := *a.state.config
	save := a.save
	return func() tea.Msg {
		if err := save(&cfg); err != nil {
			return configErrorMsg{err}
		}
		return configSavedMsg{}
	}
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height

	a.state.queryInput.SetWidth(max(20, min(70, width-8)))
	a.state.resultVP.Width = max(20, min(76, width-4)-4)
	a.state.resultVP.Height = max(5, height-12)
	a.refreshResult()
}

// refreshResult rewraps the result text to the viewport width
func (a *App) refreshResult() {
	wrapped := lipgloss.NewStyle().Width(a.state.resultVP.Width).Render(a.state.result)
	a.state.resultVP.SetContent(wrapped)
	a.state.resultVP.GotoTop()
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewSearching:
		return a.renderSearching()
	case viewResult:
		return a.renderResult()
	case viewError:
		return a.renderError()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderSearch()
	}
}
