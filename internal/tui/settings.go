package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/finder/internal/config"
	"github.com/sant0-9/finder/internal/finder"
)

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.setupStep {
	case 0: // Model selection
		switch {
		case key.Matches(msg, keys.Back):
			a.quitting = true
			return tea.Quit
		case key.Matches(msg, keys.Up):
			if a.state.selectedModel > 0 {
				a.state.selectedModel--
			}
		case key.Matches(msg, keys.Down):
			if a.state.selectedModel < len(config.Models)-1 {
				a.state.selectedModel++
			}
		case key.Matches(msg, keys.Enter):
			a.selectModel(config.Models[a.state.selectedModel].ID)
			a.state.setupStep = 1
			return tea.Batch(a.state.apiKeyInput.Focus(), textinput.Blink)
		}
		return nil

	case 1: // API key entry
		switch {
		case key.Matches(msg, keys.Back):
			a.state.setupStep = 0
			a.state.formError = nil
			a.state.apiKeyInput.Blur()
			return nil
		case key.Matches(msg, keys.Remember):
			a.state.config.RememberKey = !a.state.config.RememberKey
			return nil
		case key.Matches(msg, keys.Enter):
			k := strings.TrimSpace(a.state.apiKeyInput.Value())
			if verr := finder.ValidateCredential(k); verr != nil {
				a.state.formError = verr
				return nil
			}
			a.state.formError = nil
			a.state.config.SetAPIKey(k)
			a.state.apiKeyInput.SetValue(k)
			a.state.apiKeyInput.Blur()
			return a.finishSetup()
		}
	}

	a.state.formError = nil
	return a.updateInputs(msg)
}

func (a *App) finishSetup() tea.Cmd {
	save := a.persist()
	return func() tea.Msg {
		msg := save()
		if _, ok := msg.(configSavedMsg); !ok {
			return msg
		}
		return setupCompleteMsg{}
	}
}

func (a *App) selectModel(id string) {
	a.state.config.SetModel(id)
	a.state.selectedModel = config.ModelIndex(id)
	if a.service != nil {
		a.service.SetModel(id)
	}
}

func (a *App) openSettings() {
	a.view = viewSettings
	a.state.settingsMode = ""
	a.state.notice = ""
	a.state.noticeErr = nil
	a.state.formError = nil
	a.state.queryInput.Blur()
	a.state.apiKeyInput.Blur()
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.settingsMode {
	case "model":
		switch {
		case key.Matches(msg, keys.Back):
			a.state.settingsMode = ""
		case key.Matches(msg, keys.Up):
			if a.state.settingsSelected > 0 {
				a.state.settingsSelected--
			}
		case key.Matches(msg, keys.Down):
			if a.state.settingsSelected < len(config.Models)-1 {
				a.state.settingsSelected++
			}
		case key.Matches(msg, keys.Enter):
			a.selectModel(config.Models[a.state.settingsSelected].ID)
			a.state.settingsMode = ""
			return a.persist()
		}
		return nil

	case "apikey":
		switch {
		case key.Matches(msg, keys.Back):
			a.state.settingsMode = ""
			a.state.formError = nil
			a.state.settingsInput.Reset()
			a.state.settingsInput.Blur()
			return nil
		case key.Matches(msg, keys.Enter):
			k := strings.TrimSpace(a.state.settingsInput.Value())
			if verr := finder.ValidateCredential(k); verr != nil {
				a.state.formError = verr
				return nil
			}
			a.state.formError = nil
			a.state.config.SetAPIKey(k)
			a.state.apiKeyInput.SetValue(k)
			a.state.settingsInput.Reset()
			a.state.settingsInput.Blur()
			a.state.settingsMode = ""
			return a.persist()
		}
		a.state.formError = nil
		return a.updateInputs(msg)
	}

	switch msg.String() {
	case "esc":
		a.view = viewSearch
		return a.focusField(a.state.focus)
	case "m":
		a.state.settingsMode = "model"
		a.state.settingsSelected = config.ModelIndex(a.state.config.Model)
	case "k":
		a.state.settingsMode = "apikey"
		return tea.Batch(a.state.settingsInput.Focus(), textinput.Blink)
	case "r":
		a.state.config.RememberKey = !a.state.config.RememberKey
		return a.persist()
	}
	return nil
}
