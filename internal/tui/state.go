package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/finder/internal/config"
	"github.com/sant0-9/finder/internal/finder"
	"github.com/sant0-9/finder/internal/prompts"
)

// field is the focused element of the search form
type field int

const (
	fieldCategory field = iota
	fieldQuery
	fieldAPIKey
	fieldCount
)

const queryPlaceholder = "e.g., 'Find a tool for project management' or 'Locate a business for web design'"

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep     int
	selectedModel int

	// Search form
	focus       field
	category    prompts.Category
	queryInput  textarea.Model
	apiKeyInput textinput.Model
	formError   *finder.Error

	// Search in flight. searchID grows with every search so that replies
	// to cancelled searches can be recognised and dropped.
	searching   bool
	searchID    int
	cancel      context.CancelFunc
	searchStart time.Time
	lastRequest finder.Request
	spinner     spinner.Model

	// Outcome of the last search
	result    string
	elapsed   time.Duration
	searchErr *finder.Error
	resultVP  viewport.Model

	// Settings
	settingsMode     string
	settingsSelected int
	settingsInput    textinput.Model
	notice           string
	noticeErr        error
}

func newState(cfg *config.Config) *state {
	query := textarea.New()
	query.Placeholder = queryPlaceholder
	query.CharLimit = 2000
	query.ShowLineNumbers = false
	query.SetWidth(60)
	query.SetHeight(4)
	query.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your Gemini API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50
	if cfg.HasAPIKey() {
		apiKey.SetValue(cfg.APIKey)
	}

	settingsInput := textinput.New()
	settingsInput.Placeholder = "Paste your new API key here..."
	settingsInput.EchoMode = textinput.EchoPassword
	settingsInput.CharLimit = 200
	settingsInput.Width = 50

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	category, err := prompts.ParseCategory(cfg.Category)
	if err != nil {
		category = prompts.ToolFinder
	}

	return &state{
		config:        cfg,
		needsSetup:    !cfg.HasAPIKey(),
		category:      category,
		queryInput:    query,
		apiKeyInput:   apiKey,
		settingsInput: settingsInput,
		spinner:       spin,
		selectedModel: config.ModelIndex(cfg.Model),
		resultVP:      viewport.New(70, 10),
	}
}

// request snapshots the form into a search request
func (s *state) request() finder.Request {
	return finder.Request{
		Credential: s.apiKeyInput.Value(),
		Category:   s.category,
		Query:      s.queryInput.Value(),
	}
}
