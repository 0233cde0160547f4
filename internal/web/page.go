package web

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/eternisai/text2mindmap/internal/mindmap"
)

// State is where the page is in its submit cycle.
type State string

const (
	StateAwaiting State = "awaiting"
	StateResult   State = "result"
	StateError    State = "error"
)

const (
	MindmapHeight     = 500
	MindmapBackground = "#ffffff"
	TextAreaHeight    = 200
)

// Page is everything the template needs for one render.
type Page struct {
	Title   string
	Caption string
	State   State

	// NeedsCredential shows the masked API key input.
	NeedsCredential bool
	// Connected is true when a client could be built from the resolved key.
	Connected bool
	// SessionCredential is true when the key lives in the session and can be cleared.
	SessionCredential bool

	Text    string
	Error   string
	Mindmap *MindmapView
	Sidebar Sidebar
}

// MindmapView configures the diagram widget and the raw markdown panel.
type MindmapView struct {
	Markdown   string
	Height     int
	Background string
}

// Style is the inline CSS for the widget container.
func (m MindmapView) Style() template.CSS {
	return template.CSS(fmt.Sprintf("background-color: %s; height: %dpx;", m.Background, m.Height))
}

// Sidebar is static content describing the model and usage tips.
type Sidebar struct {
	Model       string
	Temperature string
	MaxTokens   string
	TopP        string
	Tips        []string
}

// NewSidebar renders the generator settings as display strings.
func NewSidebar(s mindmap.Settings, tips []string) Sidebar {
	return Sidebar{
		Model:       s.Model,
		Temperature: strconv.FormatFloat(s.Temperature, 'f', -1, 64),
		MaxTokens:   strconv.Itoa(s.MaxTokens),
		TopP:        strconv.FormatFloat(s.TopP, 'f', -1, 64),
		Tips:        tips,
	}
}

func newMindmapView(markdown string) *MindmapView {
	return &MindmapView{
		Markdown:   markdown,
		Height:     MindmapHeight,
		Background: MindmapBackground,
	}
}
