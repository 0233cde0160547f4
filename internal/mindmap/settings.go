package mindmap

// SystemPrompt asks for a three-level markdown outline.
const SystemPrompt = `Convert this text into a hierarchical markdown list for a mindmap.
Use exactly 3 levels maximum with this format:

# Main Concept
- Primary Topic
  - Secondary Detail
  - Another Detail
- Another Primary Topic`

// Settings are the fixed sampling parameters sent with every request and
// shown in the sidebar.
type Settings struct {
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Stream      bool
}

func DefaultSettings() Settings {
	return Settings{
		Model:       "deepseek-r1-distill-llama-70b",
		Temperature: 0.6,
		TopP:        0.95,
		MaxTokens:   4096,
		Stream:      false,
	}
}
