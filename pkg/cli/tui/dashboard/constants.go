package dashboard

// Input modes for the dashboard
const (
	ModeBrowse = iota
	ModeAdding
)

// Terminal size fallbacks until the first WindowSizeMsg arrives
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ChromeHeight is the number of rows taken by the wrapper header, footer and input line.
const ChromeHeight = 9

// MinPaneHeight keeps both panes usable on tiny terminals.
const MinPaneHeight = 5
