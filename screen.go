package hrquery

// Screen indicates what takes keys: the main screen or a confirmation prompt
type Screen int

const (
	MainScreen Screen = iota
	ConfirmScreen
)
