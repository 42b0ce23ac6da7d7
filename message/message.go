package message

// ErrorMsg carries an error from an operation to the footer.
type ErrorMsg struct {
	Err error
}

// StatusMsg carries a short note for the footer.
type StatusMsg struct {
	Text string
}
