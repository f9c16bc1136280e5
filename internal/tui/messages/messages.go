package messages

// RefreshMsg reports that a file on disk changed
type RefreshMsg struct {
	Path string
}

// ErrorMsg carries an error to display in the status line
type ErrorMsg struct {
	Err error
}
