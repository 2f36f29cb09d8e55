package views

import "scrib/pkg/core"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching

// SwitchToFormMsg requests the note form. A nil Note means "create".
type SwitchToFormMsg struct {
	Note *core.Note
}

// SwitchToConfirmMsg requests the delete confirmation for a note.
type SwitchToConfirmMsg struct {
	Note core.Note
}

// SwitchToListMsg returns to the note list, reloading it from the store.
type SwitchToListMsg struct{}

// FormSavedMsg indicates the form was submitted successfully.
type FormSavedMsg struct {
	Message string
}

// FormErrMsg indicates an error while saving the form.
type FormErrMsg struct {
	Err error
}

// DeletedMsg indicates a note was deleted.
type DeletedMsg struct {
	Message string
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}
