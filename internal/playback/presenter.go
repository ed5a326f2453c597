package playback

// Presenter receives render instructions from the session. Implementations
// must not call back into the session from within these methods; they run
// inside the session's transition handlers.
type Presenter interface {
	// ShowTitleCard renders centered, emphasized chapter title text.
	ShowTitleCard(text string)
	// ShowDialogue renders a speaker name (possibly empty) and its text.
	ShowDialogue(speaker, text string)
	// ShowChoices presents the option strings of a choice prompt.
	ShowChoices(options []string)
	// ShowTitleScreen returns the display to the title menu.
	ShowTitleScreen()
	// Notify reports a non-fatal condition to the reader (save succeeded,
	// save data corrupt, and the like).
	Notify(message string)
}

type nopPresenter struct{}

func (nopPresenter) ShowTitleCard(string)     {}
func (nopPresenter) ShowDialogue(_, _ string) {}
func (nopPresenter) ShowChoices([]string)     {}
func (nopPresenter) ShowTitleScreen()         {}
func (nopPresenter) Notify(string)            {}
