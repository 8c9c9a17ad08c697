package tui

// mode is the current interaction state of the session. Exactly one mode
// value is active at a time; it is session-local and never persisted. The
// variants form a sealed sum type so the executor can match exhaustively.
type mode interface {
	isMode()
}

// modeNormal is idle browsing: the initial state, the only state the
// session can exit from, and the only state where the highlight moves.
type modeNormal struct{}

// modeHelp shows the keybinding reference until any character key.
type modeHelp struct{}

// inputTarget names the mutation a finished text buffer feeds into.
type inputTarget int

const (
	inputAdd inputTarget = iota
	inputDescribe
	inputTag
	inputEditTitle
	inputRemoveTag
)

// modeInput collects a free-text line one keypress at a time.
type modeInput struct {
	target inputTarget
	buffer string
}

// confirmAction names the external helper a binary gate guards.
type confirmAction int

const (
	confirmCommit confirmAction = iota
	confirmPublish
)

// modeConfirm is a yes/no gate in front of an external helper.
type modeConfirm struct {
	action confirmAction
}

// modeRemoveMenu picks what to remove: the issue, a description, or a tag.
type modeRemoveMenu struct{}

// modeCopyMenu picks what to copy: title, description, or the whole list.
type modeCopyMenu struct{}

// modeRemoveDescription walks the highlighted issue's description lines.
type modeRemoveDescription struct {
	index int
}

// modeRestore walks the recycle bin.
type modeRestore struct {
	index int
}

func (modeNormal) isMode()            {}
func (modeHelp) isMode()              {}
func (modeInput) isMode()             {}
func (modeConfirm) isMode()           {}
func (modeRemoveMenu) isMode()        {}
func (modeCopyMenu) isMode()          {}
func (modeRemoveDescription) isMode() {}
func (modeRestore) isMode()           {}
