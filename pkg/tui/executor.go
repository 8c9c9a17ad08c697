package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/issuebox/issuebox-cli/pkg/models"
)

// outcome is the result of feeding one keypress to the executor. The
// session loop consumes exactly one outcome per keypress.
type outcome interface {
	isOutcome()
}

// nextMode transitions without touching the box.
type nextMode struct {
	mode mode
}

// persisted means the box was mutated: the session saves it before the
// next render, then returns to browsing.
type persisted struct{}

// copyRequested asks the session to hand text to the clipboard. The
// session returns to browsing whether or not the hand-off works.
type copyRequested struct {
	text string
}

// failed carries a recoverable, human-readable error. The box was not
// mutated.
type failed struct {
	err error
}

// quit ends the session.
type quit struct{}

func (nextMode) isOutcome()      {}
func (persisted) isOutcome()     {}
func (copyRequested) isOutcome() {}
func (failed) isOutcome()        {}
func (quit) isOutcome()          {}

// hooks are the external helper actions guarded by the confirm gates.
type hooks struct {
	commit  func(title string) error
	publish func(is *models.Issue) error
}

// execute drives the mode state machine: one keypress against the current
// mode, with mutable access to the highlight index and the box. Index
// bounds are re-derived from the live lengths here on every call, never
// cached across keypresses.
func execute(md mode, msg tea.KeyMsg, index *int, box *models.Box, h hooks) outcome {
	if msg.Type == tea.KeyCtrlC {
		return quit{}
	}

	// The universal cancel key returns to browsing from every state
	// without applying buffers or walking state.
	if msg.Type == tea.KeyEsc {
		return nextMode{modeNormal{}}
	}

	switch md := md.(type) {
	case modeNormal:
		return executeNormal(msg, index, box)

	case modeHelp:
		if _, ok := keyText(msg); ok {
			return nextMode{modeNormal{}}
		}
		return nextMode{md}

	case modeInput:
		buffer, done := gatherLine(md.buffer, msg)
		if !done {
			return nextMode{modeInput{target: md.target, buffer: buffer}}
		}
		return finishInput(md.target, buffer, *index, box)

	case modeConfirm:
		return executeConfirm(md, msg, index, box, h)

	case modeRemoveMenu:
		return executeRemoveMenu(msg, index, box)

	case modeCopyMenu:
		return executeCopyMenu(msg, *index, box)

	case modeRemoveDescription:
		is, ok := box.Get(*index)
		if !ok {
			return nextMode{modeNormal{}}
		}
		switch {
		case isUpKey(msg):
			return nextMode{modeRemoveDescription{index: max(md.index-1, 0)}}
		case isDownKey(msg):
			return nextMode{modeRemoveDescription{index: min(md.index+1, len(is.Description)-1)}}
		case msg.Type == tea.KeyEnter:
			if is.RemoveDescription(md.index) {
				return persisted{}
			}
			return nextMode{modeNormal{}}
		}
		return nextMode{md}

	case modeRestore:
		switch {
		case isUpKey(msg):
			return nextMode{modeRestore{index: max(md.index-1, 0)}}
		case isDownKey(msg):
			return nextMode{modeRestore{index: min(md.index+1, len(box.RecycleBin)-1)}}
		case msg.Type == tea.KeyEnter:
			if _, ok := box.Restore(md.index); ok {
				return persisted{}
			}
			return nextMode{modeNormal{}}
		}
		return nextMode{md}
	}

	return nextMode{modeNormal{}}
}

func executeNormal(msg tea.KeyMsg, index *int, box *models.Box) outcome {
	switch {
	case isUpKey(msg):
		*index = max(*index-1, 0)
		return nextMode{modeNormal{}}
	case isDownKey(msg):
		*index = min(*index+1, max(box.Len()-1, 0))
		return nextMode{modeNormal{}}
	}

	text, ok := keyText(msg)
	if !ok {
		return nextMode{modeNormal{}}
	}

	switch text {
	case "q":
		return quit{}
	case "H":
		return nextMode{modeHelp{}}
	case "a":
		return nextMode{modeInput{target: inputAdd}}
	case "R":
		if len(box.RecycleBin) == 0 {
			return nextMode{modeNormal{}}
		}
		return nextMode{modeRestore{index: 0}}
	}

	// Everything below acts on the highlighted issue.
	if box.Len() == 0 {
		return nextMode{modeNormal{}}
	}

	switch text {
	case "d":
		return nextMode{modeInput{target: inputDescribe}}
	case "t":
		return nextMode{modeInput{target: inputTag}}
	case "e":
		return nextMode{modeInput{target: inputEditTitle}}
	case "c":
		return nextMode{modeCopyMenu{}}
	case "C":
		return nextMode{modeConfirm{action: confirmCommit}}
	case "P":
		return nextMode{modeConfirm{action: confirmPublish}}
	case "r":
		return nextMode{modeRemoveMenu{}}
	case "*":
		switch {
		case box.Starred == nil:
			starred := *index
			box.Starred = &starred
			return persisted{}
		case *box.Starred == *index:
			box.Starred = nil
			return persisted{}
		default:
			// Jump to the starred issue: navigation, not a mutation.
			*index = *box.Starred
			return nextMode{modeNormal{}}
		}
	}

	return nextMode{modeNormal{}}
}

func finishInput(target inputTarget, buffer string, index int, box *models.Box) outcome {
	if target == inputAdd {
		box.Add(buffer)
		return persisted{}
	}

	is, ok := box.Get(index)
	if !ok {
		return nextMode{modeNormal{}}
	}
	switch target {
	case inputDescribe:
		is.Describe(buffer)
	case inputTag:
		is.Tag(buffer)
	case inputEditTitle:
		is.Title = buffer
	case inputRemoveTag:
		is.Untag(buffer)
	}
	return persisted{}
}

func executeConfirm(md modeConfirm, msg tea.KeyMsg, index *int, box *models.Box, h hooks) outcome {
	text, _ := keyText(msg)
	switch text {
	case "y", "Y":
		is, ok := box.Get(*index)
		if !ok {
			return nextMode{modeNormal{}}
		}
		var err error
		switch md.action {
		case confirmCommit:
			err = h.commit(is.Title)
		case confirmPublish:
			err = h.publish(is)
		}
		if err != nil {
			return failed{err}
		}
		box.Remove(*index)
		return persisted{}
	case "n", "N":
		return nextMode{modeNormal{}}
	}
	return nextMode{md}
}

func executeRemoveMenu(msg tea.KeyMsg, index *int, box *models.Box) outcome {
	is, ok := box.Get(*index)
	if !ok {
		return nextMode{modeNormal{}}
	}

	text, _ := keyText(msg)
	switch text {
	case "T":
		box.Remove(*index)
		return persisted{}
	case "d":
		if len(is.Description) == 0 {
			return nextMode{modeNormal{}}
		}
		return nextMode{modeRemoveDescription{index: 0}}
	case "t":
		return nextMode{modeInput{target: inputRemoveTag}}
	}
	return nextMode{modeRemoveMenu{}}
}

func executeCopyMenu(msg tea.KeyMsg, index int, box *models.Box) outcome {
	is, ok := box.Get(index)
	if !ok {
		return nextMode{modeNormal{}}
	}

	text, _ := keyText(msg)
	switch text {
	case "t":
		return copyRequested{text: is.Title}
	case "d":
		return copyRequested{text: strings.Join(is.Description, "\n")}
	case "l":
		return copyRequested{text: box.String()}
	}
	return nextMode{modeCopyMenu{}}
}

// gatherLine folds one keypress into a text buffer: backspace pops the
// last rune, printable characters append, Enter finalizes.
func gatherLine(buffer string, msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return buffer, true
	case tea.KeyBackspace:
		runes := []rune(buffer)
		if len(runes) > 0 {
			buffer = string(runes[:len(runes)-1])
		}
	default:
		if text, ok := keyText(msg); ok {
			buffer += text
		}
	}
	return buffer, false
}

// keyText returns the printable text of a character keypress.
func keyText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}

func isUpKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyUp || msg.Type == tea.KeyLeft {
		return true
	}
	text, ok := keyText(msg)
	return ok && (text == "k" || text == "h")
}

func isDownKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyDown || msg.Type == tea.KeyRight {
		return true
	}
	text, ok := keyText(msg)
	return ok && (text == "j" || text == "l")
}
