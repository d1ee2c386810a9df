package types

import (
	"tokengrip/internal/domain"
	"tokengrip/internal/ui/services/navigation"
)

// Navigation actions
type NavigateAction struct {
	Direction navigation.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// Tab actions
type NextTabAction struct{}

func (a NextTabAction) Type() string { return "next_tab" }

type PreviousTabAction struct{}

func (a PreviousTabAction) Type() string { return "previous_tab" }

type SetTabAction struct {
	Index int
}

func (a SetTabAction) Type() string { return "set_tab" }

// Block actions move between the blocks of the decoder screen
type NextBlockAction struct{}

func (a NextBlockAction) Type() string { return "next_block" }

type PreviousBlockAction struct{}

func (a PreviousBlockAction) Type() string { return "previous_block" }

type FocusAction struct {
	Block domain.ActiveBlock
}

func (a FocusAction) Type() string { return "focus" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type LoadHistoryAction struct{}

func (a LoadHistoryAction) Type() string { return "load_history" }

type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
