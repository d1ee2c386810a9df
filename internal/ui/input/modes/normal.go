package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tokengrip/internal/domain"
	"tokengrip/internal/ui/input/types"
	"tokengrip/internal/ui/services/navigation"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Up):
		return navigate(navigation.DirectionUp), true
	case key.Matches(msg, k.Down):
		return navigate(navigation.DirectionDown), true
	case key.Matches(msg, k.PageUp):
		return navigate(navigation.DirectionPageUp), true
	case key.Matches(msg, k.PageDown):
		return navigate(navigation.DirectionPageDown), true

	case key.Matches(msg, k.NextTab):
		return []types.Action{types.NextTabAction{}}, true
	case key.Matches(msg, k.PreviousTab):
		return []types.Action{types.PreviousTabAction{}}, true
	case key.Matches(msg, k.Tab1, k.Tab2, k.Tab3, k.Tab4):
		index := int(msg.Runes[0] - '1')
		if index >= ctx.TabCount() {
			return nil, true
		}
		return []types.Action{types.SetTabAction{Index: index}}, true

	case key.Matches(msg, k.NextBlock):
		if !onDecoder(ctx) {
			return nil, false
		}
		return []types.Action{types.NextBlockAction{}}, true
	case key.Matches(msg, k.PreviousBlock):
		if !onDecoder(ctx) {
			return nil, false
		}
		return []types.Action{types.PreviousBlockAction{}}, true

	case key.Matches(msg, k.Edit):
		switch ctx.ActiveBlock() {
		case domain.BlockToken:
			return []types.Action{types.ChangeModeAction{Mode: types.ModeEditToken, Data: ctx.Token()}}, true
		case domain.BlockSignature:
			return []types.Action{types.ChangeModeAction{Mode: types.ModeEditSecret, Data: ctx.Secret()}}, true
		}
		return nil, false

	case key.Matches(msg, k.Copy):
		return []types.Action{types.CopyAction{}}, true
	case key.Matches(msg, k.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	case key.Matches(msg, k.Load):
		if ctx.ActiveBlock() == domain.BlockHistory {
			return []types.Action{types.LoadHistoryAction{}}, true
		}
		return nil, false
	case key.Matches(msg, k.Theme):
		return []types.Action{types.ToggleThemeAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.FocusAction{Block: domain.BlockHelp}}, true
	}

	return nil, false
}

func navigate(dir navigation.Direction) []types.Action {
	return []types.Action{types.NavigateAction{Direction: dir}}
}

func onDecoder(ctx types.Context) bool {
	switch ctx.ActiveBlock() {
	case domain.BlockToken, domain.BlockHeader, domain.BlockPayload, domain.BlockSignature:
		return true
	default:
		return false
	}
}
