package state

import (
	"tokengrip/internal/domain"
)

// HelpEntry is one row of the key binding list
type HelpEntry struct {
	Keys        string
	Description string
}

// AppState contains all the application state
type AppState struct {
	// Screens and the blocks of the decoder screen
	Tabs   *Tabs[domain.Route]
	Blocks *Tabs[domain.Route]

	// Decoded token panes
	Header    *Text
	Payload   *Text
	Signature *Text

	Claims  *Table[domain.Claim]
	History *List[domain.HistoryEntry]
	Help    *List[HelpEntry]

	// Token data
	Token        string         // raw token as last submitted
	Secret       string         // secret used for verification
	RawClaims    map[string]any // claims of the decoded token, re-rendered on each tick
	Verification domain.VerifyStatus
	DecodeError  string

	// UI state
	LightTheme    bool
	StatusMessage string
}

// NewAppState creates a new application state positioned on the token input
func NewAppState(help []HelpEntry) *AppState {
	return &AppState{
		Tabs: NewTabs([]TabRoute[domain.Route]{
			{Title: "Decoder", Route: domain.Route{ID: domain.RouteDecoder, Block: domain.BlockToken}},
			{Title: "Claims", Route: domain.Route{ID: domain.RouteClaims, Block: domain.BlockClaims}},
			{Title: "History", Route: domain.Route{ID: domain.RouteHistory, Block: domain.BlockHistory}},
			{Title: "Help", Route: domain.Route{ID: domain.RouteHelp, Block: domain.BlockHelp}},
		}),
		Blocks: NewTabs([]TabRoute[domain.Route]{
			{Title: "Encoded Token", Route: domain.Route{ID: domain.RouteDecoder, Block: domain.BlockToken}},
			{Title: "Header: Algorithm & Token Type", Route: domain.Route{ID: domain.RouteDecoder, Block: domain.BlockHeader}},
			{Title: "Payload: Claims", Route: domain.Route{ID: domain.RouteDecoder, Block: domain.BlockPayload}},
			{Title: "Verify Signature", Route: domain.Route{ID: domain.RouteDecoder, Block: domain.BlockSignature}},
		}),
		Header:    NewText(""),
		Payload:   NewText(""),
		Signature: NewText(""),
		Claims:    NewTable[domain.Claim](),
		History:   NewList[domain.HistoryEntry](),
		Help:      NewListWithItems(help),
	}
}

// ActiveRoute returns the route receiving input: the active block on the
// decoder screen, the screen itself elsewhere
func (s *AppState) ActiveRoute() domain.Route {
	route := s.Tabs.ActiveRoute()
	if route.ID == domain.RouteDecoder {
		return s.Blocks.ActiveRoute()
	}
	return route
}

// ActiveScrollable returns the collection that scroll commands move, or nil
// when the active block has nothing to scroll
func (s *AppState) ActiveScrollable() Scrollable {
	switch s.ActiveRoute().Block {
	case domain.BlockHeader:
		return s.Header
	case domain.BlockPayload:
		return s.Payload
	case domain.BlockSignature:
		return s.Signature
	case domain.BlockClaims:
		return s.Claims
	case domain.BlockHistory:
		return s.History
	case domain.BlockHelp:
		return s.Help
	default:
		return nil
	}
}

// ActiveText returns the text pane of the active block, or nil
func (s *AppState) ActiveText() *Text {
	switch s.ActiveRoute().Block {
	case domain.BlockHeader:
		return s.Header
	case domain.BlockPayload:
		return s.Payload
	case domain.BlockSignature:
		return s.Signature
	default:
		return nil
	}
}

// FocusRoute makes the tab or decoder block leading to block current
func (s *AppState) FocusRoute(block domain.ActiveBlock) bool {
	for i, tab := range s.Tabs.Items() {
		if tab.Route.Block == block && tab.Route.ID != domain.RouteDecoder {
			s.Tabs.SetIndex(i)
			return true
		}
	}
	for i, tab := range s.Blocks.Items() {
		if tab.Route.Block == block {
			s.Tabs.SetIndex(0)
			s.Blocks.SetIndex(i)
			return true
		}
	}
	return false
}

// SetHistory rebuilds the history list, newest entry selected
func (s *AppState) SetHistory(entries []domain.HistoryEntry) {
	s.History = NewListWithItems(entries)
}

// SetDecoded replaces the token panes and installs the claims rows,
// keeping the selected claim row where it still exists
func (s *AppState) SetDecoded(header, payload, signature string, claims map[string]any, rows []domain.Claim) {
	s.Header = NewText(header)
	s.Payload = NewText(payload)
	s.Signature = NewText(signature)
	s.RawClaims = claims
	s.Claims.SetItems(rows)
	s.DecodeError = ""
}

// ClearDecoded empties the token panes after a failed decode
func (s *AppState) ClearDecoded(reason string) {
	s.Header = NewText("")
	s.Payload = NewText("")
	s.Signature = NewText("")
	s.RawClaims = nil
	s.Claims.SetItems(nil)
	s.Verification = domain.VerifySkipped
	s.DecodeError = reason
}
