package domain

import "time"

// RouteID identifies a top level screen
type RouteID string

const (
	RouteDecoder RouteID = "decoder"
	RouteClaims  RouteID = "claims"
	RouteHistory RouteID = "history"
	RouteHelp    RouteID = "help"
)

// ActiveBlock identifies the on-screen block that receives input
type ActiveBlock string

const (
	BlockToken     ActiveBlock = "token"
	BlockHeader    ActiveBlock = "header"
	BlockPayload   ActiveBlock = "payload"
	BlockSignature ActiveBlock = "signature"
	BlockClaims    ActiveBlock = "claims"
	BlockHistory   ActiveBlock = "history"
	BlockHelp      ActiveBlock = "help"
)

// Route is the destination of a tab
type Route struct {
	ID    RouteID
	Block ActiveBlock
}

// Claim is one row of the claims table
type Claim struct {
	Name  string
	Value string // compact JSON
	Note  string // human readable time hint for registered time claims
}

// HistoryEntry records a token that was decoded during the session
type HistoryEntry struct {
	Raw       string
	Algorithm string
	Subject   string
	DecodedAt time.Time
}

// VerifyStatus describes the outcome of signature verification
type VerifyStatus int

const (
	VerifySkipped VerifyStatus = iota // no secret given
	VerifyValid
	VerifyInvalid
	VerifyUnsupported
)

func (s VerifyStatus) String() string {
	switch s {
	case VerifyValid:
		return "Signature Verified"
	case VerifyInvalid:
		return "Invalid Signature"
	case VerifyUnsupported:
		return "Unsupported Algorithm"
	default:
		return "Not Verified"
	}
}
