// Package teller implements Kirztin, the guided conversation state
// machine of the Universalis Bank. It routes free-text turns through the
// fixed flow graph, calling the parsers and the tax engine, and returns a
// plain Action for the transport layer to deliver. It never performs I/O
// itself: prompts, reports, and notices are rendered by collaborators.
package teller

import (
	"github.com/shopspring/decimal"

	"universalis/internal/tax"
)

// Action is the teller's decision for one inbound turn. Exactly one of the
// concrete types below is returned; the transport renders it.
type Action interface {
	isAction()
}

// Prompt asks the conversation a question or re-prompts after bad input.
type Prompt struct {
	Text string
}

// ReportReady carries a finished tax assessment. The session is gone by
// the time the caller sees this.
type ReportReady struct {
	Filing Filing
}

// TransferReady carries a completed transfer request. No tax computation
// is involved.
type TransferReady struct {
	Record TransferRecord
}

// LoanReady carries a finalized loan request addressed to the bank-manager
// notification collaborator.
type LoanReady struct {
	Notice LoanNotice
}

// Refused is returned when an actor who neither owns the session nor holds
// override authority tries to advance it. Session state is untouched.
type Refused struct {
	Text string
}

// NoSession means the conversation has no live session (unknown id or idle
// expiry). The transport decides whether to begin a new one.
type NoSession struct{}

func (Prompt) isAction()        {}
func (ReportReady) isAction()   {}
func (TransferReady) isAction() {}
func (LoanReady) isAction()     {}
func (Refused) isAction()       {}
func (NoSession) isAction()     {}

// Filing is a tax assessment with the collected client details.
type Filing struct {
	Company   string
	Player    string
	Period    string
	Modifiers string
	Report    tax.BusinessReport
}

// TransferRecord is a completed company transfer.
type TransferRecord struct {
	Source      string
	Destination string
	Amount      decimal.Decimal
	Reason      string
}

// LoanNotice is a loan request awaiting a bank manager.
type LoanNotice struct {
	Player      string
	Amount      decimal.Decimal
	Purpose     string
	Collateral  string
	RequestedBy string // actor identity that completed the request
}
