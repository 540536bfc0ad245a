// Package session owns the registry of live teller conversations: one
// session per conversation, idle-expired after thirty minutes, swept
// periodically, and serialized per conversation id so concurrent turns on
// the same conversation never interleave.
package session

import (
	"time"

	"github.com/shopspring/decimal"
)

// State is the primary position of a conversation in the guided flow.
type State int

const (
	StateAwaitingChoice State = iota
	StateCompanyMenu
	StateTaxCollecting
	StateTransferCollecting
	StateLoanCollecting
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateCompanyMenu:
		return "company_menu"
	case StateTaxCollecting:
		return "tax_collecting"
	case StateTransferCollecting:
		return "transfer_collecting"
	case StateLoanCollecting:
		return "loan_collecting"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// TaxStep is the question currently awaiting an answer in the tax flow.
type TaxStep int

const (
	TaxAskCompany TaxStep = iota
	TaxAskPlayer
	TaxAskIncome
	TaxAskExpenses
	TaxAskPeriod
	TaxAskModifiers
	TaxReady
)

// TransferStep is the question currently awaiting an answer in the
// transfer flow.
type TransferStep int

const (
	TransferAskSource TransferStep = iota
	TransferAskDest
	TransferAskAmount
	TransferAskReason
	TransferReady
)

// LoanStep is the question currently awaiting an answer in the loan flow.
// There is no ready gate: answering the collateral question finalizes.
type LoanStep int

const (
	LoanAskName LoanStep = iota
	LoanAskAmount
	LoanAskPurpose
	LoanAskCollateral
)

// TaxData accumulates the answers of the tax-collection flow.
type TaxData struct {
	Company   string
	Player    string
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	Period    string
	Modifiers string
}

// TransferData accumulates the answers of the transfer flow.
type TransferData struct {
	Source      string
	Destination string
	Amount      decimal.Decimal
	Reason      string
}

// LoanData accumulates the answers of the loan flow.
type LoanData struct {
	Player     string
	Amount     decimal.Decimal
	Purpose    string
	Collateral string
}

// Session is the state of one in-progress guided conversation. It is
// exclusively owned by the Store; callers borrow it for the duration of a
// single turn via Store.Update and must not retain the pointer.
type Session struct {
	ConversationID string
	Owner          string
	CreatedAt      time.Time
	LastActivity   time.Time

	State        State
	TaxStep      TaxStep
	TransferStep TransferStep
	LoanStep     LoanStep

	Tax      TaxData
	Transfer TransferData
	Loan     LoanData
}

// Touch refreshes the idle clock.
func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
}

// ExpiredAt reports whether the session has been idle longer than timeout.
func (s *Session) ExpiredAt(now time.Time, timeout time.Duration) bool {
	return now.After(s.LastActivity.Add(timeout))
}
