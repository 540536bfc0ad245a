package teller

import (
	"strings"

	"github.com/shopspring/decimal"

	"universalis/internal/money"
	"universalis/internal/session"
	"universalis/internal/tax"
)

// fmtAmount is the teller's conversational echo of a recorded amount.
// Report figures stay unformatted; this is prompt text only.
func fmtAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func (t *Teller) handleAwaitingChoice(s *session.Session, content string, choice money.Choice) Action {
	low := strings.ToLower(content)
	switch {
	case choice == money.ChoiceCompany || strings.Contains(low, "company"):
		s.State = session.StateCompanyMenu
		return Prompt{Text: promptCompanyMenu}
	case choice == money.ChoiceLoan || strings.Contains(low, "loan"):
		s.State = session.StateLoanCollecting
		s.LoanStep = session.LoanAskName
		return Prompt{Text: promptLoanName}
	}
	return Prompt{Text: promptChoiceRetry}
}

func (t *Teller) handleCompanyMenu(s *session.Session, choice money.Choice) Action {
	switch choice {
	case money.ChoiceTax:
		s.State = session.StateTaxCollecting
		s.TaxStep = session.TaxAskCompany
		return Prompt{Text: promptTaxCompany}
	case money.ChoiceTransfer:
		s.State = session.StateTransferCollecting
		s.TransferStep = session.TransferAskSource
		return Prompt{Text: promptTransferSource}
	}
	return Prompt{Text: promptCompanyMenuRetry}
}

func (t *Teller) handleTaxCollecting(s *session.Session, content string) Action {
	switch s.TaxStep {
	case session.TaxAskCompany:
		s.Tax.Company = content
		s.TaxStep = session.TaxAskPlayer
		return Prompt{Text: promptTaxPlayer(s.Tax.Company)}

	case session.TaxAskPlayer:
		s.Tax.Player = content
		s.TaxStep = session.TaxAskIncome
		return Prompt{Text: promptTaxIncome}

	case session.TaxAskIncome:
		amt, ok := money.ParseAmount(content)
		if !ok {
			return Prompt{Text: promptBadAmount}
		}
		s.Tax.Income = amt
		s.TaxStep = session.TaxAskExpenses
		return Prompt{Text: promptTaxExpenses(fmtAmount(amt))}

	case session.TaxAskExpenses:
		amt, ok := money.ParseAmount(content)
		if !ok {
			return Prompt{Text: promptBadAmount}
		}
		s.Tax.Expenses = amt
		s.TaxStep = session.TaxAskPeriod
		return Prompt{Text: promptTaxPeriod(fmtAmount(amt))}

	case session.TaxAskPeriod:
		s.Tax.Period = content
		s.TaxStep = session.TaxAskModifiers
		return Prompt{Text: promptTaxModifiers}

	case session.TaxAskModifiers:
		s.Tax.Modifiers = content
		s.TaxStep = session.TaxReady
		return Prompt{Text: promptTaxSummary(
			s.Tax.Company, s.Tax.Player,
			fmtAmount(s.Tax.Income), fmtAmount(s.Tax.Expenses),
			s.Tax.Period, s.Tax.Modifiers)}

	case session.TaxReady:
		// Any input finalizes once the summary has been shown. The guided
		// flow reports business tax only; the salary stage belongs to the
		// calculator.
		report := tax.ComputeBusinessReport(s.Tax.Income, s.Tax.Expenses, t.rates.Rates(), false)
		s.State = session.StateFinished
		return ReportReady{Filing: Filing{
			Company:   s.Tax.Company,
			Player:    s.Tax.Player,
			Period:    s.Tax.Period,
			Modifiers: s.Tax.Modifiers,
			Report:    report,
		}}
	}
	return Prompt{Text: promptLost}
}

func (t *Teller) handleTransferCollecting(s *session.Session, content string) Action {
	switch s.TransferStep {
	case session.TransferAskSource:
		s.Transfer.Source = content
		s.TransferStep = session.TransferAskDest
		return Prompt{Text: promptTransferDest(s.Transfer.Source)}

	case session.TransferAskDest:
		s.Transfer.Destination = content
		s.TransferStep = session.TransferAskAmount
		return Prompt{Text: promptTransferAmount(s.Transfer.Destination)}

	case session.TransferAskAmount:
		amt, ok := money.ParseAmount(content)
		if !ok {
			return Prompt{Text: promptBadAmount}
		}
		s.Transfer.Amount = amt
		s.TransferStep = session.TransferAskReason
		return Prompt{Text: promptTransferReason(fmtAmount(amt))}

	case session.TransferAskReason:
		s.Transfer.Reason = content
		s.TransferStep = session.TransferReady
		return Prompt{Text: promptTransferReady}

	case session.TransferReady:
		s.State = session.StateFinished
		return TransferReady{Record: TransferRecord{
			Source:      s.Transfer.Source,
			Destination: s.Transfer.Destination,
			Amount:      s.Transfer.Amount,
			Reason:      s.Transfer.Reason,
		}}
	}
	return Prompt{Text: promptLost}
}

func (t *Teller) handleLoanCollecting(s *session.Session, actorID, content string) Action {
	switch s.LoanStep {
	case session.LoanAskName:
		s.Loan.Player = content
		s.LoanStep = session.LoanAskAmount
		return Prompt{Text: promptLoanAmount}

	case session.LoanAskAmount:
		amt, ok := money.ParseAmount(content)
		if !ok {
			return Prompt{Text: promptBadAmount}
		}
		s.Loan.Amount = amt
		s.LoanStep = session.LoanAskPurpose
		return Prompt{Text: promptLoanPurpose(fmtAmount(amt))}

	case session.LoanAskPurpose:
		s.Loan.Purpose = content
		s.LoanStep = session.LoanAskCollateral
		return Prompt{Text: promptLoanCollateral}

	case session.LoanAskCollateral:
		// Loans finalize on the last answer: no ready gate, the manager
		// notice goes out immediately.
		s.Loan.Collateral = content
		s.State = session.StateFinished
		return LoanReady{Notice: LoanNotice{
			Player:      s.Loan.Player,
			Amount:      s.Loan.Amount,
			Purpose:     s.Loan.Purpose,
			Collateral:  s.Loan.Collateral,
			RequestedBy: actorID,
		}}
	}
	return Prompt{Text: promptLost}
}
