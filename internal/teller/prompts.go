package teller

import "fmt"

// TellerName is the persona the bank presents at the window.
const TellerName = "Kirztin"

const greeting = `Welcome to Universalis Bank.
I am ` + TellerName + `, your virtual bank teller. How may I assist you today?

Please reply with one of the choices below:
A) Company Services - tax calculation or company transfer
B) Loan Request - request a loan (a Bank Manager will be notified)

You can reply with 'A' or 'B', or write the words (e.g. 'company' or 'loan').`

const (
	promptChoiceRetry = "I'm sorry, I didn't quite catch that. Please reply with 'A' for Company Services or 'B' for Loan Request."

	promptCompanyMenu      = "Excellent. Company Services it is. Would you like 'tax' (calculate taxes) or 'transfer' (company transfer)?"
	promptCompanyMenuRetry = "Please specify 'tax' or 'transfer' so I know which service to perform."

	promptTaxCompany = "Very well - tax calculation. What is the company name?"
	promptTaxIncome  = "Great. What is the gross income for the period? (e.g. 12000 or 12k)"

	promptTransferSource = "Understood - company transfer. Who is the source of funds? (e.g. a company or player name)"

	promptLoanName   = "A loan request - understood. To begin, what's your character name?"
	promptLoanAmount = "Thanks. How much would you like to request as a loan?"

	promptBadAmount = "I couldn't parse that amount. Please enter a number like 12000 or 12k (you may use 'k' or 'm')."

	promptLost = "I'm not sure how to handle that in the current step. Please follow the prompts, or type 'finish' to end and see the report."

	refusalText = TellerName + " says: please let the original requester interact with this session, or ask an administrator for help."
)

func promptTaxPlayer(company string) string {
	return fmt.Sprintf("Recorded company name as %s. What is the character/player name?", company)
}

func promptTaxExpenses(income string) string {
	return fmt.Sprintf("Income recorded: %s. What are the total expenses? (enter 0 if none)", income)
}

func promptTaxPeriod(expenses string) string {
	return fmt.Sprintf("Expenses recorded: %s. What is the fiscal period? (e.g. 'this month', 'Q3 1425')", expenses)
}

const promptTaxModifiers = "Any modifiers or special notes? (e.g. 'charity deduction 10%' or reply 'no')"

func promptTaxSummary(company, player, income, expenses, period, modifiers string) string {
	return fmt.Sprintf(`All set. Summary so far:
- Company: %s
- Player: %s
- Income: %s
- Expenses: %s
- Period: %s
- Modifiers: %s

Type 'finish' to get the full tax report.`, company, player, income, expenses, period, modifiers)
}

func promptTransferDest(source string) string {
	return fmt.Sprintf("Source recorded: %s. Who is the destination?", source)
}

func promptTransferAmount(dest string) string {
	return fmt.Sprintf("Destination recorded: %s. How much would you like to transfer?", dest)
}

func promptTransferReason(amount string) string {
	return fmt.Sprintf("Amount recorded: %s. Any reason or notes for the transfer? (or 'none')", amount)
}

const promptTransferReady = "Transfer details recorded. Type 'finish' to process and see the transfer report."

func promptLoanPurpose(amount string) string {
	return fmt.Sprintf("Amount noted: %s. What's the purpose of the loan?", amount)
}

const promptLoanCollateral = "Any collateral to list? If none, reply 'none'."
