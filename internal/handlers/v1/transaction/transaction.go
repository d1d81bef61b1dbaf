package transaction

// Transaction is the API response model for a ledger entry.
type Transaction struct {
	AccountNumber int64  `json:"accountNumber" doc:"Account the entry belongs to"`
	Type          string `json:"type" enum:"Create,Deposit,Withdraw,Remove" doc:"Entry type"`
	Amount        string `json:"amount" doc:"Amount moved, two decimals"`
	BalanceAfter  string `json:"balanceAfter" doc:"Account balance after the operation, two decimals"`
	Timestamp     string `json:"timestamp" doc:"UTC time the entry was written, millisecond precision"`
}
