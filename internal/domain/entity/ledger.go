package entity

// LedgerCurrency is the currency every seeded account is held in.
const LedgerCurrency = "KES"

// LedgerAccount is one entry of the chart of accounts.
type LedgerAccount struct {
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
	Label    string  `json:"label"`
}

// LedgerMeta records who seeded the ledger. The creation time is assigned by the store.
type LedgerMeta struct {
	CreatedBy string `json:"createdBy"`
}

// FinancialLedgerSeed is written once per wholesaler at wholesalers/{id}/financials.
type FinancialLedgerSeed struct {
	OwnerID         string                   `json:"-"`
	ChartOfAccounts map[string]LedgerAccount `json:"chartOfAccounts"`
	Meta            LedgerMeta               `json:"meta"`
}

// DefaultChartOfAccounts returns a fresh copy of the zero-balance chart of accounts.
func DefaultChartOfAccounts() map[string]LedgerAccount {
	return map[string]LedgerAccount{
		"wholesaler_cash":     {Balance: 0, Currency: LedgerCurrency, Label: "Wholesaler Cash"},
		"shop_receivable":     {Balance: 0, Currency: LedgerCurrency, Label: "Shop Receivable"},
		"customer_receivable": {Balance: 0, Currency: LedgerCurrency, Label: "Customer Receivable"},
		"inventory":           {Balance: 0, Currency: LedgerCurrency, Label: "Inventory"},
		"supplier_payable":    {Balance: 0, Currency: LedgerCurrency, Label: "Supplier Payable"},
	}
}

// NewFinancialLedgerSeed builds the seed for a wholesaler.
func NewFinancialLedgerSeed(ownerID string) *FinancialLedgerSeed {
	return &FinancialLedgerSeed{
		OwnerID:         ownerID,
		ChartOfAccounts: DefaultChartOfAccounts(),
		Meta:            LedgerMeta{CreatedBy: ownerID},
	}
}
