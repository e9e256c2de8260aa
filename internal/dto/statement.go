package dto

// ImportStatementResponse summarizes a completed statement import
type ImportStatementResponse struct {
	Source       string                `json:"source"`
	Imported     int                   `json:"imported"`
	Skipped      int                   `json:"skipped"`
	Transactions []TransactionResponse `json:"transactions"`
}

// PreviewRowResponse is one normalized statement row, not yet persisted
type PreviewRowResponse struct {
	Date                  int64   `json:"date"`
	Amount                float64 `json:"amount"`
	Description           string  `json:"description"`
	Counterparty          string  `json:"counterparty"`
	ImportedTransactionID string  `json:"importedTransactionId"`
	AccountName           string  `json:"accountName,omitempty"`
}

// PreviewStatementResponse lists the rows a statement would import
type PreviewStatementResponse struct {
	Source string               `json:"source"`
	Rows   []PreviewRowResponse `json:"rows"`
}
