package dto

import (
	"time"

	"vereinsbudget/internal/cashflow"
)

// CashflowQuery selects the visible chart range
type CashflowQuery struct {
	StartDate time.Time `query:"startDate"`
	EndDate   time.Time `query:"endDate"`
}

// CashflowResponse is the chart payload
type CashflowResponse struct {
	Points []cashflow.DataPoint `json:"points"`
	Axis   cashflow.AxisConfig  `json:"axis"`
}
