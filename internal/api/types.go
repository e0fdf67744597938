package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// User is the account record returned by the auth endpoints. Passwords never
// appear on the wire.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Phone    string `json:"phone,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// ExpensePayload is one expense in the add_bulk request body. Amounts are
// emitted as JSON numbers and dates only ever leave in YYYY-MM-DD form.
type ExpensePayload struct {
	CateID      int         `json:"cate_id"`
	Category    string      `json:"category"`
	Amount      json.Number `json:"amount"`
	ExpenseDate string      `json:"expense_date"`
}

// Earning is a monthly earning row as returned by the earning endpoints.
type Earning struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	EarningDate string          `json:"earning_date"`
}

// ExpenseRecord is a stored expense row as returned by /expense/by_month.
type ExpenseRecord struct {
	ID           int             `json:"id"`
	CateID       int             `json:"cate_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseDate  string          `json:"expense_date"`
}

// MonthlySummary is one row of the dashboard summary: per-month totals plus
// running cumulatives, all computed server-side.
type MonthlySummary struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	TotalEarning       float64 `json:"total_earning"`
	TotalExpenses      float64 `json:"total_expenses"`
	CumulativeEarning  float64 `json:"cumulative_earning"`
	CumulativeExpenses float64 `json:"cumulative_expenses"`
}

// Prediction carries the server's per-month expense predictions for a year.
// Expenses keys are month numbers serialized as strings.
type Prediction struct {
	Year              int                `json:"year"`
	Expenses          map[string]float64 `json:"expenses"`
	PredictedExpenses []float64          `json:"predicted_expenses"`
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type categoriesResponse struct {
	envelope
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
}

type addBulkRequest struct {
	UserID   int              `json:"user_id"`
	Expenses []ExpensePayload `json:"expenses"`
}

type addBulkResponse struct {
	envelope
	Inserted []json.RawMessage `json:"inserted,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	User    *User  `json:"user,omitempty"`
}

type profileResponse struct {
	envelope
	User *User `json:"user,omitempty"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

type signupResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	User    *User  `json:"user,omitempty"`
}

type deleteExpensesPreviewResponse struct {
	envelope
	Preview  bool            `json:"preview"`
	Message  string          `json:"message,omitempty"`
	Expenses []ExpenseRecord `json:"expenses"`
}

type deleteEarningsPreviewResponse struct {
	envelope
	Preview  bool      `json:"preview"`
	Message  string    `json:"message,omitempty"`
	Earnings []Earning `json:"earnings"`
}

type deleteResponse struct {
	envelope
	Deleted int    `json:"deleted"`
	Message string `json:"message,omitempty"`
}

type addEarningRequest struct {
	UserID      int         `json:"user_id"`
	Amount      json.Number `json:"amount"`
	EarningDate string      `json:"earning_date"`
}

type addEarningResponse struct {
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Earning *Earning `json:"earning,omitempty"`
}

type latestEarningResponse struct {
	envelope
	Earning *Earning `json:"earning,omitempty"`
}

type summaryResponse struct {
	envelope
	Month   int              `json:"month"`
	Year    int              `json:"year"`
	Summary []MonthlySummary `json:"summary"`
}

type predictionResponse struct {
	envelope
	Year              int                `json:"year"`
	Expenses          map[string]float64 `json:"expenses"`
	PredictedExpenses []float64          `json:"predicted_expenses"`
}

type recommendResponse struct {
	envelope
	Year                  int      `json:"year"`
	RecommendedCategories []string `json:"recommended_categories"`
}

type byMonthResponse struct {
	envelope
	Expenses []ExpenseRecord `json:"expenses"`
}
