// Package api is the HTTP client for the SmartExpense REST API. All
// aggregation, prediction and recommendation math lives server-side; this
// client only calls documented endpoints and decodes results.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"smartexpense/expense-cli/internal/catalog"
	"smartexpense/expense-cli/internal/ingesterror"
	"smartexpense/expense-cli/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Client talks to one SmartExpense server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. The timeout bounds every
// request, bulk submission included.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchCategories retrieves the category catalog. The catalog is fetched once
// per run; callers treat it as immutable afterwards.
func (c *Client) FetchCategories(ctx context.Context) (*catalog.Catalog, error) {
	var resp categoriesResponse
	if err := c.get(ctx, "/category/all", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	if !resp.Success {
		return nil, &ingesterror.APIError{Endpoint: "/category/all", Message: resp.Error}
	}

	names := make([]string, len(resp.Categories))
	for i, cat := range resp.Categories {
		names[i] = cat.Name
	}

	log.WithField("count", len(names)).Debug("Fetched category catalog")
	return catalog.New(names), nil
}

// AddExpenses submits the whole accumulated batch in one request. Every date
// is reformatted to YYYY-MM-DD here, immediately before transmission.
func (c *Client) AddExpenses(ctx context.Context, userID int, expenses []models.NormalizedExpense) error {
	if len(expenses) == 0 {
		return fmt.Errorf("no valid expense data to submit")
	}

	payload := addBulkRequest{
		UserID:   userID,
		Expenses: make([]ExpensePayload, len(expenses)),
	}
	for i, exp := range expenses {
		payload.Expenses[i] = ExpensePayload{
			CateID:      exp.CategoryID,
			Category:    exp.CategoryName,
			Amount:      json.Number(exp.Amount.String()),
			ExpenseDate: exp.SubmitDate(),
		}
	}

	log.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   len(expenses),
	}).Info("Submitting expense batch")

	var resp addBulkResponse
	if err := c.post(ctx, "/expense/add_bulk", payload, &resp); err != nil {
		return fmt.Errorf("failed to submit expenses: %w", err)
	}
	if !resp.Success {
		return &ingesterror.APIError{Endpoint: "/expense/add_bulk", Message: resp.Error}
	}

	return nil
}

// Login authenticates and returns the account record.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp loginResponse
	err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		msg := resp.Error
		if msg == "" {
			msg = "invalid credentials"
		}
		return nil, &ingesterror.APIError{Endpoint: "/auth/login", Message: msg}
	}
	return resp.User, nil
}

// Signup creates an account. Phone and bio are optional; the server rejects a
// duplicate email.
func (c *Client) Signup(ctx context.Context, email, username, password, phone, bio string) (*User, error) {
	req := signupRequest{
		Email:    email,
		Username: username,
		Password: password,
		Phone:    phone,
		Bio:      bio,
	}

	var resp signupResponse
	if err := c.post(ctx, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		msg := resp.Error
		if msg == "" {
			msg = "signup failed"
		}
		return nil, &ingesterror.APIError{Endpoint: "/auth/signup", Message: msg}
	}
	return resp.User, nil
}

// Profile fetches the account record for a user id.
func (c *Client) Profile(ctx context.Context, userID int) (*User, error) {
	var resp profileResponse
	path := "/auth/profile/" + strconv.Itoa(userID)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.User == nil {
		return nil, &ingesterror.APIError{Endpoint: path, Message: resp.Error}
	}
	return resp.User, nil
}

// AddEarning records one monthly earning. The server upserts by month.
func (c *Client) AddEarning(ctx context.Context, userID int, amount string, earningDate string) (*Earning, error) {
	req := addEarningRequest{
		UserID:      userID,
		Amount:      json.Number(amount),
		EarningDate: earningDate,
	}

	var resp addEarningResponse
	if err := c.post(ctx, "/earning/add", req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" || resp.Earning == nil {
		return nil, &ingesterror.APIError{Endpoint: "/earning/add", Message: resp.Error}
	}
	return resp.Earning, nil
}

// LatestEarning returns the most recent earning row for a user.
func (c *Client) LatestEarning(ctx context.Context, userID int) (*Earning, error) {
	var resp latestEarningResponse
	path := "/earning/latest/" + strconv.Itoa(userID)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Earning == nil {
		return nil, &ingesterror.APIError{Endpoint: path, Message: resp.Error}
	}
	return resp.Earning, nil
}

// Summary returns the server-computed monthly summary for a year.
func (c *Client) Summary(ctx context.Context, userID, year int) ([]MonthlySummary, error) {
	var resp summaryResponse
	path := "/dashboard/summary/" + strconv.Itoa(userID)
	if err := c.get(ctx, path, yearQuery(year), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ingesterror.APIError{Endpoint: path, Message: resp.Error}
	}
	return resp.Summary, nil
}

// PredictedExpenses returns the server's per-month expense predictions.
func (c *Client) PredictedExpenses(ctx context.Context, userID, year int) (*Prediction, error) {
	var resp predictionResponse
	path := "/dashboard/predicted-expense/" + strconv.Itoa(userID)
	if err := c.get(ctx, path, yearQuery(year), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ingesterror.APIError{Endpoint: path, Message: resp.Error}
	}
	return &Prediction{
		Year:              resp.Year,
		Expenses:          resp.Expenses,
		PredictedExpenses: resp.PredictedExpenses,
	}, nil
}

// RecommendedCategories returns the server's recommended category names.
// The endpoint path preserves the backend's spelling.
func (c *Client) RecommendedCategories(ctx context.Context, userID, year int) ([]string, error) {
	var resp recommendResponse
	path := "/dashboard/recommented-categories/" + strconv.Itoa(userID)
	if err := c.get(ctx, path, yearQuery(year), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ingesterror.APIError{Endpoint: path, Message: resp.Error}
	}
	return resp.RecommendedCategories, nil
}

// ExpensesByMonth lists stored expenses for one month.
func (c *Client) ExpensesByMonth(ctx context.Context, userID, month, year int) ([]ExpenseRecord, error) {
	query := url.Values{}
	query.Set("user_id", strconv.Itoa(userID))
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))

	var resp byMonthResponse
	if err := c.get(ctx, "/expense/by_month", query, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ingesterror.APIError{Endpoint: "/expense/by_month", Message: resp.Error}
	}
	return resp.Expenses, nil
}

// PreviewDeleteExpenses lists the stored expenses a deletion would remove.
// Month 0 targets the whole year.
func (c *Client) PreviewDeleteExpenses(ctx context.Context, userID, month, year int) ([]ExpenseRecord, error) {
	path := expenseDeletePath(month)
	var resp deleteExpensesPreviewResponse
	if err := c.get(ctx, path, deleteQuery(userID, month, year), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ingesterror.APIError{Endpoint: path, Message: resp.Error}
	}
	return resp.Expenses, nil
}

// DeleteExpenses removes every stored expense in the given month, or the whole
// year when month is 0, and returns the number of deleted rows.
func (c *Client) DeleteExpenses(ctx context.Context, userID, month, year int) (int, error) {
	path := expenseDeletePath(month)
	var resp deleteResponse
	if err := c.delete(ctx, path, deleteQuery(userID, month, year), &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, &ingesterror.APIError{Endpoint: path, Message: resp.Error}
	}
	return resp.Deleted, nil
}

// PreviewDeleteEarnings lists the earnings a deletion would remove. Month 0
// targets the whole year.
func (c *Client) PreviewDeleteEarnings(ctx context.Context, userID, month, year int) ([]Earning, error) {
	path := earningDeletePath(month)
	var resp deleteEarningsPreviewResponse
	if err := c.get(ctx, path, deleteQuery(userID, month, year), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ingesterror.APIError{Endpoint: path, Message: resp.Error}
	}
	return resp.Earnings, nil
}

// DeleteEarnings removes every earning in the given month, or the whole year
// when month is 0, and returns the number of deleted rows.
func (c *Client) DeleteEarnings(ctx context.Context, userID, month, year int) (int, error) {
	path := earningDeletePath(month)
	var resp deleteResponse
	if err := c.delete(ctx, path, deleteQuery(userID, month, year), &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, &ingesterror.APIError{Endpoint: path, Message: resp.Error}
	}
	return resp.Deleted, nil
}

// The monthly and yearly deletion surfaces are separate endpoints; both take
// the same query parameters and answer the same preview/delete shapes.
func expenseDeletePath(month int) string {
	if month == 0 {
		return "/expense/yearly"
	}
	return "/expense/delete"
}

func earningDeletePath(month int) string {
	if month == 0 {
		return "/earning/yearly"
	}
	return "/earning/delete"
}

func deleteQuery(userID, month, year int) url.Values {
	query := url.Values{}
	query.Set("user_id", strconv.Itoa(userID))
	if month != 0 {
		query.Set("month", strconv.Itoa(month))
	}
	query.Set("year", strconv.Itoa(year))
	return query
}

func yearQuery(year int) url.Values {
	if year == 0 {
		return nil
	}
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	return query
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": path,
	}).Debug("Calling SmartExpense API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	// Error statuses still carry a JSON envelope with the server's message;
	// decode it so the user sees the real reason instead of a status code.
	if err := json.Unmarshal(data, out); err != nil {
		if resp.StatusCode >= 400 {
			return &ingesterror.APIError{Endpoint: path, StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
