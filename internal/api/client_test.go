package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartexpense/expense-cli/internal/ingesterror"
	"smartexpense/expense-cli/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestFetchCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/category/all", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"categories":[{"name":"Food"},{"name":"Travel"},{"name":"Rent"}]}`))
	})

	cat, err := client.FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	id, ok := cat.Resolve("travel")
	assert.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestFetchCategoriesServerFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"database down"}`))
	})

	_, err := client.FetchCategories(context.Background())
	require.Error(t, err)

	var apiErr *ingesterror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), "database down")
}

func TestAddExpensesWireFormat(t *testing.T) {
	var captured struct {
		UserID   int `json:"user_id"`
		Expenses []struct {
			CateID      int             `json:"cate_id"`
			Category    string          `json:"category"`
			Amount      json.RawMessage `json:"amount"`
			ExpenseDate string          `json:"expense_date"`
		} `json:"expenses"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/expense/add_bulk", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	expenses := []models.NormalizedExpense{
		{
			CategoryID:   1,
			CategoryName: "food",
			Amount:       decimal.NewFromInt(250),
			Date:         time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			CategoryID:   3,
			CategoryName: "rent",
			Amount:       decimal.RequireFromString("1200.50"),
			Date:         time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	err := client.AddExpenses(context.Background(), 42, expenses)
	require.NoError(t, err)

	assert.Equal(t, 42, captured.UserID)
	require.Len(t, captured.Expenses, 2)

	first := captured.Expenses[0]
	assert.Equal(t, 1, first.CateID)
	assert.Equal(t, "food", first.Category)
	// Amount must be a bare JSON number, not a quoted string.
	assert.Equal(t, "250", string(first.Amount))
	assert.Equal(t, "2025-11-05", first.ExpenseDate)

	assert.Equal(t, "1200.5", string(captured.Expenses[1].Amount))
	assert.Equal(t, "2025-11-30", captured.Expenses[1].ExpenseDate)
}

func TestAddExpensesEmptyBatch(t *testing.T) {
	client := NewClient("http://unused", time.Second)
	err := client.AddExpenses(context.Background(), 42, nil)
	assert.Error(t, err)
}

func TestAddExpensesServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"All fields required for each expense"}`))
	})

	err := client.AddExpenses(context.Background(), 42, []models.NormalizedExpense{{
		CategoryID:   1,
		CategoryName: "food",
		Amount:       decimal.NewFromInt(10),
		Date:         time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "All fields required for each expense")
}

func TestAddExpensesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := NewClient(server.URL, time.Second)
	err := client.AddExpenses(context.Background(), 42, []models.NormalizedExpense{{
		CategoryID:   1,
		CategoryName: "food",
		Amount:       decimal.NewFromInt(10),
		Date:         time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
	}})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"message":"Login successful","user":{"id":42,"email":"a@b.c","username":"alex"}}`))
	})

	user, err := client.Login(context.Background(), "a@b.c", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, 42, user.ID)
	assert.Equal(t, "alex", user.Username)

	_, err = client.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestSignup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signup", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["email"] == "taken@b.c" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"User with this email already exists"}`))
			return
		}
		assert.Equal(t, "alex", req["username"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"User created successfully","user":{"id":43,"email":"a@b.c","username":"alex"}}`))
	})

	user, err := client.Signup(context.Background(), "a@b.c", "alex", "hunter2", "", "")
	require.NoError(t, err)
	assert.Equal(t, 43, user.ID)

	_, err = client.Signup(context.Background(), "taken@b.c", "alex", "hunter2", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestPreviewAndDeleteExpenses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expense/delete", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("user_id"))
		assert.Equal(t, "3", r.URL.Query().Get("month"))
		assert.Equal(t, "2025", r.URL.Query().Get("year"))

		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"success":true,"preview":true,"expenses":[
				{"id":1,"cate_id":2,"category_name":"food","amount":250,"expense_date":"2025-03-05"}
			]}`))
			return
		}
		require.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(`{"success":true,"deleted":1}`))
	})

	expenses, err := client.PreviewDeleteExpenses(context.Background(), 42, 3, 2025)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "food", expenses[0].CategoryName)

	deleted, err := client.DeleteExpenses(context.Background(), 42, 3, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestDeleteExpensesWholeYear(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expense/yearly", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Empty(t, r.URL.Query().Get("month"))
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		_, _ = w.Write([]byte(`{"success":true,"deleted":14}`))
	})

	deleted, err := client.DeleteExpenses(context.Background(), 42, 0, 2025)
	require.NoError(t, err)
	assert.Equal(t, 14, deleted)
}

func TestPreviewAndDeleteEarnings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/earning/delete", r.URL.Path)
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"success":true,"preview":true,"earnings":[
				{"id":7,"user_id":42,"amount":50000,"earning_date":"2025-03-01"}
			]}`))
			return
		}
		require.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(`{"success":true,"deleted":1}`))
	})

	earnings, err := client.PreviewDeleteEarnings(context.Background(), 42, 3, 2025)
	require.NoError(t, err)
	require.Len(t, earnings, 1)
	assert.True(t, decimal.NewFromInt(50000).Equal(earnings[0].Amount))

	deleted, err := client.DeleteEarnings(context.Background(), 42, 3, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestAddEarningWithoutEarningInResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/earning/add", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"earning added"}`))
	})

	earning, err := client.AddEarning(context.Background(), 42, "50000", "2025-11-01")
	require.Error(t, err)
	assert.Nil(t, earning)
}

func TestAddEarning(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/earning/add", r.URL.Path)
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(42), req["user_id"])
		_, _ = w.Write([]byte(`{"message":"ok","earning":{"id":7,"user_id":42,"amount":50000,"earning_date":"2025-11-01"}}`))
	})

	earning, err := client.AddEarning(context.Background(), 42, "50000", "2025-11-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-01", earning.EarningDate)
}

func TestProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/profile/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"user":{"id":42,"email":"a@b.c","username":"alex","phone":"555-0100"}}`))
	})

	user, err := client.Profile(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "alex", user.Username)
	assert.Equal(t, "555-0100", user.Phone)
}

func TestLatestEarning(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/earning/latest/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"earning":{"id":7,"user_id":42,"amount":50000,"earning_date":"2025-11-01"}}`))
	})

	earning, err := client.LatestEarning(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50000).Equal(earning.Amount))
	assert.Equal(t, "2025-11-01", earning.EarningDate)
}

func TestSummary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/summary/42", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		_, _ = w.Write([]byte(`{"success":true,"month":11,"year":2025,"summary":[
			{"year":2025,"month":10,"total_earning":50000,"total_expenses":32000,"cumulative_earning":50000,"cumulative_expenses":32000},
			{"year":2025,"month":11,"total_earning":50000,"total_expenses":12000,"cumulative_earning":100000,"cumulative_expenses":44000}
		]}`))
	})

	summary, err := client.Summary(context.Background(), 42, 2025)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, float64(100000), summary[1].CumulativeEarning)
}

func TestPredictedExpensesAndRecommendations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard/predicted-expense/42":
			_, _ = w.Write([]byte(`{"success":true,"year":2025,"expenses":{"10":32000,"11":12000},"predicted_expenses":[100,200,300]}`))
		case "/dashboard/recommented-categories/42":
			_, _ = w.Write([]byte(`{"success":true,"year":2025,"recommended_categories":["food","rent"]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	pred, err := client.PredictedExpenses(context.Background(), 42, 2025)
	require.NoError(t, err)
	assert.Equal(t, float64(32000), pred.Expenses["10"])
	assert.Len(t, pred.PredictedExpenses, 3)

	recs, err := client.RecommendedCategories(context.Background(), 42, 2025)
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "rent"}, recs)
}

func TestExpensesByMonth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expense/by_month", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "42", q.Get("user_id"))
		assert.Equal(t, "11", q.Get("month"))
		assert.Equal(t, "2025", q.Get("year"))
		_, _ = w.Write([]byte(`{"success":true,"expenses":[{"id":1,"cate_id":3,"category_name":"rent","amount":1200,"expense_date":"2025-11-01"}]}`))
	})

	rows, err := client.ExpensesByMonth(context.Background(), 42, 11, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "rent", rows[0].CategoryName)
}
