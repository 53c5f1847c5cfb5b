package account_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/pulabank/corebank/infra/repository/memory"
	"github.com/pulabank/corebank/pkg/config"
	accountsvc "github.com/pulabank/corebank/pkg/service/account"
	customersvc "github.com/pulabank/corebank/pkg/service/customer"
	"github.com/pulabank/corebank/webapi"
)

type fixture struct {
	t   *testing.T
	app *fiber.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uow := memory.NewStore().UnitOfWork()
	cfg := &config.App{Bank: config.Bank{DefaultBranch: "Gaborone Main"}}
	app := webapi.SetupApp(cfg, customersvc.New(uow, logger), accountsvc.New(uow, logger))
	return &fixture{t: t, app: app}
}

func (f *fixture) request(method, path, body string) *http.Response {
	f.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(f.t, err)
	return resp
}

func (f *fixture) decode(resp *http.Response) map[string]any {
	f.t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var body map[string]any
	require.NoError(f.t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// registerIndividual creates an individual customer and returns its ID.
func (f *fixture) registerIndividual(t *testing.T) string {
	t.Helper()
	resp := f.request("POST", "/customers", `{
		"type": "individual",
		"address": "Plot 123, Gaborone",
		"first_name": "Kabo",
		"last_name": "Modise"
	}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := f.decode(resp)["data"].(map[string]any)
	return data["id"].(string)
}

func (f *fixture) openAccount(t *testing.T, body string) *http.Response {
	t.Helper()
	return f.request("POST", "/accounts", body)
}

func TestOpenSavingsAccount(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	id := f.registerIndividual(t)

	resp := f.openAccount(t, `{
		"customer_id": "`+id+`",
		"variant": "savings",
		"account_number": "SAV-001",
		"initial_deposit": 750.00
	}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := f.decode(resp)["data"].(map[string]any)
	require.Equal(t, "SAV-001", data["number"])
	require.Equal(t, "Gaborone Main", data["branch"])
	require.InDelta(t, 750.00, data["balance"], 0.001)
}

func TestOpenInvestmentBelowMinimum(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	id := f.registerIndividual(t)

	resp := f.openAccount(t, `{
		"customer_id": "`+id+`",
		"variant": "investment",
		"account_number": "INV-001",
		"initial_deposit": 499.99
	}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := f.decode(resp)
	require.Contains(t, body["detail"], "opening balance")
}

func TestOpenChequeRequiresEmployment(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	id := f.registerIndividual(t)

	resp := f.openAccount(t, `{
		"customer_id": "`+id+`",
		"variant": "cheque",
		"account_number": "CHQ-001",
		"initial_deposit": 100.00
	}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Providing an employer in the same request satisfies the check.
	resp = f.openAccount(t, `{
		"customer_id": "`+id+`",
		"variant": "cheque",
		"account_number": "CHQ-001",
		"initial_deposit": 100.00,
		"employer": "Debswana"
	}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestOpenAccountValidation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "missing account number",
			body:       `{"customer_id":"6a5f1f6e-7b5b-4a53-9f5e-1c2d3e4f5a6b","variant":"savings","initial_deposit":100}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "unknown variant",
			body:       `{"customer_id":"6a5f1f6e-7b5b-4a53-9f5e-1c2d3e4f5a6b","variant":"offshore","account_number":"X-1","initial_deposit":100}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "negative deposit",
			body:       `{"customer_id":"6a5f1f6e-7b5b-4a53-9f5e-1c2d3e4f5a6b","variant":"savings","account_number":"X-1","initial_deposit":-5}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "unknown customer",
			body:       `{"customer_id":"6a5f1f6e-7b5b-4a53-9f5e-1c2d3e4f5a6b","variant":"savings","account_number":"X-1","initial_deposit":100}`,
			wantStatus: fiber.StatusNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			resp := f.openAccount(t, tc.body)
			defer resp.Body.Close() //nolint:errcheck
			require.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestDepositAndBalance(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	id := f.registerIndividual(t)
	f.openAccount(t, `{"customer_id":"`+id+`","variant":"savings","account_number":"SAV-001","initial_deposit":500.00}`)

	resp := f.request("POST", "/accounts/SAV-001/deposit", `{"amount": 250.50, "description": "Salary"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := f.decode(resp)["data"].(map[string]any)
	require.Equal(t, "Deposit", data["kind"])
	require.InDelta(t, 250.50, data["amount"], 0.001)
	require.InDelta(t, 750.50, data["balance"], 0.001)

	resp = f.request("GET", "/accounts/SAV-001/balance", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	balance := f.decode(resp)["data"].(map[string]any)
	require.InDelta(t, 750.50, balance["balance"], 0.001)
	require.Equal(t, "BWP", balance["currency"])
}

func TestWithdrawFromSavingsRejected(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	id := f.registerIndividual(t)
	f.openAccount(t, `{"customer_id":"`+id+`","variant":"savings","account_number":"SAV-001","initial_deposit":500.00}`)

	resp := f.request("POST", "/accounts/SAV-001/withdraw", `{"amount": 50.00}`)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	id := f.registerIndividual(t)
	f.openAccount(t, `{"customer_id":"`+id+`","variant":"investment","account_number":"INV-001","initial_deposit":600.00}`)

	resp := f.request("POST", "/accounts/INV-001/withdraw", `{"amount": 600.01}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	f.decode(resp)

	resp = f.request("POST", "/accounts/INV-001/withdraw", `{"amount": 100.00}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := f.decode(resp)["data"].(map[string]any)
	require.Equal(t, "Withdrawal", data["kind"])
	require.InDelta(t, -100.00, data["amount"], 0.001)
	require.InDelta(t, 500.00, data["balance"], 0.001)
}

func TestTransferBetweenAccounts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	id := f.registerIndividual(t)
	f.openAccount(t, `{"customer_id":"`+id+`","variant":"savings","account_number":"SAV-001","initial_deposit":500.00}`)
	f.openAccount(t, `{"customer_id":"`+id+`","variant":"investment","account_number":"INV-001","initial_deposit":500.00}`)

	resp := f.request("POST", "/transfer", `{"from":"SAV-001","to":"INV-001","amount":200.00}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := f.decode(resp)["data"].(map[string]any)
	debit := data["debit"].(map[string]any)
	credit := data["credit"].(map[string]any)
	require.InDelta(t, -200.00, debit["amount"], 0.001)
	require.InDelta(t, 300.00, debit["balance"], 0.001)
	require.InDelta(t, 200.00, credit["amount"], 0.001)
	require.InDelta(t, 700.00, credit["balance"], 0.001)

	resp = f.request("POST", "/transfer", `{"from":"SAV-001","to":"SAV-001","amount":10.00}`)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestApplyInterest(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	id := f.registerIndividual(t)
	f.openAccount(t, `{"customer_id":"`+id+`","variant":"savings","account_number":"SAV-001","initial_deposit":1000.00}`)

	resp := f.request("POST", "/accounts/SAV-001/interest", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := f.decode(resp)["data"].(map[string]any)
	require.Equal(t, "Interest", data["kind"])
	require.InDelta(t, 25.00, data["amount"], 0.001)
	require.InDelta(t, 1025.00, data["balance"], 0.001)
}

func TestTransactionHistoryFilter(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	id := f.registerIndividual(t)
	f.openAccount(t, `{"customer_id":"`+id+`","variant":"savings","account_number":"SAV-001","initial_deposit":500.00}`)
	f.request("POST", "/accounts/SAV-001/deposit", `{"amount": 100.00}`)

	resp := f.request("GET", "/accounts/SAV-001/transactions", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	all := f.decode(resp)["data"].([]any)
	require.Len(t, all, 2)

	resp = f.request("GET", "/accounts/SAV-001/transactions?kind=Deposit", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	deposits := f.decode(resp)["data"].([]any)
	require.Len(t, deposits, 2)

	resp = f.request("GET", "/accounts/SAV-001/transactions?kind=Withdrawal", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	withdrawals := f.decode(resp)["data"].([]any)
	require.Empty(t, withdrawals)
}

func TestGetUnknownAccount(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp := f.request("GET", "/accounts/NOPE-404", "")
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
