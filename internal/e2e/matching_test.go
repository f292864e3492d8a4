//go:build e2e

package e2e

import (
	"net/http"
	"strings"
	"testing"

	resdto "expense-matching/internal/handler/dto/response"
	"expense-matching/internal/testutil/dbtest"
	"expense-matching/internal/testutil/httptest"

	"github.com/stretchr/testify/suite"
)

type MatchingE2ETestSuite struct {
	SharedSuite
}

func TestMatchingE2ESuite(t *testing.T) {
	suite.Run(t, new(MatchingE2ETestSuite))
}

func (s *MatchingE2ETestSuite) createExpense(userGUID, name string, price int64, paidAt string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/expenses", map[string]any{
		"user_guid": userGUID,
		"name":      name,
		"price":     price,
		"paid_at":   paidAt,
	})
	var body resdto.ExpenseEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	s.Require().NotNil(body.Expense)
	return body.Expense.GUID
}

func (s *MatchingE2ETestSuite) createMatching(name string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matchings", map[string]any{
		"name":              name,
		"created_user_guid": dbtest.Alice.GUID,
	})
	var body resdto.MatchingEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	s.Require().NotNil(body.Matching)
	return body.Matching.GUID
}

func (s *MatchingE2ETestSuite) attach(matchingGUID, expenseGUID string, requestAmount *int64) int64 {
	payload := map[string]any{"expense_guid": expenseGUID}
	if requestAmount != nil {
		payload["request_amount"] = *requestAmount
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matchings/"+matchingGUID+"/expenses", payload)
	var body resdto.AttachResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body.MatchingExpenseID
}

func (s *MatchingE2ETestSuite) detail(matchingGUID string) resdto.MatchingDetailResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/matchings/"+matchingGUID, nil)
	var body resdto.MatchingDetailResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	return body
}

func (s *MatchingE2ETestSuite) TestSettlementLifecycle() {
	alicePaid := s.createExpense(dbtest.Alice.GUID, "Groceries", 3000, "2025-03-10")
	bobPaid := s.createExpense(dbtest.Bob.GUID, "Electricity", 1000, "2025-03-12")
	m := s.createMatching("March")

	full := int64(1000)
	aliceSeq := s.attach(m, alicePaid, nil)
	s.attach(m, bobPaid, &full)

	s.Run("duplicate attach is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matchings/"+m+"/expenses",
			map[string]any{"expense_guid": alicePaid})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already linked")
	})

	s.Run("balance uses half of the price by default", func() {
		d := s.detail(m)

		s.Require().Len(d.Matching.Expenses, 2)
		s.Equal(bobPaid, *d.Matching.Expenses[0].ExpenseGUID)
		s.Equal(int64(1500), d.Matching.Expenses[1].ClaimAmount)
		s.Empty(d.AvailableExpenses)

		s.Require().NotNil(d.Balance)
		s.Equal(int64(2500), d.Balance.GrandTotal)
		s.Require().NotNil(d.Balance.Pairwise)
		s.Equal(dbtest.Bob.GUID, d.Balance.Pairwise.PayerGUID)
		s.Equal(dbtest.Alice.GUID, d.Balance.Pairwise.ReceiverGUID)
		s.Equal(int64(500), d.Balance.Pairwise.Amount)
		s.Equal(int64(500), d.Balance.Pairwise.Balance)
	})

	s.Run("editing an attached expense does not move the snapshot", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/expenses/"+alicePaid,
			map[string]any{"price": 5000, "name": "Groceries and wine"})
		var body resdto.ExpenseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(5000), body.Expense.Price)
		s.Require().Len(body.Expense.LinkedMatchings, 1)
		s.Equal(m, body.Expense.LinkedMatchings[0].GUID)

		d := s.detail(m)
		s.Equal("Groceries", d.Matching.Expenses[1].Name)
		s.Equal(int64(3000), d.Matching.Expenses[1].Price)
		s.Equal(int64(500), d.Balance.Pairwise.Amount)
	})

	s.Run("deleted expense stays in the matching", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/expenses/"+alicePaid, nil)
		s.Equal(http.StatusOK, rec.Code)

		d := s.detail(m)
		s.Require().Len(d.Matching.Expenses, 2)
		orphan := d.Matching.Expenses[1]
		s.True(orphan.IsDeleted)
		s.Nil(orphan.ExpenseGUID)
		s.Equal(aliceSeq, orphan.MatchingExpenseID)
		s.Equal(int64(500), d.Balance.Pairwise.Amount)
	})

	s.Run("orphaned snapshot is detached by id", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/matchings/"+m+"/expenses",
			map[string]any{"matching_expense_id": aliceSeq})
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		d := s.detail(m)
		s.Len(d.Matching.Expenses, 1)
		s.Equal(dbtest.Alice.GUID, d.Balance.Pairwise.PayerGUID)
		s.Equal(int64(1000), d.Balance.Pairwise.Amount)
		s.Equal(int64(-1000), d.Balance.Pairwise.Balance)
	})

	s.Run("settled matching is frozen", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matchings/"+m+"/settle", nil)
		var settled resdto.SettleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &settled)
		s.Equal("settled", settled.Matching.State)
		s.NotNil(settled.Matching.SettledAt)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matchings/"+m+"/settle", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already settled")

		late := s.createExpense(dbtest.Bob.GUID, "Late bill", 800, "2025-03-31")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matchings/"+m+"/expenses",
			map[string]any{"expense_guid": late})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "settled")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/matchings/"+m+"/expenses",
			map[string]any{"expense_guid": bobPaid})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "settled")
	})

	s.Run("clearing settled_at reopens", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/matchings/"+m, `{"settled_at":null}`)
		var body resdto.MatchingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("open", body.Matching.State)
		s.Nil(body.Matching.SettledAt)
	})

	s.Run("deleting the matching removes its snapshots", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/matchings/"+m, nil)
		s.Equal(http.StatusOK, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/matchings/"+m, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "matching not found")
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "expense_matching_expenses"))
		s.Equal(2, dbtest.CountRows(s.T(), s.DB, "expenses"))
	})
}

func (s *MatchingE2ETestSuite) TestPairwiseNeedsTwoUsers() {
	dbtest.CreateTestUser(s.T(), s.DB, "Carol")
	e := s.createExpense(dbtest.Alice.GUID, "Rent", 9000, "2025-03-01")
	m := s.createMatching("Shared flat")
	s.attach(m, e, nil)

	d := s.detail(m)

	s.Require().NotNil(d.Balance)
	s.Len(d.Balance.UserTotals, 3)
	s.Nil(d.Balance.Pairwise)
	s.True(d.Balance.PairwiseUnsupported)
}

func (s *MatchingE2ETestSuite) TestEmptyMatching() {
	m := s.createMatching("April")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/matchings/"+m, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"balance":null`)
	s.Contains(rec.Body.String(), `"expenses":[]`)
}

func (s *MatchingE2ETestSuite) TestValidation() {
	s.Run("unknown user", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/expenses", map[string]any{
			"user_guid": "01JQ0000000000000000NOBODY",
			"name":      "Ghost",
			"price":     10,
			"paid_at":   "2025-03-01",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "user not found")
	})

	s.Run("name too long", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matchings", map[string]any{
			"name":              strings.Repeat("x", 256),
			"created_user_guid": dbtest.Alice.GUID,
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown matching", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matchings/01JQ000000000000000MISSING/settle", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "matching not found")
	})
}

func (s *MatchingE2ETestSuite) TestSupportEndpoints() {
	s.Run("users are listed in insertion order", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/users", nil)
		var body resdto.UserListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Users, 2)
		s.Equal(dbtest.Alice.GUID, body.Users[0].GUID)
	})

	s.Run("health", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil)
		s.JSONEq(`{"status":"ok"}`, rec.Body.String())
	})

	s.Run("metrics count settlements", func() {
		m := s.createMatching("May")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matchings/"+m+"/settle", nil)
		s.Equal(http.StatusOK, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/metrics", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "matchings_settled_total")
	})
}
