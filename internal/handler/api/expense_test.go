//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"expense-matching/internal/domain/expense"
	"expense-matching/internal/handler/api"
	resdto "expense-matching/internal/handler/dto/response"
	"expense-matching/internal/testutil"
	"expense-matching/internal/testutil/builder"
	"expense-matching/internal/testutil/httptest"
	commandsmock "expense-matching/internal/testutil/mock/commands"
	queriesmock "expense-matching/internal/testutil/mock/queries"
	"expense-matching/internal/usecase/commands"
	"expense-matching/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExpenseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockExpenseCommands
	mockQueries  *queriesmock.MockExpenseQueries
	handler      *api.ExpenseHandler
}

func (s *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockExpenseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockExpenseQueries(s.mockCtrl)
	s.handler = api.NewExpenseHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/expenses", s.handler.List)
	s.router.GET("/expenses/:id", s.handler.Get)
	s.router.POST("/expenses", s.handler.Create)
	s.router.PUT("/expenses/:id", s.handler.Update)
	s.router.DELETE("/expenses/:id", s.handler.Delete)
}

func (s *ExpenseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}

type testCaseExpense struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ExpenseHandlerTestSuite) TestCreate() {
	url := "/expenses"

	b := builder.NewExpenseBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()
	result := &commands.CreateExpenseResult{ExpenseGUID: view.GUID}

	bound := []testCaseExpense{
		{name: "price zero OK", mutate: testutil.Field("price", 0), expectCode: http.StatusCreated},
		{name: "price negative", mutate: testutil.Field("price", -1), expectCode: http.StatusBadRequest},
		{name: "name 255 chars OK", mutate: testutil.Field("name", strings.Repeat("a", 255)), expectCode: http.StatusCreated},
		{name: "name 256 chars", mutate: testutil.Field("name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
		{name: "note 1001 chars", mutate: testutil.Field("note", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		{name: "paid_at as timestamp OK", mutate: testutil.Field("paid_at", "2025-03-14T23:30:00+09:00"), expectCode: http.StatusCreated},
		{name: "paid_at unparseable", mutate: testutil.Field("paid_at", "14/03/2025"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseExpense{
		{name: "missing field: user_guid", mutate: testutil.Field("user_guid", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: price", mutate: testutil.Field("price", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: paid_at", mutate: testutil.Field("paid_at", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the stored expense", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(result, nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), view.GUID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ExpenseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.GUID, body.Expense.GUID)
		s.Equal("2025-03-14", body.Expense.PaidAt)
		s.NotNil(body.Expense.LinkedMatchings)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseExpense{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(result, nil)
						s.mockQueries.EXPECT().Get(gomock.Any(), view.GUID).Return(view, nil)
					}

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"name":`)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: domain validation message is returned", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, expense.ErrEmptyName)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "name is required")
	})

	s.Run("error: unexpected failure is hidden", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Create expense failed")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ExpenseHandlerTestSuite) TestUpdate() {
	view := builder.NewExpenseBuilder().BuildView()
	url := "/expenses/" + view.GUID

	s.Run("success: explicit null clears the note", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.GUID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req commands.UpdateExpenseRequest) error {
				s.True(req.Note.Set)
				s.True(req.Note.Null)
				s.Nil(req.Name)
				return nil
			})
		s.mockQueries.EXPECT().Get(gomock.Any(), view.GUID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, `{"note":null}`)

		var body resdto.ExpenseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.GUID, body.Expense.GUID)
	})

	s.Run("error: empty body", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.GUID, gomock.Any()).Return(expense.ErrNoFieldsToEdit)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no fields to update")
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(expense.ErrExpenseNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/expenses/missing", map[string]any{"price": 10})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "expense not found")
	})
}

// ================================================================================
// TestRead
// ================================================================================

func (s *ExpenseHandlerTestSuite) TestList() {
	view := builder.NewExpenseBuilder().BuildView()

	s.Run("filters by user", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.ExpenseFilter) ([]*queries.ExpenseView, error) {
				s.Require().NotNil(f.UserGUID)
				s.Equal("user-a", *f.UserGUID)
				return []*queries.ExpenseView{view}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/expenses?user_guid=user-a", nil)

		var body resdto.ExpenseListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Expenses, 1)
	})

	s.Run("empty list is an array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ExpenseFilter{}).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/expenses", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"expenses":[]}`, rec.Body.String())
	})
}

func (s *ExpenseHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().Get(gomock.Any(), "missing").Return(nil, expense.ErrExpenseNotFound)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/expenses/missing", nil)

	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "expense not found")
}

func (s *ExpenseHandlerTestSuite) TestDelete() {
	s.mockCommands.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/expenses/e-1", nil)

	var body resdto.MessageResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("expense deleted", body.Message)
}
