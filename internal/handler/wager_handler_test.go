package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"

	"stonks/internal/model"
	"stonks/internal/service"
)

// MockWagerService is a mock implementation of service.WagerService.
type MockWagerService struct {
	mock.Mock
}

func (m *MockWagerService) CreateWager(ctx context.Context, input service.CreateWagerInput) (*model.Wager, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wager), args.Error(1)
}

func (m *MockWagerService) ListWagersForUser(ctx context.Context, userID uuid.UUID) ([]model.Wager, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Wager), args.Error(1)
}

func TestWagerHandler_CreateWager(t *testing.T) {
	ownerID := uuid.New()

	t.Run("successful creation", func(t *testing.T) {
		mockSvc := new(MockWagerService)
		wager := &model.Wager{ID: uuid.New(), UserID: ownerID}
		mockSvc.On("CreateWager", mock.Anything, mock.AnythingOfType("service.CreateWagerInput")).Return(wager, nil)

		h := NewWagerHandler(mockSvc)
		body := `{"userId":"` + ownerID.String() + `","groupName":"Trip","description":"Who pays","amount":50,` +
			`"startDate":"2024-01-01","endDate":"2024-02-01","payout":"winner-take-all","members":["bob@x.com"]}`
		c, rec := newTestContext(t, http.MethodPost, "/wagers", body)

		err := h.CreateWager(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp CreateWagerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, wager.ID.String(), resp.WagerID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty members rejected with 400 and nothing persisted", func(t *testing.T) {
		mockSvc := new(MockWagerService)
		h := NewWagerHandler(mockSvc)
		body := `{"userId":"` + ownerID.String() + `","groupName":"Trip","description":"Who pays","amount":50,` +
			`"startDate":"2024-01-01","endDate":"2024-02-01","payout":"winner-take-all","members":[]}`
		c, _ := newTestContext(t, http.MethodPost, "/wagers", body)

		err := h.CreateWager(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockSvc.AssertNotCalled(t, "CreateWager")
	})

	t.Run("missing fields rejected with 400", func(t *testing.T) {
		mockSvc := new(MockWagerService)
		h := NewWagerHandler(mockSvc)
		c, _ := newTestContext(t, http.MethodPost, "/wagers", `{"userId":"`+ownerID.String()+`"}`)

		err := h.CreateWager(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockSvc.AssertNotCalled(t, "CreateWager")
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		mockSvc := new(MockWagerService)
		mockSvc.On("CreateWager", mock.Anything, mock.AnythingOfType("service.CreateWagerInput")).Return(nil, assert.AnError)

		h := NewWagerHandler(mockSvc)
		body := `{"userId":"` + ownerID.String() + `","groupName":"Trip","description":"Who pays","amount":50,` +
			`"startDate":"2024-01-01","endDate":"2024-02-01","payout":"winner-take-all","members":["bob@x.com"]}`
		c, _ := newTestContext(t, http.MethodPost, "/wagers", body)

		err := h.CreateWager(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	})
}

func TestWagerHandler_ListWagers(t *testing.T) {
	ownerID := uuid.New()

	t.Run("returns wagers with member email lists", func(t *testing.T) {
		mockSvc := new(MockWagerService)
		wagers := []model.Wager{
			{
				ID:          uuid.New(),
				UserID:      ownerID,
				GroupName:   "Trip",
				Description: "Who pays",
				Amount:      decimal.NewFromInt(50),
				StartDate:   datatypes.Date(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				EndDate:     datatypes.Date(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
				Payout:      "winner-take-all",
				Members:     []model.WagerMember{{Email: "bob@x.com"}},
			},
		}
		mockSvc.On("ListWagersForUser", mock.Anything, ownerID).Return(wagers, nil)

		h := NewWagerHandler(mockSvc)
		c, rec := newTestContext(t, http.MethodGet, "/wagers/"+ownerID.String(), "")
		c.SetParamNames("userId")
		c.SetParamValues(ownerID.String())

		err := h.ListWagers(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []WagerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, []string{"bob@x.com"}, resp[0].Members)
		assert.Equal(t, "2024-01-01", resp[0].StartDate)
		assert.Equal(t, "2024-02-01", resp[0].EndDate)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no wagers yields empty array", func(t *testing.T) {
		mockSvc := new(MockWagerService)
		mockSvc.On("ListWagersForUser", mock.Anything, ownerID).Return([]model.Wager{}, nil)

		h := NewWagerHandler(mockSvc)
		c, rec := newTestContext(t, http.MethodGet, "/wagers/"+ownerID.String(), "")
		c.SetParamNames("userId")
		c.SetParamValues(ownerID.String())

		err := h.ListWagers(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("invalid userId rejected with 400", func(t *testing.T) {
		mockSvc := new(MockWagerService)
		h := NewWagerHandler(mockSvc)
		c, _ := newTestContext(t, http.MethodGet, "/wagers/not-a-uuid", "")
		c.SetParamNames("userId")
		c.SetParamValues("not-a-uuid")

		err := h.ListWagers(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockSvc.AssertNotCalled(t, "ListWagersForUser")
	})

	t.Run("store failure maps to 500 with error object", func(t *testing.T) {
		mockSvc := new(MockWagerService)
		mockSvc.On("ListWagersForUser", mock.Anything, ownerID).Return(nil, assert.AnError)

		h := NewWagerHandler(mockSvc)
		c, _ := newTestContext(t, http.MethodGet, "/wagers/"+ownerID.String(), "")
		c.SetParamNames("userId")
		c.SetParamValues(ownerID.String())

		err := h.ListWagers(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	})
}
