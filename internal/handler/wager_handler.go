package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"stonks/internal/errors"
	"stonks/internal/model"
	"stonks/internal/service"
)

const wagerDateLayout = "2006-01-02"

// WagerHandler handles wager endpoints.
type WagerHandler struct {
	wagerService service.WagerService
}

// NewWagerHandler creates a new wager handler.
func NewWagerHandler(wagerService service.WagerService) *WagerHandler {
	return &WagerHandler{wagerService: wagerService}
}

// CreateWagerRequest represents a wager creation request.
type CreateWagerRequest struct {
	UserID      string          `json:"userId" validate:"required,uuid4"`
	GroupName   string          `json:"groupName" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	StartDate   string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string          `json:"endDate" validate:"required,datetime=2006-01-02"`
	Payout      string          `json:"payout" validate:"required"`
	Members     []string        `json:"members" validate:"required,min=1,dive,required"`
}

// CreateWagerResponse represents a successful wager creation response.
type CreateWagerResponse struct {
	Success bool   `json:"success"`
	WagerID string `json:"wagerId"`
}

// WagerResponse is the public shape of a wager with its member emails.
type WagerResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	GroupName   string          `json:"groupName"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Payout      string          `json:"payout"`
	CreatedAt   time.Time       `json:"createdAt"`
	Members     []string        `json:"members"`
}

func toWagerResponse(w model.Wager) WagerResponse {
	return WagerResponse{
		ID:          w.ID.String(),
		UserID:      w.UserID.String(),
		GroupName:   w.GroupName,
		Description: w.Description,
		Amount:      w.Amount,
		StartDate:   time.Time(w.StartDate).Format(wagerDateLayout),
		EndDate:     time.Time(w.EndDate).Format(wagerDateLayout),
		Payout:      w.Payout,
		CreatedAt:   w.CreatedAt,
		Members:     w.MemberEmails(),
	}
}

// CreateWager godoc
// @Summary Create a wager with its member list
// @Tags wagers
// @Accept json
// @Produce json
// @Param request body CreateWagerRequest true "Wager data"
// @Success 200 {object} CreateWagerResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /wagers [post]
func (h *WagerHandler) CreateWager(c echo.Context) error {
	var req CreateWagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "Missing fields",
			Code:  "MISSING_FIELDS",
		})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid userId",
			Code:  "INVALID_USER_ID",
		})
	}

	wager, err := h.wagerService.CreateWager(c.Request().Context(), service.CreateWagerInput{
		UserID:      userID,
		GroupName:   req.GroupName,
		Description: req.Description,
		Amount:      req.Amount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Payout:      req.Payout,
		Members:     req.Members,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CreateWagerResponse{
		Success: true,
		WagerID: wager.ID.String(),
	})
}

// ListWagers godoc
// @Summary List a user's wagers newest first
// @Tags wagers
// @Produce json
// @Param userId path string true "Owner user ID"
// @Success 200 {array} WagerResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /wagers/{userId} [get]
func (h *WagerHandler) ListWagers(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid userId",
			Code:  "INVALID_USER_ID",
		})
	}

	wagers, err := h.wagerService.ListWagersForUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	out := make([]WagerResponse, 0, len(wagers))
	for _, w := range wagers {
		out = append(out, toWagerResponse(w))
	}
	return c.JSON(http.StatusOK, out)
}
