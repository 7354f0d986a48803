package http

import (
	"net/http"

	"adventurelane/entity"
	"adventurelane/metrics"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type validatePromoRequest struct {
	Code     string           `json:"code"`
	Subtotal *decimal.Decimal `json:"subtotal"`
}

type validatePromoResponse struct {
	Valid         bool                `json:"valid"`
	Message       string              `json:"message,omitempty"`
	Discount      *decimal.Decimal    `json:"discount,omitempty"`
	DiscountType  entity.DiscountType `json:"discount_type,omitempty"`
	DiscountValue *decimal.Decimal    `json:"discount_value,omitempty"`
}

func (h handler) ValidatePromo(c echo.Context) error {
	var request validatePromoRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "Failed to parse request")
	}

	if request.Code == "" || request.Subtotal == nil {
		return badRequest(c, "Promo code and subtotal are required")
	}

	res := h.promos.Evaluate(c.Request().Context(), request.Code, *request.Subtotal)
	metrics.IncPromoValidated(res.Valid)

	if !res.Valid {
		return c.JSON(http.StatusOK, validatePromoResponse{
			Valid:   false,
			Message: "Invalid promo code",
		})
	}

	return c.JSON(http.StatusOK, validatePromoResponse{
		Valid:         true,
		Discount:      &res.Discount,
		DiscountType:  res.DiscountType,
		DiscountValue: &res.DiscountValue,
	})
}
