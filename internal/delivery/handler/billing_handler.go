package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/application/services"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure"
)

// Stripe caps webhook payloads well under this.
const maxWebhookBody = 1 << 20

type BillingHandler struct {
	billing *services.BillingService
	gateway *infrastructure.StripeGateway
	log     *zap.Logger
}

func NewBillingHandler(billing *services.BillingService, gateway *infrastructure.StripeGateway, log *zap.Logger) *BillingHandler {
	return &BillingHandler{billing: billing, gateway: gateway, log: log}
}

type checkoutRequest struct {
	Plan string `json:"plan" validate:"required"`
}

func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	url, err := h.billing.CreateCheckout(CurrentUserID(c), req.Plan)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}

// Webhook verifies the provider signature over the raw body and applies the
// event. A non-2xx response makes the provider retry, so only grant failures
// return an error status.
func (h *BillingHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unreadable payload"})
	}

	event, err := h.gateway.VerifyWebhook(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		h.log.Warn("webhook rejected", zap.Error(err))
		return respondError(c, h.log, err)
	}

	if err := h.billing.ApplyPaymentEvent(c.Request().Context(), event); err != nil {
		h.log.Error("webhook processing failed", zap.String("event_id", event.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Event processing failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"received": true})
}
