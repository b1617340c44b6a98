package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mamahiam-storefront/internal/checkout"
	"mamahiam-storefront/internal/shopapi"
)

func (h *handlers) submitOrder(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctl := h.checkoutFor(c)
	conf, err := ctl.Submit(c.Request.Context(), form)
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": conf})
}

func (h *handlers) respondSubmitError(c *gin.Context, err error) {
	var fieldErrs checkout.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	if errors.Is(err, checkout.ErrSubmitInFlight) {
		c.JSON(http.StatusConflict, gin.H{"error": "an order is already being submitted"})
		return
	}
	if errors.Is(err, checkout.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty", "redirect": "/"})
		return
	}
	var apiErr *shopapi.APIError
	if errors.As(err, &apiErr) {
		c.JSON(submitErrorStatus(apiErr.Kind), gin.H{"error": apiErr.Message()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "something went wrong while sending your order, please try again"})
}

func submitErrorStatus(kind shopapi.ErrorKind) int {
	switch kind {
	case shopapi.KindBadRequest:
		return http.StatusBadRequest
	case shopapi.KindValidation:
		return http.StatusUnprocessableEntity
	case shopapi.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// latestOrder serves the confirmation view. A session with no confirmation
// yet gets the grace window before being told to go home.
func (h *handlers) latestOrder(c *gin.Context) {
	ctl := h.checkoutFor(c)
	conf, ok := checkout.AwaitConfirmation(c.Request.Context(), ctl, h.grace)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"redirect": "/"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": conf})
}
