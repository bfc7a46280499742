package v1

import (
	"net/http"

	"go-detailing-backend/internal/delivery/http/response"
	"go-detailing-backend/internal/domain"
	"go-detailing-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUC domain.BookingUsecase
}

// NewBookingHandler registers the booking form route
func NewBookingHandler(public *gin.RouterGroup, bookingUC domain.BookingUsecase) {
	handler := &BookingHandler{
		bookingUC: bookingUC,
	}

	public.POST("/booking", handler.SubmitBooking)
}

// SubmitBooking godoc
// @Summary      Submit Booking Request
// @Description  Request a detailing service booking for a preferred date.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        booking  body      domain.BookingForm  true  "Booking Form Data"
// @Success      200      {object}  response.SuccessResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /booking [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var form domain.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid form data"))
		return
	}

	if err := h.bookingUC.SubmitBooking(c.Request.Context(), &form); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your booking request has been submitted!")
}
