package api

import (
	"net/http"
	"strconv"

	"lodging-service/internal/domain/booking"
	reqdto "lodging-service/internal/handler/dto/request"
	resdto "lodging-service/internal/handler/dto/response"
	"lodging-service/internal/handler/httperr"
	"lodging-service/internal/handler/middleware"
	"lodging-service/internal/pkg/errs"
	"lodging-service/internal/usecase/commands"
	"lodging-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingUser = errs.New("authenticated user missing from context")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Get booking
// @Description Get the booking held by the current user, with its room
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetBooking(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to load booking", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Create booking
// @Description Book a room for the current user
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /booking [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), userID, *req.RoomID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Move booking
// @Description Move the current user's booking to another room
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingId path int true "Booking ID"
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /booking/{bookingId} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	bookingID, err := parseID(c.Param("bookingId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	var req reqdto.BookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.UpdateBooking(c.Request.Context(), userID, bookingID, *req.RoomID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func abortBookingError(c *gin.Context, err error) {
	switch booking.KindOf(err) {
	case booking.KindNotFound:
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case booking.KindForbidden:
		detail := gin.H{"reason": rejectionReason(err)}
		httperr.AbortWithError(c, http.StatusForbidden, err, "Booking not allowed", detail)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking failed", nil)
	}
}

func rejectionReason(err error) string {
	if ae, ok := commands.AsAdmissionError(err); ok {
		return ae.Decision.String()
	}
	return booking.DecisionUnknown.String()
}

// parseID accepts positive int32 path parameters only.
func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errs.Wrapf(err, "parsing id %q", raw)
	}
	if id <= 0 {
		return 0, errs.Newf("id must be positive: %d", id)
	}
	return int32(id), nil
}
