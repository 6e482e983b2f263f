package api

import (
	"net/http"

	resdto "lodging-service/internal/handler/dto/response"
	"lodging-service/internal/handler/httperr"
	"lodging-service/internal/handler/middleware"
	"lodging-service/internal/pkg/errs"
	"lodging-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	q queries.HotelQueries
}

func NewHotelHandler(q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{q: q}
}

// @Summary List hotels
// @Description List hotels; requires a paid ticket that includes hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HotelResponse
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	hotels, err := h.q.ListHotels(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, queries.ErrPaymentRequired) {
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment required", nil)
			return
		}
		httperr.AbortWithStatus(c, http.StatusNoContent, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelViews(hotels))
}

// @Summary List rooms of a hotel
// @Description Get a hotel with its rooms and their current occupancy
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param hotelId path int true "Hotel ID"
// @Success 200 {object} resdto.HotelWithRoomsResponse
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotelId} [get]
func (h *HotelHandler) Rooms(c *gin.Context) {
	hotelID, err := parseID(c.Param("hotelId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	view, err := h.q.ListRooms(c.Request.Context(), userID, hotelID)
	if err != nil {
		if errs.Is(err, queries.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithStatus(c, http.StatusNoContent, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelWithRoomsView(view))
}
