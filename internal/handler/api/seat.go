package api

import (
	"net/http"

	reqdto "seat-reservation/internal/handler/dto/request"
	resdto "seat-reservation/internal/handler/dto/response"
	"seat-reservation/internal/handler/httperr"
	"seat-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SeatHandler struct {
	q queries.SeatQueries
}

func NewSeatHandler(q queries.SeatQueries) *SeatHandler {
	return &SeatHandler{q: q}
}

// @Summary List seats of an event
// @Description Seats ordered by number, with the live hold if any
// @Tags seats
// @Produce json
// @Param event_id query string true "Event ID"
// @Success 200 {array} resdto.SeatResponse
// @Failure 400 {object} httperr.Response
// @Router /seats [get]
func (h *SeatHandler) List(c *gin.Context) {
	var query reqdto.ListSeatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	eventID, err := uuid.Parse(query.EventID)
	if err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	views, err := h.q.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp, err := resdto.FromSeatViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get seat
// @Tags seats
// @Produce json
// @Param id path string true "Seat ID"
// @Success 200 {object} resdto.SeatResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /seats/{id} [get]
func (h *SeatHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp, err := resdto.FromSeatView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
