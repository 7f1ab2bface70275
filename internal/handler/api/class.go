package api

import (
	"net/http"

	reqdto "fitness-booking/internal/handler/dto/request"
	resdto "fitness-booking/internal/handler/dto/response"
	"fitness-booking/internal/handler/httperr"
	"fitness-booking/internal/usecase/commands"
	"fitness-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClassHandler struct {
	cmds commands.ClassCommands
	q    queries.ClassQueries
}

func NewClassHandler(cmds commands.ClassCommands, q queries.ClassQueries) *ClassHandler {
	return &ClassHandler{cmds: cmds, q: q}
}

// @Summary Schedule class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body reqdto.ScheduleClassRequest true "Schedule class request"
// @Success 201 {object} resdto.ClassResponse
// @Failure 400 {object} httperr.Response
// @Router /classes [post]
func (h *ClassHandler) Schedule(c *gin.Context) {
	var req reqdto.ScheduleClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Schedule(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/classes/"+result.ID.String())
	c.JSON(http.StatusCreated, resdto.FromClassResult(result))
}

// @Summary List classes
// @Description Ordered by start time, keyset paginated
// @Tags classes
// @Produce json
// @Param limit query int false "Max items (default 20, max 200)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.ClassListResponse
// @Failure 400 {object} httperr.Response
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	cursor, limit, ok := bindListQuery(c)
	if !ok {
		return
	}
	items, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClassViews(items, next))
}

// @Summary Get class
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} resdto.ClassResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClassView(view))
}

// @Summary Quote price
// @Description Price the next seat for a member without reserving it
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Param member_id query string true "Member ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /classes/{id}/quote [get]
func (h *ClassHandler) Quote(c *gin.Context) {
	classID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, err := uuid.Parse(c.Query("member_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid member_id", nil)
		return
	}
	view, err := h.q.Quote(c.Request.Context(), classID, memberID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
