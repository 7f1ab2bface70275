package api

import (
	"net/http"

	reqdto "fitness-booking/internal/handler/dto/request"
	resdto "fitness-booking/internal/handler/dto/response"
	"fitness-booking/internal/handler/httperr"
	"fitness-booking/internal/usecase/commands"
	"fitness-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	cmds         commands.MemberCommands
	q            queries.MemberQueries
	reservations queries.ReservationQueries
}

func NewMemberHandler(cmds commands.MemberCommands, q queries.MemberQueries, reservations queries.ReservationQueries) *MemberHandler {
	return &MemberHandler{cmds: cmds, q: q, reservations: reservations}
}

// @Summary Register member
// @Description Register a member with a membership tier
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterMemberRequest true "Register member request"
// @Success 201 {object} resdto.MemberResponse
// @Failure 400 {object} httperr.Response
// @Router /members [post]
func (h *MemberHandler) Register(c *gin.Context) {
	var req reqdto.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/members/"+result.ID.String())
	c.JSON(http.StatusCreated, resdto.FromMemberResult(result))
}

// @Summary Get member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} resdto.MemberResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberView(view))
}

// @Summary List member reservations
// @Description Newest first, keyset paginated
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /members/{id}/reservations [get]
func (h *MemberHandler) ListReservations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cursor, limit, ok := bindListQuery(c)
	if !ok {
		return
	}
	items, next, err := h.reservations.ListByMember(c.Request.Context(), id, cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(items, next))
}
