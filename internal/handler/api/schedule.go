package api

import (
	"net/http"
	"strconv"

	reqdto "padel-booking/internal/handler/dto/request"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	commands commands.ScheduleCommands
	queries  queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Create schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body reqdto.ScheduleRequest true "Schedule"
// @Success 201 {object} resdto.ScheduleResponse
// @Header 201 {string} Location "URL of the created schedule"
// @Failure 400 {object} httperr.Response
// @Router /api/schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req reqdto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	if !rejectBodyID(c, req.ID, "schedule") {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", location(c, id))
	c.JSON(http.StatusCreated, resdto.FromScheduleView(view))
}

// @Summary Replace schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param request body reqdto.ScheduleRequest true "Schedule"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/schedules/{id} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	if !checkBodyID(c, id, req.ID) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if err := h.commands.Update(c.Request.Context(), id, in); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithView(c, id)
}

// @Summary Patch schedule
// @Description Only fields present in the body change
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param request body reqdto.SchedulePatchRequest true "Schedule fields"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/schedules/{id} [patch]
func (h *ScheduleHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.SchedulePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	if !checkBodyID(c, id, req.ID) {
		return
	}

	p, err := req.ToPatch()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if err := h.commands.Patch(c.Request.Context(), id, p); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithView(c, id)
}

// @Summary Get schedule
// @Tags schedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 404 {object} httperr.Response
// @Router /api/schedules/{id} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respondWithView(c, id)
}

// @Summary List schedules
// @Tags schedules
// @Produce json
// @Param courtId query int false "Only schedules of this court"
// @Success 200 {array} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Router /api/schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	var courtID *int64
	if raw, ok := c.GetQuery("courtId"); ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid courtId", nil)
			return
		}
		courtID = &id
	}

	views, err := h.queries.List(c.Request.Context(), courtID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleViews(views))
}

// @Summary Delete schedule
// @Tags schedules
// @Param id path int true "Schedule ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) respondWithView(c *gin.Context, id int64) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}
