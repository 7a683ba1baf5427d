package api

import (
	"net/http"

	reqdto "padel-booking/internal/handler/dto/request"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	commands commands.CourtCommands
	queries  queries.CourtQueries
}

func NewCourtHandler(cmds commands.CourtCommands, q queries.CourtQueries) *CourtHandler {
	return &CourtHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Create court
// @Tags courts
// @Accept json
// @Produce json
// @Param request body reqdto.CourtRequest true "Court"
// @Success 201 {object} resdto.CourtResponse
// @Header 201 {string} Location "URL of the created court"
// @Failure 400 {object} httperr.Response
// @Router /api/courts [post]
func (h *CourtHandler) Create(c *gin.Context) {
	var req reqdto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	if !rejectBodyID(c, req.ID, "court") {
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
	c.JSON(http.StatusCreated, resdto.FromCourtView(view))
}

// @Summary Replace court
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Param request body reqdto.CourtRequest true "Court"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/courts/{id} [put]
func (h *CourtHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.CourtRequest
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

// @Summary Patch court
// @Description Only fields present in the body change
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Param request body reqdto.CourtPatchRequest true "Court fields"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/courts/{id} [patch]
func (h *CourtHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.CourtPatchRequest
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

// @Summary Get court
// @Tags courts
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 404 {object} httperr.Response
// @Router /api/courts/{id} [get]
func (h *CourtHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respondWithView(c, id)
}

// @Summary List courts
// @Tags courts
// @Produce json
// @Success 200 {array} resdto.CourtResponse
// @Router /api/courts [get]
func (h *CourtHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtViews(views))
}

// @Summary Delete court
// @Tags courts
// @Param id path int true "Court ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/courts/{id} [delete]
func (h *CourtHandler) Delete(c *gin.Context) {
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

func (h *CourtHandler) respondWithView(c *gin.Context, id int64) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}
