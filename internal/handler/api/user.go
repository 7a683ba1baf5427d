package api

import (
	"context"
	"net/http"

	reqdto "padel-booking/internal/handler/dto/request"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	commands commands.UserCommands
	queries  queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.UserRequest true "User"
// @Success 201 {object} resdto.UserResponse
// @Header 201 {string} Location "URL of the created user"
// @Failure 400 {object} httperr.Response
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	req, ok := bindUser(c)
	if !ok || !rejectBodyID(c, req.ID, "user") {
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
	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary Replace user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body reqdto.UserRequest true "User"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	h.write(c, h.commands.Update)
}

// @Summary Patch user
// @Description Only fields present in the body change; an empty string clears a field
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body reqdto.UserRequest true "User fields"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/users/{id} [patch]
func (h *UserHandler) Patch(c *gin.Context) {
	h.write(c, h.commands.Patch)
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respondWithView(c, id)
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Delete user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
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

func (h *UserHandler) write(c *gin.Context, apply func(ctx context.Context, id int64, in commands.UserInput) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindUser(c)
	if !ok || !checkBodyID(c, id, req.ID) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if err := apply(c.Request.Context(), id, in); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithView(c, id)
}

func (h *UserHandler) respondWithView(c *gin.Context, id int64) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

func bindUser(c *gin.Context) (*reqdto.UserRequest, bool) {
	var req reqdto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return nil, false
	}
	return &req, true
}
