package controller

import (
	"errors"
	"net/http"
	"strconv"

	"user-microservice/internal/api/models"
	"user-microservice/internal/api/response"
	"user-microservice/internal/api/service"
	"user-microservice/internal/pagination"

	"github.com/gin-gonic/gin"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// parseUserID validates the user_id path parameter. A non-integer or
// non-positive id is a validation failure, distinct from a missing row. On
// failure the response has already been written.
func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "User id must be integer")
		return 0, false
	}
	if id < 1 {
		response.Detail(c, http.StatusUnprocessableEntity, "User id must be greater than 0")
		return 0, false
	}
	return id, true
}

// ListUsers handles the paginated user listing endpoint.
func (uc *UserController) ListUsers(c *gin.Context) {
	params, err := pagination.FromQuery(c.Request.URL.Query())
	if err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	page, err := uc.userService.List(c.Request.Context(), params)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetUser handles the read-by-id endpoint.
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := uc.userService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Detail(c, http.StatusNotFound, "User id not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser handles the user creation endpoint.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := uc.userService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles the partial-update endpoint. Only fields present in the
// body overwrite stored values.
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := uc.userService.Update(c.Request.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Detail(c, http.StatusNotFound, "User id not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles the delete endpoint.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := uc.userService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Detail(c, http.StatusNotFound, "User id not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Message(c, "User deleted")
}

// Register handles the registration endpoint.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	res, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			response.Detail(c, http.StatusBadRequest, "Missing email or password")
		case errors.Is(err, service.ErrEmailTaken):
			response.Detail(c, http.StatusConflict, "Email already registered")
		default:
			response.Detail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, res)
}
