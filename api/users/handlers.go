package users

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/types"
	usersService "github.com/structech/survey-api/internal/services/users"
)

// List returns a filtered page of users
// @Summary      List users
// @Description  List users with optional search, role and status filters, paged and sortable
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        search query string false "Match against email and name"
// @Param        role query string false "Filter by role"
// @Param        status query bool false "Filter by active status"
// @Param        page query int false "Page number (default 1)"
// @Param        pageSize query int false "Page size (default 20, max 100)"
// @Param        sortBy query string false "Sort column (createdAt, email, name, role, lastLogin)"
// @Param        sortOrder query string false "asc or desc"
// @Success      200 {object} types.UserPage "Page of users"
// @Failure      403 {object} types.ErrorResponse "Admin access required"
// @Router       /api/v1/users [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := usersService.ListFilter{
			Search:    c.Query("search"),
			Role:      c.Query("role"),
			SortBy:    c.Query("sortBy"),
			SortOrder: c.Query("sortOrder"),
		}
		if raw := c.Query("status"); raw != "" {
			status, err := strconv.ParseBool(raw)
			if err != nil {
				types.SendBadRequest(c, "Invalid status")
				return
			}
			filter.Status = &status
		}
		filter.Page, _ = strconv.Atoi(c.Query("page"))
		filter.PageSize, _ = strconv.Atoi(c.Query("pageSize"))

		page, err := deps.UserService.ListUsers(c.Request.Context(), filter)
		if err != nil {
			types.SendInternalError(c, "Failed to list users")
			return
		}

		types.SendSuccess(c, types.UserPage{
			Items:    types.NewUserResponses(page.Items),
			Total:    page.Total,
			Page:     page.Page,
			PageSize: page.PageSize,
		})
	}
}

// Get returns a single user
// @Summary      Get user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} types.UserResponse "User"
// @Failure      404 {object} types.ErrorResponse "User not found"
// @Router       /api/v1/users/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		user, err := deps.UserService.GetUserByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, usersService.ErrUserNotFound) {
				types.SendNotFound(c, "User not found")
			} else {
				types.SendInternalError(c, "Failed to get user")
			}
			return
		}
		types.SendSuccess(c, types.NewUserResponse(user))
	}
}

// Create registers a new user
// @Summary      Create user
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user body types.CreateUserRequest true "New user"
// @Success      201 {object} types.UserResponse "Created user"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      409 {object} types.ErrorResponse "Email already registered"
// @Router       /api/v1/users [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateUserRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user, err := deps.UserService.CreateUser(c.Request.Context(), req.Email, req.Password, req.Name, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, usersService.ErrDuplicateEmail):
				types.SendConflict(c, "A user with this email already exists")
			case errors.Is(err, usersService.ErrInvalidRole),
				errors.Is(err, usersService.ErrWeakPassword):
				types.SendBadRequest(c, err.Error())
			default:
				types.SendInternalError(c, "Failed to create user")
			}
			return
		}
		types.SendCreated(c, types.NewUserResponse(user))
	}
}

// Update applies a partial update to a user
// @Summary      Update user
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        patch body types.UpdateUserRequest true "Fields to change"
// @Success      200 {object} types.UserResponse "Updated user"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "User not found"
// @Router       /api/v1/users/{id} [patch]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.UpdateUserRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user, err := deps.UserService.UpdateUser(c.Request.Context(), id, usersService.UpdatePatch{
			Name:     req.Name,
			Role:     req.Role,
			Status:   req.Status,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, usersService.ErrUserNotFound):
				types.SendNotFound(c, "User not found")
			case errors.Is(err, usersService.ErrNothingToUpdate),
				errors.Is(err, usersService.ErrInvalidRole),
				errors.Is(err, usersService.ErrWeakPassword):
				types.SendBadRequest(c, err.Error())
			default:
				types.SendInternalError(c, "Failed to update user")
			}
			return
		}
		types.SendSuccess(c, types.NewUserResponse(user))
	}
}

// Delete removes a user
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} map[string]string "Deleted"
// @Failure      404 {object} types.ErrorResponse "User not found"
// @Router       /api/v1/users/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.UserService.DeleteUser(c.Request.Context(), id); err != nil {
			if errors.Is(err, usersService.ErrUserNotFound) {
				types.SendNotFound(c, "User not found")
			} else {
				types.SendInternalError(c, "Failed to delete user")
			}
			return
		}
		types.SendSuccess(c, gin.H{"message": "User deleted"})
	}
}
