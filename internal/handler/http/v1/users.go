package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shomrim_dispatch/internal/models"
)

// @Summary Create or update a member profile
// @Description Upserts by phone. Duty and patrol flags are left unchanged.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body SaveUserRequest true "Profile"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [post]
func (h *Handler) saveUser(c *gin.Context) {
	log := h.logger.WithField("method", "saveUser")

	var input SaveUserRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	user := DTOToUserModel(input)
	if err := h.userService.SaveUser(c.Request.Context(), user); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "User saved"})
}

// @Summary Get a member by phone
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param phone path string true "Phone"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{phone} [get]
func (h *Handler) getUser(c *gin.Context) {
	phone := c.Param("phone")
	log := h.logger.WithField("method", "getUser").WithField("phone", phone)

	user, err := h.userService.GetUser(c.Request.Context(), phone)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Set duty status
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param phone path string true "Phone"
// @Param status body DutyStatusRequest true "Duty status"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{phone}/duty-status [put]
func (h *Handler) setDutyStatus(c *gin.Context) {
	phone := c.Param("phone")
	log := h.logger.WithField("method", "setDutyStatus").WithField("phone", phone)

	var input DutyStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.userService.SetDutyStatus(c.Request.Context(), phone, *input.OnDuty); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "on_duty": *input.OnDuty})
}

// @Summary Set patrol status
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param phone path string true "Phone"
// @Param status body PatrolStatusRequest true "Patrol status"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{phone}/patrol-status [put]
func (h *Handler) setPatrolStatus(c *gin.Context) {
	phone := c.Param("phone")
	log := h.logger.WithField("method", "setPatrolStatus").WithField("phone", phone)

	var input PatrolStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.userService.SetPatrolStatus(c.Request.Context(), phone, *input.OnPatrol); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "on_patrol": *input.OnPatrol})
}

// @Summary List members on duty
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.User
// @Router /users/on-duty [get]
func (h *Handler) listOnDuty(c *gin.Context) {
	h.respondUsers(c, "listOnDuty", h.userService.ListOnDuty)
}

// @Summary List members on patrol
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.User
// @Router /users/on-patrol [get]
func (h *Handler) listOnPatrol(c *gin.Context) {
	h.respondUsers(c, "listOnPatrol", h.userService.ListOnPatrol)
}

// @Summary List members by role
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param role path string true "Role"
// @Success 200 {array} models.User
// @Router /users/by-role/{role} [get]
func (h *Handler) listByRole(c *gin.Context) {
	role := c.Param("role")
	h.respondUsers(c, "listByRole", func(ctx context.Context) ([]models.User, error) {
		return h.userService.ListByRole(ctx, role)
	})
}

// @Summary List members reachable on a PTT channel
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param channel query string false "Channel" default(all)
// @Success 200 {array} models.OnlineUser
// @Router /users/online [get]
func (h *Handler) listOnline(c *gin.Context) {
	channel := c.DefaultQuery("channel", models.PTTChannelAll)
	log := h.logger.WithField("method", "listOnline").WithField("channel", channel)

	users, err := h.userService.ListOnline(c.Request.Context(), channel)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(users))
}

func (h *Handler) respondUsers(c *gin.Context, method string, list func(ctx context.Context) ([]models.User, error)) {
	users, err := list(c.Request.Context())
	if err != nil {
		respondError(c, h.logger.WithField("method", method), err)
		return
	}
	c.JSON(http.StatusOK, nonNil(users))
}
