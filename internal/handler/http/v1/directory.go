package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a contact
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param contact body ContactRequest true "Contact"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /contacts [post]
func (h *Handler) createContact(c *gin.Context) {
	log := h.logger.WithField("method", "createContact")

	var input ContactRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	contact := DTOToContactModel(input)
	if err := h.directoryService.CreateContact(c.Request.Context(), contact); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, ID: contact.ID})
}

// @Summary List contacts of a member
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param user_phone query string true "Owner phone"
// @Success 200 {array} models.Contact
// @Failure 400 {object} ErrorResponse "user_phone is required"
// @Router /contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	log := h.logger.WithField("method", "listContacts")

	contacts, err := h.directoryService.ListContacts(c.Request.Context(), c.Query("user_phone"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(contacts))
}

// @Summary Delete a contact
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Router /contacts/{id} [delete]
func (h *Handler) deleteContact(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteContact").WithField("id", id)

	if err := h.directoryService.DeleteContact(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// @Summary List suspects
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Suspect
// @Router /suspects [get]
func (h *Handler) listSuspects(c *gin.Context) {
	log := h.logger.WithField("method", "listSuspects")

	suspects, err := h.directoryService.ListSuspects(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(suspects))
}

// @Summary Create a suspect record
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param suspect body SuspectRequest true "Suspect"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /suspects [post]
func (h *Handler) createSuspect(c *gin.Context) {
	log := h.logger.WithField("method", "createSuspect")

	var input SuspectRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	suspect := DTOToSuspectModel(input)
	if err := h.directoryService.CreateSuspect(c.Request.Context(), suspect); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, ID: suspect.ID})
}

// @Summary Update a suspect record
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Suspect ID"
// @Param suspect body SuspectRequest true "Suspect"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Suspect not found"
// @Router /suspects/{id} [put]
func (h *Handler) updateSuspect(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateSuspect").WithField("id", id)

	var input SuspectRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	suspect := DTOToSuspectModel(input)
	suspect.ID = id
	if err := h.directoryService.UpdateSuspect(c.Request.Context(), suspect); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// @Summary Delete a suspect record
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Suspect ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Suspect not found"
// @Router /suspects/{id} [delete]
func (h *Handler) deleteSuspect(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteSuspect").WithField("id", id)

	if err := h.directoryService.DeleteSuspect(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// @Summary List vehicles
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Vehicle
// @Router /vehicles [get]
func (h *Handler) listVehicles(c *gin.Context) {
	log := h.logger.WithField("method", "listVehicles")

	vehicles, err := h.directoryService.ListVehicles(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(vehicles))
}

// @Summary Create a vehicle record
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param vehicle body VehicleRequest true "Vehicle"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /vehicles [post]
func (h *Handler) createVehicle(c *gin.Context) {
	log := h.logger.WithField("method", "createVehicle")

	var input VehicleRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	vehicle := DTOToVehicleModel(input)
	if err := h.directoryService.CreateVehicle(c.Request.Context(), vehicle); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, ID: vehicle.ID})
}

// @Summary Update a vehicle record
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Vehicle ID"
// @Param vehicle body VehicleRequest true "Vehicle"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Router /vehicles/{id} [put]
func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateVehicle").WithField("id", id)

	var input VehicleRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	vehicle := DTOToVehicleModel(input)
	vehicle.ID = id
	if err := h.directoryService.UpdateVehicle(c.Request.Context(), vehicle); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// @Summary Delete a vehicle record
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Router /vehicles/{id} [delete]
func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteVehicle").WithField("id", id)

	if err := h.directoryService.DeleteVehicle(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// @Summary List notifications of a member
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param phone path string true "Phone"
// @Success 200 {array} models.Notification
// @Router /users/{phone}/notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	phone := c.Param("phone")
	log := h.logger.WithField("method", "listNotifications").WithField("phone", phone)

	notifications, err := h.directoryService.ListNotifications(c.Request.Context(), phone)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(notifications))
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [put]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "markNotificationRead").WithField("id", id)

	if err := h.directoryService.MarkNotificationRead(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
