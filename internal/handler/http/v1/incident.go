package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shomrim_dispatch/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// @Summary Create a new incident
// @Description Create an incident with its participants in one transaction. The raw body is kept as the incident snapshot.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Incident id or shcad already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	log := h.logger.WithField("method", "createIncident")

	raw, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Warn("Failed to read request body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var input CreateIncidentRequest
	if err := json.Unmarshal(raw, &input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	model := DTOToIncidentModel(input, raw)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, ID: model.ID, Message: "Incident created successfully"})
}

// @Summary Get all incidents
// @Description Get all incidents, newest first, with participants, assignments, notes, history, police info and arrests.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Export incidents
// @Description Download all incidents as an XLSX workbook.
// @Tags Incidents
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/export [get]
func (h *Handler) exportIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "exportIncidents")

	data, err := h.incidentService.ExportIncidents(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="incidents.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// @Summary Update an existing incident
// @Description Partially update an incident. A body with notes, assignedUsers, victims, witnesses or suspects replaces the stored snapshot.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	raw, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Warn("Failed to read request body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		log.WithError(err).Warn("Request body is not a JSON object")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var input UpdateIncidentRequest
	if err := json.Unmarshal(raw, &input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	update := DTOToIncidentUpdate(input, raw, fields)
	if err := h.incidentService.UpdateIncident(c.Request.Context(), id, update); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Incident updated successfully"})
}

// @Summary Add a note to an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param note body AddNoteRequest true "Note"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/notes [post]
func (h *Handler) addNote(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "addNote").WithField("id", id)

	var input AddNoteRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	note := &models.Note{
		IncidentID: id,
		UserPhone:  input.UserPhone,
		Text:       input.Note,
		IsFollowUp: input.IsFollowUp,
	}
	if err := h.incidentService.AddNote(c.Request.Context(), note); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, ID: note.ID})
}

// @Summary Assign a member to an incident
// @Description Creates a pending assignment and notifies the assignee.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignUserRequest true "Assignee"
// @Success 201 {object} models.Assignment
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/assignments [post]
func (h *Handler) assignUser(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "assignUser").WithField("id", id)

	var input AssignUserRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	assignment, err := h.incidentService.AssignUser(c.Request.Context(), id, input.UserPhone, input.AssignedBy)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// @Summary Accept or decline an assignment
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param assignmentId path int true "Assignment ID"
// @Param response body RespondAssignmentRequest true "Response"
// @Success 200 {object} models.Assignment
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/assignments/{assignmentId} [put]
func (h *Handler) respondAssignment(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "respondAssignment").WithField("id", id)

	assignmentID, ok := int64Param(c, "assignmentId")
	if !ok {
		return
	}

	var input RespondAssignmentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	status := models.AssignmentStatus(input.Status)
	assignment, err := h.incidentService.RespondAssignment(c.Request.Context(), id, assignmentID, status, input.UserPhone)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// @Summary Add police references to an incident
// @Description Appends a police info record; the latest one is reported in the incident list.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param policeInfo body AddPoliceInfoRequest true "Police info"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/police-info [post]
func (h *Handler) addPoliceInfo(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "addPoliceInfo").WithField("id", id)

	var input AddPoliceInfoRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	info := policeInfoToModel(input.PoliceInfoRequest, id)
	if err := h.incidentService.AddPoliceInfo(c.Request.Context(), info, input.UserPhone); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, ID: info.ID})
}

// @Summary Record an arrest
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param arrest body AddArrestRequest true "Arrest"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/arrests [post]
func (h *Handler) addArrest(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "addArrest").WithField("id", id)

	var input AddArrestRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	arrest := &models.Arrest{
		IncidentID: id,
		Name:       input.Name,
		Details:    input.Details,
		ArrestedAt: input.ArrestedAt,
	}
	if err := h.incidentService.AddArrest(c.Request.Context(), arrest, input.UserPhone); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, ID: arrest.ID})
}
