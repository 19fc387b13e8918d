package v1

import (
	"encoding/json"

	"github.com/shenikar/shomrim_dispatch/internal/models"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель. raw - исходное тело запроса, оно становится снимком.
func DTOToIncidentModel(dto CreateIncidentRequest, raw []byte) *models.Incident {
	incident := &models.Incident{
		ID:          dto.ID,
		Shcad:       dto.Shcad,
		Title:       dto.Title,
		Type:        dto.Type,
		Description: dto.Description,
		Status:      dto.Status,
		Address:     dto.Address,
		Postcode:    dto.Postcode,
		CreatedBy:   dto.CreatedBy,
		Snapshot:    json.RawMessage(raw),
		Victims:     participantsToModels(dto.Victims),
		Witnesses:   participantsToModels(dto.Witnesses),
		Suspects:    participantsToModels(dto.Suspects),
	}
	if dto.Caller != nil {
		incident.Caller = models.Caller{
			Name:      dto.Caller.Name,
			Phone:     dto.Caller.Phone,
			IsVictim:  dto.Caller.IsVictim,
			IsWitness: dto.Caller.IsWitness,
		}
	}
	if dto.PoliceInfo != nil {
		if info := policeInfoToModel(*dto.PoliceInfo, dto.ID); !info.IsEmpty() {
			incident.PoliceInfo = info
		}
	}
	return incident
}

func participantsToModels(dtos []ParticipantRequest) []models.Participant {
	participants := make([]models.Participant, 0, len(dtos))
	for _, p := range dtos {
		participants = append(participants, models.Participant{
			Name:        p.Name,
			Phone:       p.Phone,
			Address:     p.Address,
			Description: p.Description,
		})
	}
	return participants
}

func policeInfoToModel(dto PoliceInfoRequest, incidentID string) *models.PoliceInfo {
	return &models.PoliceInfo{
		IncidentID:   incidentID,
		CadRef:       dto.CadRef,
		CrisRef:      dto.CrisRef,
		ChsRef:       dto.ChsRef,
		OfficerName:  dto.OfficerName,
		OfficerBadge: dto.OfficerBadge,
	}
}

// DTOToIncidentUpdate собирает частичное обновление из разобранного DTO и ключей тела
func DTOToIncidentUpdate(dto UpdateIncidentRequest, raw []byte, fields map[string]json.RawMessage) *models.IncidentUpdate {
	return &models.IncidentUpdate{
		Status:      dto.Status,
		Title:       dto.Title,
		Description: dto.Description,
		Address:     dto.Address,
		Postcode:    dto.Postcode,
		Payload:     json.RawMessage(raw),
		Fields:      fields,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:              model.ID,
		Shcad:           model.Shcad,
		Title:           model.Title,
		Type:            model.Type,
		Description:     model.Description,
		Status:          model.Status,
		Address:         model.Address,
		Postcode:        model.Postcode,
		CallerName:      model.Caller.Name,
		CallerPhone:     model.Caller.Phone,
		CallerIsVictim:  model.Caller.IsVictim,
		CallerIsWitness: model.Caller.IsWitness,
		Metadata:        model.Snapshot,
		CreatedBy:       model.CreatedBy,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		Victims:         nonNil(model.Victims),
		Witnesses:       nonNil(model.Witnesses),
		Suspects:        nonNil(model.Suspects),
		AssignedUsers:   nonNil(model.Assignments),
		Notes:           nonNil(model.Notes),
		History:         nonNil(model.History),
		PoliceInfo:      policeInfoOrEmpty(model.PoliceInfo),
		Arrests:         nonNil(model.Arrests),
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// nonNil гарантирует, что коллекция сериализуется как [], а не null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func policeInfoOrEmpty(info *models.PoliceInfo) *models.PoliceInfo {
	if info == nil {
		return &models.PoliceInfo{}
	}
	return info
}

func DTOToUserModel(dto SaveUserRequest) *models.User {
	return &models.User{
		Phone:    dto.Phone,
		Name:     dto.Name,
		Email:    dto.Email,
		Callsign: dto.Callsign,
		Role:     dto.Role,
		Avatar:   dto.Avatar,
	}
}

func DTOToContactModel(dto ContactRequest) *models.Contact {
	return &models.Contact{
		Name:         dto.Name,
		Phone:        dto.Phone,
		Email:        dto.Email,
		Address:      dto.Address,
		Organization: dto.Organization,
		Notes:        dto.Notes,
		UserPhone:    dto.UserPhone,
	}
}

func DTOToSuspectModel(dto SuspectRequest) *models.Suspect {
	return &models.Suspect{
		Name:                dto.Name,
		Alias:               dto.Alias,
		DateOfBirth:         dto.DateOfBirth,
		PhysicalDescription: dto.PhysicalDescription,
		Photo:               dto.Photo,
		LastKnownAddress:    dto.LastKnownAddress,
		Phone:               dto.Phone,
		Email:               dto.Email,
		KnownAssociates:     dto.KnownAssociates,
		CriminalHistory:     dto.CriminalHistory,
		Notes:               dto.Notes,
		CreatedBy:           dto.CreatedBy,
	}
}

func DTOToVehicleModel(dto VehicleRequest) *models.Vehicle {
	return &models.Vehicle{
		Registration: dto.Registration,
		Make:         dto.Make,
		Model:        dto.Model,
		Color:        dto.Color,
		Year:         dto.Year,
		VIN:          dto.VIN,
		OwnerName:    dto.OwnerName,
		OwnerAddress: dto.OwnerAddress,
		OwnerPhone:   dto.OwnerPhone,
		Status:       dto.Status,
		AssignedTo:   dto.AssignedTo,
		Notes:        dto.Notes,
		Photo:        dto.Photo,
		CreatedBy:    dto.CreatedBy,
	}
}
