package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/shomrim_dispatch/internal/export"
	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/shenikar/shomrim_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_incident.go -package=mocks github.com/shenikar/shomrim_dispatch/internal/service IncidentRepository,IncidentService

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	List(ctx context.Context) ([]*models.Incident, error)
	Update(ctx context.Context, id string, patch *models.IncidentPatch) error
	AddNote(ctx context.Context, note *models.Note) error
	Assign(ctx context.Context, assignment *models.Assignment, entry *models.HistoryEntry, notification *models.Notification) error
	RespondAssignment(ctx context.Context, assignment *models.Assignment, entry *models.HistoryEntry) error
	AddPoliceInfo(ctx context.Context, info *models.PoliceInfo, entry *models.HistoryEntry) error
	AddArrest(ctx context.Context, arrest *models.Arrest, entry *models.HistoryEntry) error
	ExportRecords(ctx context.Context) ([]models.Record, error)

	GetListFromCache(ctx context.Context) ([]*models.Incident, error)
	ListCacheGeneration(ctx context.Context) (int64, error)
	SetListCache(ctx context.Context, generation int64, incidents []*models.Incident) (bool, error)
	InvalidateListCache(ctx context.Context) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	UpdateIncident(ctx context.Context, id string, update *models.IncidentUpdate) error
	AddNote(ctx context.Context, note *models.Note) error
	AssignUser(ctx context.Context, incidentID, userPhone string, actor *string) (*models.Assignment, error)
	RespondAssignment(ctx context.Context, incidentID string, assignmentID int64, status models.AssignmentStatus, actor *string) (*models.Assignment, error)
	AddPoliceInfo(ctx context.Context, info *models.PoliceInfo, actor *string) error
	AddArrest(ctx context.Context, arrest *models.Arrest, actor *string) error
	ExportIncidents(ctx context.Context) ([]byte, error)
}

type incidentService struct {
	repo      IncidentRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateIncident создает инцидент вместе с участниками
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CreateIncident",
		"incident_id": incident.ID,
		"shcad":       incident.Shcad,
	})
	log.Info("Attempting to create a new incident")

	if err := validateNewIncident(incident); err != nil {
		log.WithError(err).Warn("Rejected invalid incident")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	if strings.TrimSpace(incident.Status) == "" {
		incident.Status = models.StatusPending
	}
	// Пустой объект policeInfo не создаёт строку: иначе она станет "последней" версией
	if incident.PoliceInfo.IsEmpty() {
		incident.PoliceInfo = nil
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.Info("Incident created successfully")
	s.invalidateList(ctx, log)
	s.publish(ctx, log, webhook.EventIncidentCreated, incident.ID, incident.Shcad, incident.CreatedBy, incident.Snapshot)
	return nil
}

// ListIncidents возвращает все инциденты, при наличии - из кэша
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	cached, err := s.repo.GetListFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read incidents from cache")
	}
	if cached != nil {
		log.WithField("count", len(cached)).Debug("Incidents served from cache")
		return cached, nil
	}

	// Поколение читается до запроса к БД: запись, завершившаяся во время List, не даст сохранить устаревший список
	generation, genErr := s.repo.ListCacheGeneration(ctx)
	if genErr != nil {
		log.WithError(genErr).Warn("Failed to read incidents cache generation")
	}

	incidents, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	if genErr == nil {
		stored, err := s.repo.SetListCache(ctx, generation, incidents)
		switch {
		case err != nil:
			log.WithError(err).Warn("Failed to cache incidents")
		case !stored:
			log.Debug("Incidents cache was invalidated during listing, result not cached")
		}
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// UpdateIncident применяет частичное обновление. Если в запросе есть вложенные коллекции,
// запрос целиком заменяет снимок инцидента; дочерние таблицы при этом не меняются.
func (s *incidentService) UpdateIncident(ctx context.Context, id string, update *models.IncidentUpdate) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	if err := validateUpdate(id, update); err != nil {
		log.WithError(err).Warn("Rejected invalid incident update")
		return fmt.Errorf("service: could not update incident: %w", err)
	}

	patch := &models.IncidentPatch{
		Status:      update.Status,
		Title:       update.Title,
		Description: update.Description,
		Address:     update.Address,
		Postcode:    update.Postcode,
	}
	if update.HasNestedCollections() {
		patch.Snapshot = update.Payload
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Attempted to update a non-existent incident")
		} else {
			log.WithError(err).Error("Failed to update incident in repository")
		}
		return fmt.Errorf("service: could not update incident: %w", err)
	}

	log.WithField("snapshot_replaced", patch.Snapshot != nil).Info("Incident updated successfully")
	s.invalidateList(ctx, log)
	s.publish(ctx, log, webhook.EventIncidentUpdated, id, "", nil, update.Payload)
	return nil
}

// AddNote добавляет заметку к инциденту
func (s *incidentService) AddNote(ctx context.Context, note *models.Note) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AddNote",
		"incident_id": note.IncidentID,
	})

	if strings.TrimSpace(note.UserPhone) == "" {
		return fmt.Errorf("service: could not add note: %w", invalid("user_phone is required"))
	}
	if strings.TrimSpace(note.Text) == "" {
		return fmt.Errorf("service: could not add note: %w", invalid("note is required"))
	}

	if err := s.repo.AddNote(ctx, note); err != nil {
		log.WithError(err).Error("Failed to add note in repository")
		return fmt.Errorf("service: could not add note: %w", err)
	}

	log.WithField("note_id", note.ID).Info("Note added successfully")
	s.invalidateList(ctx, log)
	s.publish(ctx, log, webhook.EventIncidentNoteAdded, note.IncidentID, "", &note.UserPhone, note)
	return nil
}

// AssignUser назначает участника группы на инцидент и уведомляет его
func (s *incidentService) AssignUser(ctx context.Context, incidentID, userPhone string, actor *string) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AssignUser",
		"incident_id": incidentID,
		"user_phone":  userPhone,
	})

	if strings.TrimSpace(userPhone) == "" {
		return nil, fmt.Errorf("service: could not assign user: %w", invalid("user_phone is required"))
	}

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign to a non-existent incident")
		return nil, fmt.Errorf("service: could not assign user: %w", err)
	}

	assignment := &models.Assignment{
		IncidentID: incidentID,
		UserPhone:  userPhone,
		Status:     models.AssignmentPending,
	}
	details := "Assigned to " + userPhone
	entry := &models.HistoryEntry{IncidentID: incidentID, UserPhone: actor, Action: "assigned", Details: &details}
	notification := &models.Notification{
		UserPhone:  userPhone,
		Title:      "New Incident Request",
		Message:    "You have been assigned to incident " + incident.Shcad,
		Type:       "incident_assigned",
		IncidentID: &incidentID,
	}

	if err := s.repo.Assign(ctx, assignment, entry, notification); err != nil {
		log.WithError(err).Error("Failed to assign user in repository")
		return nil, fmt.Errorf("service: could not assign user: %w", err)
	}

	log.WithField("assignment_id", assignment.ID).Info("User assigned successfully")
	s.invalidateList(ctx, log)
	s.publish(ctx, log, webhook.EventIncidentAssigned, incidentID, incident.Shcad, actor, assignment)
	return assignment, nil
}

// RespondAssignment принимает или отклоняет назначение
func (s *incidentService) RespondAssignment(ctx context.Context, incidentID string, assignmentID int64, status models.AssignmentStatus, actor *string) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "RespondAssignment",
		"incident_id":   incidentID,
		"assignment_id": assignmentID,
	})

	var action, verb string
	switch status {
	case models.AssignmentAccepted:
		action, verb = "request_accepted", "accepted"
	case models.AssignmentDeclined:
		action, verb = "request_declined", "declined"
	default:
		return nil, fmt.Errorf("service: could not respond to assignment: %w", invalid("status must be accepted or declined"))
	}

	assignment := &models.Assignment{ID: assignmentID, IncidentID: incidentID, Status: status}
	details := "Request " + verb
	if actor != nil {
		details = fmt.Sprintf("Request %s by %s", verb, *actor)
	}
	entry := &models.HistoryEntry{IncidentID: incidentID, UserPhone: actor, Action: action, Details: &details}

	if err := s.repo.RespondAssignment(ctx, assignment, entry); err != nil {
		log.WithError(err).Error("Failed to respond to assignment in repository")
		return nil, fmt.Errorf("service: could not respond to assignment: %w", err)
	}

	log.WithField("status", status).Info("Assignment response recorded")
	s.invalidateList(ctx, log)
	return assignment, nil
}

// AddPoliceInfo добавляет ссылки на полицейские дела
func (s *incidentService) AddPoliceInfo(ctx context.Context, info *models.PoliceInfo, actor *string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AddPoliceInfo",
		"incident_id": info.IncidentID,
	})

	details := "Police information updated"
	entry := &models.HistoryEntry{IncidentID: info.IncidentID, UserPhone: actor, Action: "police_info_updated", Details: &details}
	if err := s.repo.AddPoliceInfo(ctx, info, entry); err != nil {
		log.WithError(err).Error("Failed to add police info in repository")
		return fmt.Errorf("service: could not add police info: %w", err)
	}

	log.Info("Police info added successfully")
	s.invalidateList(ctx, log)
	return nil
}

// AddArrest фиксирует задержание по инциденту
func (s *incidentService) AddArrest(ctx context.Context, arrest *models.Arrest, actor *string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AddArrest",
		"incident_id": arrest.IncidentID,
	})

	if strings.TrimSpace(arrest.Name) == "" {
		return fmt.Errorf("service: could not record arrest: %w", invalid("name is required"))
	}

	details := "Arrest recorded: " + arrest.Name
	entry := &models.HistoryEntry{IncidentID: arrest.IncidentID, UserPhone: actor, Action: "arrest_recorded", Details: &details}
	if err := s.repo.AddArrest(ctx, arrest, entry); err != nil {
		log.WithError(err).Error("Failed to record arrest in repository")
		return fmt.Errorf("service: could not record arrest: %w", err)
	}

	log.WithField("arrest_id", arrest.ID).Info("Arrest recorded successfully")
	s.invalidateList(ctx, log)
	return nil
}

// ExportIncidents выгружает инциденты в XLSX
func (s *incidentService) ExportIncidents(ctx context.Context) ([]byte, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ExportIncidents",
	})

	records, err := s.repo.ExportRecords(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read incidents for export")
		return nil, fmt.Errorf("service: could not export incidents: %w", err)
	}

	data, err := export.Workbook("Incidents", records)
	if err != nil {
		log.WithError(err).Error("Failed to build export workbook")
		return nil, fmt.Errorf("service: could not export incidents: %w", err)
	}

	log.WithField("rows", len(records)).Info("Incidents exported successfully")
	return data, nil
}

// invalidateList сбрасывает кэш списка. Ошибка кэша не прерывает операцию.
func (s *incidentService) invalidateList(ctx context.Context, log *logrus.Entry) {
	if err := s.repo.InvalidateListCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate incidents cache")
	}
}

// publish ставит событие в очередь вебхуков. Ошибка публикации не прерывает операцию.
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, eventType, incidentID, shcad string, actor *string, data any) {
	event := webhook.NewIncidentEvent(eventType, incidentID, data)
	event.Shcad = shcad
	if actor != nil {
		event.Actor = *actor
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
}

func validateNewIncident(incident *models.Incident) error {
	required := []struct {
		field string
		value string
	}{
		{"id", incident.ID},
		{"shcad", incident.Shcad},
		{"title", incident.Title},
		{"type", incident.Type},
		{"description", incident.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalid("%s is required", r.field)
		}
	}

	for _, p := range incident.Participants() {
		if strings.TrimSpace(p.Name) == "" {
			return invalid("%s name is required", p.Role)
		}
	}

	if len(incident.Snapshot) > 0 && !json.Valid(incident.Snapshot) {
		return invalid("metadata is not valid JSON")
	}
	return nil
}

func validateUpdate(id string, update *models.IncidentUpdate) error {
	if strings.TrimSpace(id) == "" {
		return invalid("incident id is required")
	}

	raw, ok := update.Fields["id"]
	if !ok || string(raw) == "null" {
		return nil
	}
	var payloadID string
	if err := json.Unmarshal(raw, &payloadID); err != nil {
		return invalid("id must be a string")
	}
	if payloadID != id {
		return invalid("payload id %q does not match incident %q", payloadID, id)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", models.ErrValidation, fmt.Sprintf(format, args...))
}
