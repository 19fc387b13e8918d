package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/shenikar/shomrim_dispatch/internal/service"
)

const (
	incidentListCacheKey      = "incidents:list"
	incidentListGenerationKey = "incidents:list:generation"
)

const selectIncidentColumns = `
	SELECT
		id,
		shcad,
		title,
		type,
		description,
		status,
		address,
		postcode,
		caller_name,
		caller_phone,
		caller_is_victim,
		caller_is_witness,
		metadata,
		created_by,
		created_at,
		updated_at
	FROM incidents
`

type IncidentRepository struct {
	gw          *Gateway
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(gw *Gateway, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		gw:          gw,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create сохраняет инцидент, его участников, данные полиции и запись истории в одной транзакции
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	return r.gw.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		query := `
			INSERT INTO incidents (
				id, shcad, title, type, description, status, address, postcode,
				caller_name, caller_phone, caller_is_victim, caller_is_witness,
				metadata, created_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING created_at, updated_at;
		`
		err := tx.QueryRow(ctx, query,
			incident.ID,
			incident.Shcad,
			incident.Title,
			incident.Type,
			incident.Description,
			incident.Status,
			incident.Address,
			incident.Postcode,
			incident.Caller.Name,
			incident.Caller.Phone,
			incident.Caller.IsVictim,
			incident.Caller.IsWitness,
			snapshotArg(incident.Snapshot),
			incident.CreatedBy,
		).Scan(&incident.CreatedAt, &incident.UpdatedAt)
		if err != nil {
			return translateError("failed to create incident", err)
		}

		for _, p := range incident.Participants() {
			if err := insertParticipant(ctx, tx, &p); err != nil {
				return err
			}
		}

		if !incident.PoliceInfo.IsEmpty() {
			incident.PoliceInfo.IncidentID = incident.ID
			if err := insertPoliceInfo(ctx, tx, incident.PoliceInfo); err != nil {
				return err
			}
		}

		details := "Incident created: " + incident.Title
		return insertHistory(ctx, tx, &models.HistoryEntry{
			IncidentID: incident.ID,
			UserPhone:  incident.CreatedBy,
			Action:     "created",
			Details:    &details,
		})
	})
}

// GetByID возвращает строку инцидента без дочерних записей
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	row := r.gw.Pool().QueryRow(ctx, selectIncidentColumns+" WHERE id = $1", id)
	incident, err := scanIncident(row)
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to get incident %s", id), err)
	}
	return incident, nil
}

// List возвращает все инциденты вместе с дочерними записями, новые первыми.
// Все чтения идут в одной read-only транзакции, поэтому агрегаты согласованы между собой.
func (r *IncidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	var incidents []*models.Incident
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := r.gw.WithTx(ctx, opts, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectIncidentColumns+" ORDER BY created_at DESC, id")
		if err != nil {
			return translateError("failed to list incidents", err)
		}
		incidents, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Incident, error) {
			return scanIncident(row)
		})
		if err != nil {
			return translateError("failed to scan incident row", err)
		}

		for _, incident := range incidents {
			if err := loadChildren(ctx, tx, incident); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if incidents == nil {
		incidents = make([]*models.Incident, 0)
	}
	return incidents, nil
}

// Update применяет частичное обновление одним запросом. updated_at обновляется всегда.
func (r *IncidentRepository) Update(ctx context.Context, id string, patch *models.IncidentPatch) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 7)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}
	if patch.Postcode != nil {
		set("postcode", *patch.Postcode)
	}
	if patch.Snapshot != nil {
		set("metadata", []byte(patch.Snapshot))
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE incidents SET %s WHERE id = $%d;", strings.Join(sets, ", "), len(args))
	cmdTag, err := r.gw.Pool().Exec(ctx, query, args...)
	if err != nil {
		return translateError("failed to update incident", err)
	}

	// RowsAffected() == 0 значит инцидента с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for update: %w", id, models.ErrNotFound)
	}
	return nil
}

// AddNote добавляет заметку. updated_at и история инцидента не меняются.
func (r *IncidentRepository) AddNote(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO incident_notes (incident_id, user_phone, note, is_follow_up)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.gw.Pool().QueryRow(ctx, query,
		note.IncidentID,
		note.UserPhone,
		note.Text,
		note.IsFollowUp,
	).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("incident with id %s not found for note: %w", note.IncidentID, models.ErrNotFound)
		}
		return translateError("failed to add note", err)
	}
	return nil
}

// Assign назначает участника группы на инцидент и создаёт для него уведомление
func (r *IncidentRepository) Assign(ctx context.Context, assignment *models.Assignment, entry *models.HistoryEntry, notification *models.Notification) error {
	return r.gw.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		query := `
			INSERT INTO incident_assignments (incident_id, user_phone, status)
			VALUES ($1, $2, $3) RETURNING id, assigned_at;
		`
		err := tx.QueryRow(ctx, query,
			assignment.IncidentID,
			assignment.UserPhone,
			assignment.Status,
		).Scan(&assignment.ID, &assignment.AssignedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("incident with id %s not found for assignment: %w", assignment.IncidentID, models.ErrNotFound)
			}
			return translateError("failed to assign user", err)
		}

		if err := insertHistory(ctx, tx, entry); err != nil {
			return err
		}

		query = `
			INSERT INTO notifications (user_phone, title, message, type, incident_id)
			VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
		`
		err = tx.QueryRow(ctx, query,
			notification.UserPhone,
			notification.Title,
			notification.Message,
			notification.Type,
			notification.IncidentID,
		).Scan(&notification.ID, &notification.CreatedAt)
		if err != nil {
			return translateError("failed to create assignment notification", err)
		}
		return nil
	})
}

// RespondAssignment сохраняет ответ на назначение
func (r *IncidentRepository) RespondAssignment(ctx context.Context, assignment *models.Assignment, entry *models.HistoryEntry) error {
	return r.gw.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		query := `
			UPDATE incident_assignments SET status = $1
			WHERE id = $2 AND incident_id = $3
			RETURNING user_phone, assigned_at;
		`
		err := tx.QueryRow(ctx, query,
			assignment.Status,
			assignment.ID,
			assignment.IncidentID,
		).Scan(&assignment.UserPhone, &assignment.AssignedAt)
		if err != nil {
			return translateError(fmt.Sprintf("failed to update assignment %d", assignment.ID), err)
		}
		return insertHistory(ctx, tx, entry)
	})
}

// AddPoliceInfo добавляет новую версию данных полиции. Актуальной считается последняя.
func (r *IncidentRepository) AddPoliceInfo(ctx context.Context, info *models.PoliceInfo, entry *models.HistoryEntry) error {
	return r.gw.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if err := insertPoliceInfo(ctx, tx, info); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("incident with id %s not found for police info: %w", info.IncidentID, models.ErrNotFound)
			}
			return err
		}
		return insertHistory(ctx, tx, entry)
	})
}

func (r *IncidentRepository) AddArrest(ctx context.Context, arrest *models.Arrest, entry *models.HistoryEntry) error {
	return r.gw.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		query := `
			INSERT INTO incident_arrests (incident_id, name, details, arrested_at)
			VALUES ($1, $2, $3, COALESCE($4, NOW())) RETURNING id, arrested_at;
		`
		err := tx.QueryRow(ctx, query,
			arrest.IncidentID,
			arrest.Name,
			arrest.Details,
			arrest.ArrestedAt,
		).Scan(&arrest.ID, &arrest.ArrestedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("incident with id %s not found for arrest: %w", arrest.IncidentID, models.ErrNotFound)
			}
			return translateError("failed to record arrest", err)
		}
		return insertHistory(ctx, tx, entry)
	})
}

// ExportRecords возвращает строки incidents для выгрузки, с порядком колонок как в запросе
func (r *IncidentRepository) ExportRecords(ctx context.Context) ([]models.Record, error) {
	query := `
		SELECT
			id, shcad, title, type, status, description, address, postcode,
			caller_name, caller_phone, caller_is_victim, caller_is_witness,
			created_by, created_at, updated_at
		FROM incidents
		ORDER BY created_at DESC;
	`
	return r.gw.QueryRecords(ctx, query)
}

// GetListFromCache пытается получить список инцидентов из Redis. nil без ошибки - кэш пуст.
func (r *IncidentRepository) GetListFromCache(ctx context.Context) ([]*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentListCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incidents from cache: %w", err)
	}

	incidents := make([]*models.Incident, 0)
	if err := json.Unmarshal(val, &incidents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incidents from cache: %w", err)
	}
	return incidents, nil
}

// ListCacheGeneration возвращает текущее поколение кэша списка. Каждая инвалидация его увеличивает.
func (r *IncidentRepository) ListCacheGeneration(ctx context.Context) (int64, error) {
	generation, err := readGeneration(r.redisClient.Get(ctx, incidentListGenerationKey))
	if err != nil {
		return 0, fmt.Errorf("failed to get incidents cache generation: %w", err)
	}
	return generation, nil
}

// SetListCache сохраняет список инцидентов в Redis, если с момента чтения generation
// не было инвалидации. false без ошибки - список устарел и не записан.
func (r *IncidentRepository) SetListCache(ctx context.Context, generation int64, incidents []*models.Incident) (bool, error) {
	val, err := json.Marshal(incidents)
	if err != nil {
		return false, fmt.Errorf("failed to marshal incidents for cache: %w", err)
	}

	stored := false
	err = r.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(tx.Get(ctx, incidentListGenerationKey))
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, incidentListCacheKey, val, r.cacheTTL)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, incidentListGenerationKey)

	// Инвалидация между WATCH и EXEC
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to set incidents in cache: %w", err)
	}
	return stored, nil
}

// InvalidateListCache удаляет список инцидентов из Redis и сдвигает поколение кэша
func (r *IncidentRepository) InvalidateListCache(ctx context.Context) error {
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, incidentListGenerationKey)
		pipe.Del(ctx, incidentListCacheKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate incidents cache: %w", err)
	}
	return nil
}

func readGeneration(cmd *redis.StringCmd) (int64, error) {
	generation, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func snapshotArg(snapshot json.RawMessage) any {
	if len(snapshot) == 0 {
		return nil
	}
	return []byte(snapshot)
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var snapshot []byte
	err := row.Scan(
		&incident.ID,
		&incident.Shcad,
		&incident.Title,
		&incident.Type,
		&incident.Description,
		&incident.Status,
		&incident.Address,
		&incident.Postcode,
		&incident.Caller.Name,
		&incident.Caller.Phone,
		&incident.Caller.IsVictim,
		&incident.Caller.IsWitness,
		&snapshot,
		&incident.CreatedBy,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(snapshot) > 0 {
		incident.Snapshot = json.RawMessage(snapshot)
	}
	return incident, nil
}

func insertParticipant(ctx context.Context, tx pgx.Tx, p *models.Participant) error {
	query := `
		INSERT INTO incident_participants (incident_id, type, name, phone, address, description)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	err := tx.QueryRow(ctx, query, p.IncidentID, p.Role, p.Name, p.Phone, p.Address, p.Description).Scan(&p.ID)
	if err != nil {
		return translateError(fmt.Sprintf("failed to insert %s", p.Role), err)
	}
	return nil
}

func insertPoliceInfo(ctx context.Context, tx pgx.Tx, info *models.PoliceInfo) error {
	query := `
		INSERT INTO incident_police_info (incident_id, cad_ref, cris_ref, chs_ref, officer_name, officer_badge)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	err := tx.QueryRow(ctx, query,
		info.IncidentID,
		info.CadRef,
		info.CrisRef,
		info.ChsRef,
		info.OfficerName,
		info.OfficerBadge,
	).Scan(&info.ID)
	if err != nil {
		return translateError("failed to insert police info", err)
	}
	return nil
}

func insertHistory(ctx context.Context, tx pgx.Tx, entry *models.HistoryEntry) error {
	query := `
		INSERT INTO incident_history (incident_id, user_phone, action, details)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := tx.QueryRow(ctx, query, entry.IncidentID, entry.UserPhone, entry.Action, entry.Details).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return translateError("failed to insert history entry", err)
	}
	return nil
}

// loadChildren заполняет дочерние коллекции инцидента. Пустые коллекции - пустые срезы, не nil.
func loadChildren(ctx context.Context, tx pgx.Tx, incident *models.Incident) error {
	incident.Victims = make([]models.Participant, 0)
	incident.Witnesses = make([]models.Participant, 0)
	incident.Suspects = make([]models.Participant, 0)

	rows, err := tx.Query(ctx, `
		SELECT id, incident_id, type, name, phone, address, description
		FROM incident_participants WHERE incident_id = $1 ORDER BY id;
	`, incident.ID)
	if err != nil {
		return translateError("failed to load participants", err)
	}
	participants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Participant, error) {
		var p models.Participant
		err := row.Scan(&p.ID, &p.IncidentID, &p.Role, &p.Name, &p.Phone, &p.Address, &p.Description)
		return p, err
	})
	if err != nil {
		return translateError("failed to scan participant row", err)
	}
	for _, p := range participants {
		switch p.Role {
		case models.RoleVictim:
			incident.Victims = append(incident.Victims, p)
		case models.RoleWitness:
			incident.Witnesses = append(incident.Witnesses, p)
		case models.RoleSuspect:
			incident.Suspects = append(incident.Suspects, p)
		}
	}

	rows, err = tx.Query(ctx, `
		SELECT id, incident_id, user_phone, status, assigned_at
		FROM incident_assignments WHERE incident_id = $1 ORDER BY assigned_at, id;
	`, incident.ID)
	if err != nil {
		return translateError("failed to load assignments", err)
	}
	incident.Assignments, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Assignment, error) {
		var a models.Assignment
		err := row.Scan(&a.ID, &a.IncidentID, &a.UserPhone, &a.Status, &a.AssignedAt)
		return a, err
	})
	if err != nil {
		return translateError("failed to scan assignment row", err)
	}

	rows, err = tx.Query(ctx, `
		SELECT id, incident_id, user_phone, note, is_follow_up, created_at
		FROM incident_notes WHERE incident_id = $1 ORDER BY created_at, id;
	`, incident.ID)
	if err != nil {
		return translateError("failed to load notes", err)
	}
	incident.Notes, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Note, error) {
		var n models.Note
		err := row.Scan(&n.ID, &n.IncidentID, &n.UserPhone, &n.Text, &n.IsFollowUp, &n.CreatedAt)
		return n, err
	})
	if err != nil {
		return translateError("failed to scan note row", err)
	}

	rows, err = tx.Query(ctx, `
		SELECT id, incident_id, user_phone, action, details, created_at
		FROM incident_history WHERE incident_id = $1 ORDER BY created_at, id;
	`, incident.ID)
	if err != nil {
		return translateError("failed to load history", err)
	}
	incident.History, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.HistoryEntry, error) {
		var h models.HistoryEntry
		err := row.Scan(&h.ID, &h.IncidentID, &h.UserPhone, &h.Action, &h.Details, &h.CreatedAt)
		return h, err
	})
	if err != nil {
		return translateError("failed to scan history row", err)
	}

	info := &models.PoliceInfo{}
	err = tx.QueryRow(ctx, `
		SELECT id, incident_id, cad_ref, cris_ref, chs_ref, officer_name, officer_badge
		FROM incident_police_info WHERE incident_id = $1 ORDER BY id DESC LIMIT 1;
	`, incident.ID).Scan(&info.ID, &info.IncidentID, &info.CadRef, &info.CrisRef, &info.ChsRef, &info.OfficerName, &info.OfficerBadge)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return translateError("failed to load police info", err)
		}
		info = &models.PoliceInfo{}
	}
	incident.PoliceInfo = info

	rows, err = tx.Query(ctx, `
		SELECT id, incident_id, name, details, arrested_at
		FROM incident_arrests WHERE incident_id = $1 ORDER BY id;
	`, incident.ID)
	if err != nil {
		return translateError("failed to load arrests", err)
	}
	incident.Arrests, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Arrest, error) {
		var a models.Arrest
		err := row.Scan(&a.ID, &a.IncidentID, &a.Name, &a.Details, &a.ArrestedAt)
		return a, err
	})
	if err != nil {
		return translateError("failed to scan arrest row", err)
	}
	return nil
}
