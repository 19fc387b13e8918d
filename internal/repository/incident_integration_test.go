//go:build integration

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationIncident(id string, victims, witnesses, suspects int) *models.Incident {
	inc := &models.Incident{
		ID:          id,
		Shcad:       "SHCAD-" + id,
		Title:       "Break-in " + id,
		Type:        "burglary",
		Description: "rear window forced",
		Status:      models.StatusPending,
		Caller:      models.Caller{Name: strPtr("Caller"), IsVictim: true},
		CreatedBy:   strPtr("+447700900001"),
		Snapshot:    json.RawMessage(fmt.Sprintf(`{"id":%q,"extra":"kept"}`, id)),
	}
	for i := 0; i < victims; i++ {
		inc.Victims = append(inc.Victims, models.Participant{Name: fmt.Sprintf("victim-%d", i)})
	}
	for i := 0; i < witnesses; i++ {
		inc.Witnesses = append(inc.Witnesses, models.Participant{Name: fmt.Sprintf("witness-%d", i)})
	}
	for i := 0; i < suspects; i++ {
		inc.Suspects = append(inc.Suspects, models.Participant{Name: fmt.Sprintf("suspect-%d", i), Description: strPtr("tall")})
	}
	return inc
}

func TestIncidentRepository_CreateListRoundTrip(t *testing.T) {
	// Подготовка
	repo := NewIncidentRepository(NewGateway(openIntegrationPool(t)), nil, 0)
	ctx := context.Background()

	// Действие
	require.NoError(t, repo.Create(ctx, newIntegrationIncident("inc-a", 2, 1, 3)))
	require.NoError(t, repo.Create(ctx, newIntegrationIncident("inc-b", 0, 0, 0)))
	incidents, err := repo.List(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 2)

	byID := map[string]*models.Incident{}
	for _, inc := range incidents {
		byID[inc.ID] = inc
	}

	a := byID["inc-a"]
	require.NotNil(t, a)
	assert.Len(t, a.Victims, 2)
	assert.Len(t, a.Witnesses, 1)
	assert.Len(t, a.Suspects, 3)
	for _, s := range a.Suspects {
		assert.Equal(t, models.RoleSuspect, s.Role)
	}
	require.Len(t, a.History, 1)
	assert.Equal(t, "created", a.History[0].Action)
	assert.Equal(t, "Incident created: Break-in inc-a", *a.History[0].Details)
	assert.JSONEq(t, `{"id":"inc-a","extra":"kept"}`, string(a.Snapshot))

	b := byID["inc-b"]
	require.NotNil(t, b)
	assert.NotNil(t, b.Victims)
	assert.Empty(t, b.Victims)
	assert.NotNil(t, b.Notes)
	assert.Equal(t, &models.PoliceInfo{}, b.PoliceInfo)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"victims":[]`)
	assert.Contains(t, string(data), `"policeInfo":{}`)
}

func TestIncidentRepository_CreateDuplicateRollsBack(t *testing.T) {
	pool := openIntegrationPool(t)
	repo := NewIncidentRepository(NewGateway(pool), nil, 0)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newIntegrationIncident("inc-a", 1, 0, 0)))

	dup := newIntegrationIncident("inc-z", 4, 0, 0)
	dup.Shcad = "SHCAD-inc-a"
	err := repo.Create(ctx, dup)

	assert.ErrorIs(t, err, models.ErrConflict)
	var participants int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM incident_participants").Scan(&participants))
	assert.Equal(t, 1, participants)
}

func TestIncidentRepository_UpdateStatusOnly(t *testing.T) {
	// Подготовка
	repo := NewIncidentRepository(NewGateway(openIntegrationPool(t)), nil, 0)
	ctx := context.Background()
	inc := newIntegrationIncident("inc-a", 1, 1, 1)
	require.NoError(t, repo.Create(ctx, inc))

	// Действие
	status := "resolved"
	require.NoError(t, repo.Update(ctx, "inc-a", &models.IncidentPatch{Status: &status}))

	// Проверки
	incidents, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	got := incidents[0]
	assert.Equal(t, "resolved", got.Status)
	assert.JSONEq(t, string(inc.Snapshot), string(got.Snapshot))
	assert.Len(t, got.Victims, 1)
	assert.Len(t, got.Witnesses, 1)
	assert.Len(t, got.Suspects, 1)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestIncidentRepository_UpdateSnapshotAlwaysRewritten(t *testing.T) {
	// Подготовка
	pool := openIntegrationPool(t)
	repo := NewIncidentRepository(NewGateway(pool), nil, 0)
	ctx := context.Background()
	inc := newIntegrationIncident("inc-a", 0, 0, 0)
	require.NoError(t, repo.Create(ctx, inc))

	var before time.Time
	require.NoError(t, pool.QueryRow(ctx, "SELECT updated_at FROM incidents WHERE id = 'inc-a'").Scan(&before))

	// Действие: тот же снимок еще раз
	require.NoError(t, repo.Update(ctx, "inc-a", &models.IncidentPatch{Snapshot: inc.Snapshot}))

	// Проверки
	var (
		after    time.Time
		metadata []byte
	)
	require.NoError(t, pool.QueryRow(ctx, "SELECT updated_at, metadata FROM incidents WHERE id = 'inc-a'").Scan(&after, &metadata))
	assert.True(t, after.After(before))
	assert.JSONEq(t, string(inc.Snapshot), string(metadata))
}

func TestIncidentRepository_CreateWithEmptyPoliceInfo(t *testing.T) {
	pool := openIntegrationPool(t)
	repo := NewIncidentRepository(NewGateway(pool), nil, 0)
	ctx := context.Background()
	inc := newIntegrationIncident("inc-a", 0, 0, 0)
	inc.PoliceInfo = &models.PoliceInfo{IncidentID: "inc-a"}

	require.NoError(t, repo.Create(ctx, inc))

	var rows int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM incident_police_info WHERE incident_id = 'inc-a'").Scan(&rows))
	assert.Zero(t, rows)
}

func TestIncidentRepository_UpdateMissing(t *testing.T) {
	repo := NewIncidentRepository(NewGateway(openIntegrationPool(t)), nil, 0)
	status := "resolved"

	err := repo.Update(context.Background(), "nope", &models.IncidentPatch{Status: &status})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIncidentRepository_NotesAndPoliceInfo(t *testing.T) {
	// Подготовка
	repo := NewIncidentRepository(NewGateway(openIntegrationPool(t)), nil, 0)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newIntegrationIncident("inc-a", 0, 0, 0)))

	// Действие
	require.NoError(t, repo.AddNote(ctx, &models.Note{IncidentID: "inc-a", UserPhone: "+441", Text: "first"}))
	require.NoError(t, repo.AddNote(ctx, &models.Note{IncidentID: "inc-a", UserPhone: "+441", Text: "second", IsFollowUp: true}))
	missing := repo.AddNote(ctx, &models.Note{IncidentID: "nope", UserPhone: "+441", Text: "lost"})

	for _, ref := range []string{"CAD-1", "CAD-2"} {
		details := "updated"
		require.NoError(t, repo.AddPoliceInfo(ctx,
			&models.PoliceInfo{IncidentID: "inc-a", CadRef: strPtr(ref)},
			&models.HistoryEntry{IncidentID: "inc-a", Action: "police_info_updated", Details: &details},
		))
	}

	// Проверки
	assert.ErrorIs(t, missing, models.ErrNotFound)
	incidents, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	require.Len(t, incidents[0].Notes, 2)
	assert.Equal(t, "first", incidents[0].Notes[0].Text)
	assert.True(t, incidents[0].Notes[1].IsFollowUp)
	assert.Equal(t, "CAD-2", *incidents[0].PoliceInfo.CadRef)
	assert.Len(t, incidents[0].History, 3)
}

func TestIncidentRepository_AssignAndRespond(t *testing.T) {
	pool := openIntegrationPool(t)
	repo := NewIncidentRepository(NewGateway(pool), nil, 0)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newIntegrationIncident("inc-a", 0, 0, 0)))

	incidentID := "inc-a"
	assignment := &models.Assignment{IncidentID: "inc-a", UserPhone: "+442", Status: models.AssignmentPending}
	require.NoError(t, repo.Assign(ctx, assignment,
		&models.HistoryEntry{IncidentID: "inc-a", Action: "assigned"},
		&models.Notification{UserPhone: "+442", Title: "New assignment", Message: "m", Type: "assignment", IncidentID: &incidentID},
	))
	assert.NotZero(t, assignment.ID)

	assignment.Status = models.AssignmentAccepted
	require.NoError(t, repo.RespondAssignment(ctx, assignment, &models.HistoryEntry{IncidentID: "inc-a", Action: "assignment_accepted"}))

	missing := &models.Assignment{ID: assignment.ID + 100, IncidentID: "inc-a", Status: models.AssignmentDeclined}
	assert.ErrorIs(t, repo.RespondAssignment(ctx, missing, &models.HistoryEntry{IncidentID: "inc-a", Action: "x"}), models.ErrNotFound)

	incidents, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, incidents[0].Assignments, 1)
	assert.Equal(t, models.AssignmentAccepted, incidents[0].Assignments[0].Status)

	var notifications int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM notifications WHERE user_phone = '+442'").Scan(&notifications))
	assert.Equal(t, 1, notifications)
}

func TestIncidentRepository_ExportRecords(t *testing.T) {
	repo := NewIncidentRepository(NewGateway(openIntegrationPool(t)), nil, 0)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newIntegrationIncident("inc-a", 0, 0, 0)))

	records, err := repo.ExportRecords(ctx)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "id", records[0].Names()[0])
	shcad, ok := records[0].Get("shcad")
	assert.True(t, ok)
	assert.Equal(t, "SHCAD-inc-a", shcad)
}
