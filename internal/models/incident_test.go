package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncident_ParticipantsTagsRoles(t *testing.T) {
	inc := &Incident{
		ID:        "inc-1",
		Victims:   []Participant{{Name: "Victim"}},
		Witnesses: []Participant{{Name: "Witness A"}, {Name: "Witness B"}},
	}

	all := inc.Participants()

	assert.Len(t, all, 3)
	assert.Equal(t, RoleVictim, all[0].Role)
	assert.Equal(t, RoleWitness, all[1].Role)
	assert.Equal(t, RoleWitness, all[2].Role)
	for _, p := range all {
		assert.Equal(t, "inc-1", p.IncidentID)
	}
}

func TestIncidentUpdate_HasNestedCollections(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]json.RawMessage
		want   bool
	}{
		{"status only", map[string]json.RawMessage{"status": json.RawMessage(`"resolved"`)}, false},
		{"notes", map[string]json.RawMessage{"notes": json.RawMessage(`[]`)}, true},
		{"assigned users", map[string]json.RawMessage{"assignedUsers": json.RawMessage(`["a"]`)}, true},
		{"suspects", map[string]json.RawMessage{"title": json.RawMessage(`"x"`), "suspects": json.RawMessage(`[]`)}, true},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &IncidentUpdate{Fields: tt.fields}
			assert.Equal(t, tt.want, u.HasNestedCollections())
		})
	}
}

func TestPoliceInfo_EmptyMarshalsToEmptyObject(t *testing.T) {
	data, err := json.Marshal(&PoliceInfo{})
	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestPoliceInfo_IsEmpty(t *testing.T) {
	var missing *PoliceInfo
	ref := "CAD-9"

	assert.True(t, missing.IsEmpty())
	assert.True(t, (&PoliceInfo{IncidentID: "inc-1"}).IsEmpty())
	assert.False(t, (&PoliceInfo{CadRef: &ref}).IsEmpty())
	assert.False(t, (&PoliceInfo{OfficerBadge: &ref}).IsEmpty())
}
