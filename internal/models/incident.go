package models

import (
	"encoding/json"
	"time"
)

// ParticipantRole - роль участника инцидента
type ParticipantRole string

const (
	RoleVictim  ParticipantRole = "victim"
	RoleWitness ParticipantRole = "witness"
	RoleSuspect ParticipantRole = "suspect"
)

// StatusPending - статус нового инцидента по умолчанию
const StatusPending = "pending"

// AssignmentStatus - статус назначения участника группы на инцидент
type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentAccepted AssignmentStatus = "accepted"
	AssignmentDeclined AssignmentStatus = "declined"
)

// NestedCollectionKeys - ключи запроса, при наличии которых снимок инцидента перезаписывается целиком
var NestedCollectionKeys = []string{"notes", "assignedUsers", "victims", "witnesses", "suspects"}

// Caller - сведения о заявителе
type Caller struct {
	Name      *string `json:"caller_name"`
	Phone     *string `json:"caller_phone"`
	IsVictim  bool    `json:"caller_is_victim"`
	IsWitness bool    `json:"caller_is_witness"`
}

// Incident - агрегат инцидента: строка incidents и все дочерние записи
type Incident struct {
	ID          string          `json:"id"`
	Shcad       string          `json:"shcad"`
	Title       string          `json:"title"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Address     *string         `json:"address"`
	Postcode    *string         `json:"postcode"`
	Caller      Caller          `json:"caller"`
	CreatedBy   *string         `json:"created_by"`
	Snapshot    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Victims     []Participant  `json:"victims"`
	Witnesses   []Participant  `json:"witnesses"`
	Suspects    []Participant  `json:"suspects"`
	Assignments []Assignment   `json:"assignedUsers"`
	Notes       []Note         `json:"notes"`
	History     []HistoryEntry `json:"history"`
	PoliceInfo  *PoliceInfo    `json:"policeInfo"`
	Arrests     []Arrest       `json:"arrests"`
}

// Participants возвращает всех участников инцидента с проставленной ролью
func (i *Incident) Participants() []Participant {
	all := make([]Participant, 0, len(i.Victims)+len(i.Witnesses)+len(i.Suspects))
	for _, group := range []struct {
		role ParticipantRole
		list []Participant
	}{
		{RoleVictim, i.Victims},
		{RoleWitness, i.Witnesses},
		{RoleSuspect, i.Suspects},
	} {
		for _, p := range group.list {
			p.Role = group.role
			p.IncidentID = i.ID
			all = append(all, p)
		}
	}
	return all
}

// Participant - потерпевший, свидетель или подозреваемый
type Participant struct {
	ID          int64           `json:"id"`
	IncidentID  string          `json:"incident_id"`
	Role        ParticipantRole `json:"type"`
	Name        string          `json:"name"`
	Phone       *string         `json:"phone"`
	Address     *string         `json:"address"`
	Description *string         `json:"description"`
}

type Assignment struct {
	ID         int64            `json:"id"`
	IncidentID string           `json:"incident_id"`
	UserPhone  string           `json:"user_phone"`
	Status     AssignmentStatus `json:"status"`
	AssignedAt time.Time        `json:"assigned_at"`
}

type Note struct {
	ID         int64     `json:"id"`
	IncidentID string    `json:"incident_id"`
	UserPhone  string    `json:"user_phone"`
	Text       string    `json:"note"`
	IsFollowUp bool      `json:"is_follow_up"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryEntry - запись журнала действий, только добавляется
type HistoryEntry struct {
	ID         int64     `json:"id"`
	IncidentID string    `json:"incident_id"`
	UserPhone  *string   `json:"user_phone"`
	Action     string    `json:"action"`
	Details    *string   `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// PoliceInfo - ссылки на полицейские дела. Пустая структура сериализуется в {}
type PoliceInfo struct {
	ID           int64   `json:"id,omitempty"`
	IncidentID   string  `json:"incident_id,omitempty"`
	CadRef       *string `json:"cad_ref,omitempty"`
	CrisRef      *string `json:"cris_ref,omitempty"`
	ChsRef       *string `json:"chs_ref,omitempty"`
	OfficerName  *string `json:"officer_name,omitempty"`
	OfficerBadge *string `json:"officer_badge,omitempty"`
}

// IsEmpty сообщает, что ни одна ссылка не заполнена
func (p *PoliceInfo) IsEmpty() bool {
	return p == nil ||
		(p.CadRef == nil && p.CrisRef == nil && p.ChsRef == nil && p.OfficerName == nil && p.OfficerBadge == nil)
}

type Arrest struct {
	ID         int64      `json:"id"`
	IncidentID string     `json:"incident_id"`
	Name       string     `json:"name"`
	Details    *string    `json:"details"`
	ArrestedAt *time.Time `json:"arrested_at"`
}

// IncidentUpdate - частичное обновление инцидента в том виде, в каком оно пришло от клиента
type IncidentUpdate struct {
	Status      *string
	Title       *string
	Description *string
	Address     *string
	Postcode    *string

	// Payload - тело запроса целиком, Fields - его ключи верхнего уровня
	Payload json.RawMessage
	Fields  map[string]json.RawMessage
}

// HasNestedCollections сообщает, есть ли в запросе вложенные коллекции
func (u *IncidentUpdate) HasNestedCollections() bool {
	for _, key := range NestedCollectionKeys {
		if _, ok := u.Fields[key]; ok {
			return true
		}
	}
	return false
}

// IncidentPatch - изменения, которые репозиторий применяет к строке incidents
type IncidentPatch struct {
	Status      *string
	Title       *string
	Description *string
	Address     *string
	Postcode    *string
	// Snapshot == nil означает, что снимок не меняется
	Snapshot json.RawMessage
}
