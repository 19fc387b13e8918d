package v1

import (
	"encoding/json"
	"time"

	"github.com/shenikar/shomrim_dispatch/internal/models"
)

// SuccessResponse - стандартный ответ об успешной операции
// @Description Стандартный ответ об успешной операции
type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      any    `json:"id,omitempty" swaggertype:"string"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendOTPRequest DTO для выдачи одноразового кода
// @Description DTO для выдачи одноразового кода
type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	CountryCode string `json:"country_code,omitempty"`
}

// SendOTPResponse DTO ответа на выдачу кода
type SendOTPResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Delivered  bool   `json:"delivered"`
	MessageSID string `json:"message_sid,omitempty"`
	DevOTP     string `json:"dev_otp,omitempty"`
}

// VerifyOTPRequest DTO для проверки кода
// @Description DTO для проверки кода
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	CountryCode string `json:"country_code,omitempty"`
	OTP         string `json:"otp" validate:"required"`
}

// VerifyOTPResponse DTO ответа на проверку кода
type VerifyOTPResponse struct {
	Success         bool         `json:"success"`
	Message         string       `json:"message"`
	User            *models.User `json:"user,omitempty"`
	IsReturningUser bool         `json:"is_returning_user"`
}

// CallerRequest - сведения о заявителе
type CallerRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	IsVictim  bool    `json:"isVictim"`
	IsWitness bool    `json:"isWitness"`
}

// ParticipantRequest - потерпевший, свидетель или подозреваемый
type ParticipantRequest struct {
	Name        string  `json:"name" validate:"required"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

// PoliceInfoRequest - ссылки на полицейские дела
type PoliceInfoRequest struct {
	CadRef       *string `json:"cadRef"`
	CrisRef      *string `json:"crisRef"`
	ChsRef       *string `json:"chsRef"`
	OfficerName  *string `json:"officerName"`
	OfficerBadge *string `json:"officerBadge"`
}

// CreateIncidentRequest DTO для создания инцидента. Тело запроса целиком сохраняется как снимок.
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	ID          string               `json:"id" validate:"required"`
	Shcad       string               `json:"shcad" validate:"required"`
	Title       string               `json:"title" validate:"required"`
	Type        string               `json:"type" validate:"required"`
	Description string               `json:"description" validate:"required"`
	Status      string               `json:"status,omitempty"`
	Address     *string              `json:"address"`
	Postcode    *string              `json:"postcode"`
	Caller      *CallerRequest       `json:"caller" validate:"required"`
	Victims     []ParticipantRequest `json:"victims" validate:"dive"`
	Witnesses   []ParticipantRequest `json:"witnesses" validate:"dive"`
	Suspects    []ParticipantRequest `json:"suspects" validate:"dive"`
	PoliceInfo  *PoliceInfoRequest   `json:"policeInfo"`
	CreatedBy   *string              `json:"created_by"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента.
// Остальные ключи тела не разбираются, но попадают в снимок.
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Status      *string `json:"status" validate:"omitempty,min=1"`
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Postcode    *string `json:"postcode"`
}

// IncidentResponse DTO инцидента со всеми дочерними записями
// @Description DTO инцидента со всеми дочерними записями
type IncidentResponse struct {
	ID              string                `json:"id"`
	Shcad           string                `json:"shcad"`
	Title           string                `json:"title"`
	Type            string                `json:"type"`
	Description     string                `json:"description"`
	Status          string                `json:"status"`
	Address         *string               `json:"address"`
	Postcode        *string               `json:"postcode"`
	CallerName      *string               `json:"caller_name"`
	CallerPhone     *string               `json:"caller_phone"`
	CallerIsVictim  bool                  `json:"caller_is_victim"`
	CallerIsWitness bool                  `json:"caller_is_witness"`
	Metadata        json.RawMessage       `json:"metadata,omitempty" swaggertype:"object"`
	CreatedBy       *string               `json:"created_by"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	Victims         []models.Participant  `json:"victims"`
	Witnesses       []models.Participant  `json:"witnesses"`
	Suspects        []models.Participant  `json:"suspects"`
	AssignedUsers   []models.Assignment   `json:"assignedUsers"`
	Notes           []models.Note         `json:"notes"`
	History         []models.HistoryEntry `json:"history"`
	PoliceInfo      *models.PoliceInfo    `json:"policeInfo"`
	Arrests         []models.Arrest       `json:"arrests"`
}

// AddNoteRequest DTO для добавления заметки
type AddNoteRequest struct {
	UserPhone  string `json:"user_phone" validate:"required"`
	Note       string `json:"note" validate:"required"`
	IsFollowUp bool   `json:"isFollowUp"`
}

// AssignUserRequest DTO для назначения участника на инцидент
type AssignUserRequest struct {
	UserPhone  string  `json:"user_phone" validate:"required"`
	AssignedBy *string `json:"assigned_by"`
}

// RespondAssignmentRequest DTO ответа участника на назначение
type RespondAssignmentRequest struct {
	Status    string  `json:"status" validate:"required,oneof=accepted declined"`
	UserPhone *string `json:"user_phone"`
}

// AddPoliceInfoRequest DTO для добавления ссылок на полицейские дела
type AddPoliceInfoRequest struct {
	PoliceInfoRequest
	UserPhone *string `json:"user_phone"`
}

// AddArrestRequest DTO для фиксации задержания
type AddArrestRequest struct {
	Name       string     `json:"name" validate:"required"`
	Details    *string    `json:"details"`
	ArrestedAt *time.Time `json:"arrested_at"`
	UserPhone  *string    `json:"user_phone"`
}

// PTTBroadcastResponse DTO ответа на отправку голосового сообщения
type PTTBroadcastResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Channel   string `json:"channel"`
	MessageID int64  `json:"message_id"`
}

// PTTMessagesResponse DTO ответа на опрос новых сообщений
type PTTMessagesResponse struct {
	Messages []models.PTTMessageMeta `json:"messages"`
	Count    int                     `json:"count"`
}

// SaveUserRequest DTO для создания или обновления участника группы
type SaveUserRequest struct {
	Phone    string  `json:"phone" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Callsign *string `json:"callsign"`
	Role     string  `json:"role,omitempty"`
	Avatar   *string `json:"avatar"`
}

// DutyStatusRequest DTO смены статуса дежурства
type DutyStatusRequest struct {
	OnDuty *bool `json:"on_duty" validate:"required"`
}

// PatrolStatusRequest DTO смены статуса патрулирования
type PatrolStatusRequest struct {
	OnPatrol *bool `json:"on_patrol" validate:"required"`
}

// ContactRequest DTO для создания контакта
type ContactRequest struct {
	Name         string  `json:"name" validate:"required"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	Organization *string `json:"organization"`
	Notes        *string `json:"notes"`
	UserPhone    string  `json:"user_phone" validate:"required"`
}

// SuspectRequest DTO карточки подозреваемого
type SuspectRequest struct {
	Name                string  `json:"name" validate:"required"`
	Alias               *string `json:"alias"`
	DateOfBirth         *string `json:"date_of_birth"`
	PhysicalDescription *string `json:"physical_description"`
	Photo               *string `json:"photo"`
	LastKnownAddress    *string `json:"last_known_address"`
	Phone               *string `json:"phone"`
	Email               *string `json:"email"`
	KnownAssociates     *string `json:"known_associates"`
	CriminalHistory     *string `json:"criminal_history"`
	Notes               *string `json:"notes"`
	CreatedBy           *string `json:"created_by"`
}

// VehicleRequest DTO карточки транспортного средства
type VehicleRequest struct {
	Registration string  `json:"registration" validate:"required"`
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Color        *string `json:"color"`
	Year         *string `json:"year"`
	VIN          *string `json:"vin"`
	OwnerName    *string `json:"owner_name"`
	OwnerAddress *string `json:"owner_address"`
	OwnerPhone   *string `json:"owner_phone"`
	Status       string  `json:"status,omitempty"`
	AssignedTo   *string `json:"assigned_to"`
	Notes        *string `json:"notes"`
	Photo        *string `json:"photo"`
	CreatedBy    *string `json:"created_by"`
}
