package models

import "time"

type Contact struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Address      *string   `json:"address"`
	Organization *string   `json:"organization"`
	Notes        *string   `json:"notes"`
	UserPhone    string    `json:"user_phone" gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Contact) TableName() string { return "contacts" }

type Notification struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserPhone  string    `json:"user_phone" gorm:"not null;index"`
	Title      string    `json:"title" gorm:"not null"`
	Message    string    `json:"message" gorm:"not null"`
	Type       string    `json:"type" gorm:"default:info"`
	IncidentID *string   `json:"incident_id"`
	IsRead     bool      `json:"is_read" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// Suspect - карточка подозреваемого, не связана с инцидентами напрямую
type Suspect struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"not null"`
	Alias               *string   `json:"alias"`
	DateOfBirth         *string   `json:"date_of_birth"`
	PhysicalDescription *string   `json:"physical_description"`
	Photo               *string   `json:"photo"`
	LastKnownAddress    *string   `json:"last_known_address"`
	Phone               *string   `json:"phone"`
	Email               *string   `json:"email"`
	KnownAssociates     *string   `json:"known_associates"`
	CriminalHistory     *string   `json:"criminal_history"`
	Notes               *string   `json:"notes"`
	CreatedBy           *string   `json:"created_by"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Suspect) TableName() string { return "suspects" }

// VehicleStatusActive - статус транспортного средства по умолчанию
const VehicleStatusActive = "active"

type Vehicle struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Registration string    `json:"registration" gorm:"not null"`
	Make         *string   `json:"make"`
	Model        *string   `json:"model"`
	Color        *string   `json:"color"`
	Year         *string   `json:"year"`
	VIN          *string   `json:"vin" gorm:"column:vin"`
	OwnerName    *string   `json:"owner_name"`
	OwnerAddress *string   `json:"owner_address"`
	OwnerPhone   *string   `json:"owner_phone"`
	Status       string    `json:"status" gorm:"default:active"`
	AssignedTo   *string   `json:"assigned_to"`
	Notes        *string   `json:"notes"`
	Photo        *string   `json:"photo"`
	CreatedBy    *string   `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Vehicle) TableName() string { return "vehicles" }
