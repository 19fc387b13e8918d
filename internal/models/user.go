package models

import "time"

// DefaultRole - роль участника группы по умолчанию
const DefaultRole = "Member"

// User - участник группы, идентифицируется номером телефона
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Phone     string    `json:"phone" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Email     *string   `json:"email"`
	Callsign  *string   `json:"callsign"`
	Role      string    `json:"role" gorm:"default:Member"`
	Avatar    *string   `json:"avatar"`
	OnDuty    bool      `json:"on_duty" gorm:"default:false"`
	OnPatrol  bool      `json:"on_patrol" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

// OnlineUser - запись списка собеседников для канала рации
type OnlineUser struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Callsign string `json:"callsign"`
	Status   string `json:"status"`
}
