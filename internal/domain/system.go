package domain

import "time"

// SysConfig is a single settings row, grouped by Type and addressed by Name.
type SysConfig struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Sort      int       `gorm:"column:sort" json:"sort"`
	Type      string    `gorm:"size:64;index" json:"type"`
	Name      string    `gorm:"size:128;index" json:"name"`
	Value     string    `gorm:"size:4096" json:"value"`
	Remark    string    `gorm:"size:512" json:"remark"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdminLog records one admin action (login, logout, product mutation).
type AdminLog struct {
	ID       int64     `gorm:"primaryKey" json:"id"`
	OprName  string    `gorm:"size:64;index" json:"opr_name"`
	Action   string    `gorm:"size:64" json:"action"`
	Detail   string    `gorm:"size:1024" json:"detail"`
	OptTime  time.Time `gorm:"index" json:"opt_time"`
}
