// internal/models/attendance.go
package models

import "time"

// Attendance is a single member check-in at a service.
type Attendance struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MemberID    uint      `json:"memberId"`
	MemberName  string    `json:"memberName"`
	Service     string    `json:"service"`
	Date        string    `json:"date"`
	CheckedInAt time.Time `json:"checkedInAt"`
}
