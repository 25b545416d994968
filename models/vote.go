package models

import "time"

// Vote records one employee's choice of one menu. The composite unique index
// on (employee_id, menu_id) is what makes duplicate votes impossible, even
// when two requests for the same pair race: the second insert fails at the
// database. Votes are append-only; there is no retraction.
type Vote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_employee_menu" json:"employee_id"`
	MenuID     uint      `gorm:"not null;uniqueIndex:idx_employee_menu;index" json:"menu_id"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
