package stores

import (
	"github.com/yeremiapane/lunch-voting-app/models"
	"gorm.io/gorm"
)

// VoteLedger records one vote per (employee, menu) pair. The pair's
// uniqueness is guaranteed by the idx_employee_menu index, not by a
// read-then-write check, so concurrent duplicate casts lose at the insert.
type VoteLedger struct {
	DB *gorm.DB
}

func NewVoteLedger(db *gorm.DB) *VoteLedger {
	return &VoteLedger{DB: db}
}

// CastVote appends a vote for menuID on behalf of employeeID.
func (l *VoteLedger) CastVote(employeeID, menuID uint) (*models.Vote, error) {
	var menus int64
	if err := l.DB.Model(&models.Menu{}).Where("id = ?", menuID).Count(&menus).Error; err != nil {
		return nil, err
	}
	if menus == 0 {
		return nil, ErrNotFound
	}

	vote := models.Vote{
		EmployeeID: employeeID,
		MenuID:     menuID,
	}
	if err := l.DB.Create(&vote).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}
	return &vote, nil
}

// CountForMenu returns the number of votes cast for one menu. The menu_id
// index keeps this from scanning unrelated menus.
func (l *VoteLedger) CountForMenu(menuID uint) (int64, error) {
	var count int64
	err := l.DB.Model(&models.Vote{}).Where("menu_id = ?", menuID).Count(&count).Error
	return count, err
}
