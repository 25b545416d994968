package stores

import (
	"errors"

	"github.com/yeremiapane/lunch-voting-app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityStore holds employee accounts. Passwords are stored as bcrypt
// hashes only; the plaintext never touches the database.
type IdentityStore struct {
	DB *gorm.DB
}

func NewIdentityStore(db *gorm.DB) *IdentityStore {
	return &IdentityStore{DB: db}
}

// Register creates a new employee account. Username uniqueness is enforced
// by the database index, so two concurrent registrations of the same name
// cannot both succeed.
func (s *IdentityStore) Register(username, password string) (*models.Employee, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := models.Employee{
		Username: username,
		Password: string(hashed),
	}
	if err := s.DB.Create(&employee).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &employee, nil
}

// Authenticate checks a username/password pair. An unknown username and a
// wrong password are distinct failures so the transport can map them to 404
// and 401 respectively.
func (s *IdentityStore) Authenticate(username, password string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.Where("username = ?", username).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return &employee, nil
}

// ByID looks up an employee by primary key.
func (s *IdentityStore) ByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}
