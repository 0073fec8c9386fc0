package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// StartingCredits is granted to every new profile at registration.
const StartingCredits = 50

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	DisplayName  string    `json:"displayName" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Profile *Profile `json:"profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type Profile struct {
	ID        string                      `json:"id" gorm:"primaryKey;size:36"`
	UserID    string                      `json:"userId" gorm:"uniqueIndex;size:36;not null"`
	Credits   int                         `json:"credits" gorm:"not null;default:0;check:credits >= 0"`
	Keywords  datatypes.JSONSlice[string] `json:"keywords"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

// NewUser builds a user with a freshly hashed credential. The plaintext
// password never leaves this constructor.
func NewUser(email, password, displayName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || displayName == "" {
		return nil, ErrInvalidRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}, nil
}

// NewProfile builds the per-user profile with the starting balance.
func NewProfile(userID string) *Profile {
	return &Profile{
		ID:       uuid.NewString(),
		UserID:   userID,
		Credits:  StartingCredits,
		Keywords: datatypes.NewJSONSlice([]string{}),
	}
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
