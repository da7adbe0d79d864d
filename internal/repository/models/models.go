package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fwsr-hub/internal/domain"
)

// AnswersJSON stores a set of recorded answers as a JSON document in a CLOB.
type AnswersJSON domain.Results

// Value implements the driver.Valuer interface.
func (a AnswersJSON) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface.
func (a *AnswersJSON) Scan(value interface{}) error {
	return scanJSON(value, a, func() { *a = AnswersJSON{} })
}

// MessagesJSON stores a chat transcript as a JSON document in a CLOB.
type MessagesJSON []domain.ChatMessage

// Value implements the driver.Valuer interface.
func (m MessagesJSON) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface.
func (m *MessagesJSON) Scan(value interface{}) error {
	return scanJSON(value, m, func() { *m = MessagesJSON{} })
}

func scanJSON(value interface{}, dst interface{}, reset func()) error {
	if value == nil {
		reset()
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("scanJSON: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		reset()
		return nil
	}
	return json.Unmarshal(bytesToParse, dst)
}

// User represents a user record.
type User struct {
	ID                string         `db:"ID"`                  // ULID
	Email             string         `db:"EMAIL"`               // User's email address
	PasswordHash      sql.NullString `db:"PASSWORD_HASH"`       // Bcrypt hash, NULL for OAuth-only accounts
	GoogleID          sql.NullString `db:"GOOGLE_ID"`           // Google's unique identifier for the user
	Name              sql.NullString `db:"NAME"`                // User's full name
	ProfilePictureURL sql.NullString `db:"PROFILE_PICTURE_URL"` // URL of the user's profile picture
	CreatedAt         time.Time      `db:"CREATED_AT"`
	UpdatedAt         time.Time      `db:"UPDATED_AT"`
	DeletedAt         sql.NullTime   `db:"DELETED_AT"`
}

// AssessmentResult represents a completed questionnaire run.
type AssessmentResult struct {
	ID        string         `db:"ID"`      // ULID
	UserID    sql.NullString `db:"USER_ID"` // NULL for anonymous runs
	Answers   AnswersJSON    `db:"ANSWERS"`
	Score     float64        `db:"SCORE"`
	CreatedAt time.Time      `db:"CREATED_AT"`
}

// ChatSession represents a persisted advisory chat transcript.
type ChatSession struct {
	ID        string       `db:"ID"` // ULID
	UserID    string       `db:"USER_ID"`
	PlanID    string       `db:"PLAN_ID"`
	Messages  MessagesJSON `db:"MESSAGES"`
	CreatedAt time.Time    `db:"CREATED_AT"`
	UpdatedAt time.Time    `db:"UPDATED_AT"`
}

// Purchase represents a checkout attempt and its settlement state.
type Purchase struct {
	ID        string    `db:"ID"` // ULID
	UserID    string    `db:"USER_ID"`
	PlanID    string    `db:"PLAN_ID"`
	Amount    float64   `db:"AMOUNT"`
	Status    string    `db:"STATUS"`
	CreatedAt time.Time `db:"CREATED_AT"`
	UpdatedAt time.Time `db:"UPDATED_AT"`
}
