package profile

import (
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/Varshini0817/Ject/internal/apperr"
)

var (
	ErrProfileNotFound = apperr.New(apperr.ErrNotFound, "User profile not found")
	ErrProfileExists   = apperr.New(apperr.ErrConflict, "User profile already exists")
)

type Profile struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"fullName"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Occupation string    `json:"occupation"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postalCode"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input is the request body of profile create and update. On update only non-nil fields are changed.
type Input struct {
	FullName   *string `json:"fullName,omitempty"`
	Age        *int    `json:"age,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Occupation *string `json:"occupation,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Address    *string `json:"address,omitempty"`
}

func (in Input) Validate() error {
	if in.Age != nil && *in.Age < 0 {
		return apperr.Validation("age must be a non-negative number")
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := strings.TrimSpace(*in.Email)
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return apperr.Validation("invalid email [%s]", email)
		}
	}
	if in.Phone != nil && strings.TrimSpace(*in.Phone) != "" {
		if !validPhone(*in.Phone) {
			return apperr.Validation("invalid phone [%s]", *in.Phone)
		}
	}
	return nil
}

// NewProfile builds the profile to create from the input. Absent fields stay empty.
func (in Input) NewProfile(username string) Profile {
	p := Profile{Username: username}
	if in.Age != nil {
		p.Age = *in.Age
	}
	p.FullName = deref(in.FullName)
	p.Gender = deref(in.Gender)
	p.Email = strings.TrimSpace(deref(in.Email))
	p.Phone = strings.TrimSpace(deref(in.Phone))
	p.Occupation = deref(in.Occupation)
	p.City = deref(in.City)
	p.State = deref(in.State)
	p.Country = deref(in.Country)
	p.PostalCode = deref(in.PostalCode)
	p.Address = deref(in.Address)
	return p
}

// validPhone accepts 7 to 15 digits, optionally with a leading + and spaces, dashes or parentheses.
func validPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '(', r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
