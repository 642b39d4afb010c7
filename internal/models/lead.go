package models

import "time"

// Lead is the contact record captured when a visitor requests an assessment.
// It is the JSON body of POST /lead and the row shape of the leads table.
type Lead struct {
	ID             int64     `json:"id,omitempty"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	CurrentCountry string    `json:"current_country"`
	Goal           string    `json:"goal"`
	Timeline       string    `json:"timeline,omitempty"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// Validate checks that the required lead fields are present. Phone, timeline,
// and additional info are optional and default to empty strings.
func (l *Lead) Validate() error {
	if l.Name == "" {
		return ErrMissingName
	}
	if l.Email == "" {
		return ErrMissingEmail
	}
	if l.CurrentCountry == "" {
		return ErrMissingCurrentCountry
	}
	if l.Goal == "" {
		return ErrMissingGoal
	}
	return nil
}

// ConversationLog is one completed question/answer exchange, kept for
// consultation follow-up the same way leads are.
type ConversationLog struct {
	ID              int64     `json:"id,omitempty"`
	UserQuestion    string    `json:"user_question"`
	AssistantAnswer string    `json:"assistant_answer"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}
