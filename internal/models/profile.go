package models

import "strings"

// VisaTrack identifies the broad visa category a visitor has expressed
// interest in. Tracks drive which canned answer the classifier selects.
type VisaTrack string

const (
	// VisaTrackFamily covers family-based green cards.
	VisaTrackFamily VisaTrack = "family_green_card"
	// VisaTrackWork covers H1B, L1, O1 and other employment visas.
	VisaTrackWork VisaTrack = "work_visas"
	// VisaTrackStudent covers F1 and M1 study visas.
	VisaTrackStudent VisaTrack = "student_visas"
	// VisaTrackUnknown means the visitor has not picked a track yet.
	VisaTrackUnknown VisaTrack = ""
)

// trackPrecedence orders conflicting visa-track signals from most to least
// specific. Kept as data so a product decision can reorder it in one place.
var trackPrecedence = []VisaTrack{VisaTrackFamily, VisaTrackWork, VisaTrackStudent}

// Profile accumulates what a visitor has told us over one session. Fields are
// typed per step category rather than keyed by raw step ids, so read-time
// lookups cannot collide. It is never reset within a session.
type Profile struct {
	// Origin is the country-of-origin step value, e.g. "from_india".
	Origin string `json:"origin,omitempty"`
	// OriginText is the free-text country for visitors who chose "from_other".
	OriginText string `json:"origin_text,omitempty"`
	// VisaCategory is the latest visa_types menu selection.
	VisaCategory string `json:"visa_category,omitempty"`
	// VisaInterests lists every visa track the visitor has touched, in the
	// order they appeared. A visitor can explore more than one track in a
	// single session; answers are picked from this set by precedence.
	VisaInterests []VisaTrack `json:"visa_interests,omitempty"`
	// Situation is the work/study situation selection, e.g. "has_job_offer".
	Situation string `json:"situation,omitempty"`
	// Education is the education-level selection, e.g. "bachelors_plus".
	Education string `json:"education,omitempty"`
	// LastFreeText is the most recent free-text answer outside country entry.
	LastFreeText string `json:"last_free_text,omitempty"`
}

// Record files a submitted value under the field matching the step it
// answered. Unrecognized steps leave the typed fields untouched; the engine
// still uses the raw value for routing.
func (p *Profile) Record(stepID, value string) {
	p.noteTrack(value)
	switch {
	case stepID == "welcome" || strings.HasPrefix(stepID, "from_"):
		if stepID == "from_other" {
			// from_other answers arrive via RecordText.
			return
		}
		p.Origin = value
	case stepID == "visa_types":
		p.VisaCategory = value
	case stepID == "work_visas" || stepID == "student_visas" || stepID == "employment_green_card" || stepID == "seeking_job":
		p.Situation = value
	case stepID == "has_job_offer":
		p.Education = value
	}
}

// RecordText files a free-text answer for the given step.
func (p *Profile) RecordText(stepID, text string) {
	if stepID == "from_other" {
		p.OriginText = text
		return
	}
	p.LastFreeText = text
}

// noteTrack remembers a visa-track selection wherever it was made.
func (p *Profile) noteTrack(value string) {
	for _, track := range trackPrecedence {
		if value != string(track) {
			continue
		}
		for _, seen := range p.VisaInterests {
			if seen == track {
				return
			}
		}
		p.VisaInterests = append(p.VisaInterests, track)
		return
	}
}

// Track reports the most specific visa track in the profile: family-based
// beats work, work beats student. First match in precedence order wins.
func (p *Profile) Track() VisaTrack {
	for _, track := range trackPrecedence {
		for _, seen := range p.VisaInterests {
			if seen == track {
				return track
			}
		}
	}
	return VisaTrackUnknown
}
