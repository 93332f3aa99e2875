package entity

import "time"

// Estados válidos para Candidate. La transición la decide el caller; la única
// precondición dura es que solo Selected puede contratarse.
const (
	CandidateNew       = "New"
	CandidateScheduled = "Scheduled"
	CandidateOngoing   = "Ongoing"
	CandidateSelected  = "Selected"
	CandidateRejected  = "Rejected"
)

// Candidate representa un candidato en proceso de selección.
type Candidate struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Position   string
	Experience string
	Status     string // New, Scheduled, Ongoing, Selected, Rejected
	Resume     string // ruta del archivo en el storage local; vacío si no hay
	CreatedAt  time.Time
}
