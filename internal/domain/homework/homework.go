// internal/domain/homework/homework.go
package homework

import "encoding/json"

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known review status to the text shown to the student.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable text for a status and whether the status is known.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Known reports whether s is one of the enumerated review statuses.
func (s Status) Known() bool {
	_, ok := verdicts[s]
	return ok
}

// Record is a single homework entry as returned by the API.
type Record struct {
	Name   string `json:"homework_name"`
	Status Status `json:"status"`
}

// Envelope is the decoded top-level response of the status endpoint.
// Homeworks is kept raw so that its shape can be checked before the entries are decoded.
type Envelope struct {
	Homeworks   json.RawMessage `json:"homeworks"`
	CurrentDate *int64          `json:"current_date,omitempty"`
}
