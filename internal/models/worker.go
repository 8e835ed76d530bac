package models

// Worker is an identity record referenced by labor entries and payments.
type Worker struct {
	WorkerID   string `json:"workerID" db:"worker_id"`
	Name       string `json:"name" db:"name"`
	Profession string `json:"profession" db:"profession"`
	Address    string `json:"address,omitempty" db:"address"`
	Phone      string `json:"phone,omitempty" db:"phone"`
	AuditFields
}
