package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DeletedReferencePlaceholder is shown in place of the name of a supplier or
// worker that was deleted after entries referencing it were created. The
// entries themselves remain valid and keep counting toward every total.
const DeletedReferencePlaceholder = "(deleted)"
