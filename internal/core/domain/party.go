package domain

// Supplier is an identity record referenced by purchases.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	AuditFields
}

// Worker is an identity record referenced by labor entries and payments.
type Worker struct {
	WorkerID   string `json:"workerID"`
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	AuditFields
}
