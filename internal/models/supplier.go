package models

// Supplier is an identity record referenced by purchases. It carries no
// financial state of its own.
type Supplier struct {
	SupplierID string `json:"supplierID" db:"supplier_id"`
	Name       string `json:"name" db:"name"`
	Address    string `json:"address,omitempty" db:"address"`
	Phone      string `json:"phone,omitempty" db:"phone"`
	AuditFields
}
