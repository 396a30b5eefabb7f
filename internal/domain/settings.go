package domain

// Settings holds process-wide, persisted configuration. TaxRate is a
// fraction (0.08 means 8%), never negative.
type Settings struct {
	TaxRate float64 `json:"taxRate" validate:"gte=0"`
}

// Backup is the full-state export/import payload. Pointer fields so an
// import applies only the sections present in the document.
type Backup struct {
	Items        *[]Item        `json:"items,omitempty" validate:"omitempty,dive"`
	Transactions *[]Transaction `json:"transactions,omitempty"`
	Settings     *Settings      `json:"settings,omitempty"`
}
