package request

type LookupRequest struct {
	// Identifier may arrive formatted (dots/dashes); normalization happens in
	// the domain layer, not here.
	Identifier    string `json:"identifier" binding:"required"`
	OperationType string `json:"operation_type" binding:"required"`
}
