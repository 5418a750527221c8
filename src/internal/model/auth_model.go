package model

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

type ExportRequest struct {
	Type   string `json:"-" validate:"required"`
	Format string `json:"-"`
}

// ExportData is handed to the controller, which picks the representation.
type ExportData struct {
	Format   string
	FileName string
	CSV      string
	Records  []map[string]interface{}
}
