package requests

type CreateDoctor struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"required"`
	// Base64 data URI; stored in object storage, not on the document.
	Image string `json:"image"`
}
