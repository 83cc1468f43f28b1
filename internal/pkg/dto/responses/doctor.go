package responses

type CreateDoctor struct {
	DoctorID string `json:"doctorId"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
}
