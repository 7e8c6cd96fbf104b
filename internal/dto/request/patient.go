package request

type SavePatientRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	BirthDate       string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	DemographicType string `json:"demographic_type" validate:"required,oneof=Regular Senior Student PWD"`
	Contact         string `json:"contact" validate:"required,max=100"`
}

type UpdatePatientStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Complete Cancelled"`
}
