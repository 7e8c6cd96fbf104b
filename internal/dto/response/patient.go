package response

import (
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
)

type PatientResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	BirthDate       string                 `json:"birth_date"`
	DemographicType entity.DemographicType `json:"demographic_type"`
	Contact         string                 `json:"contact"`
	Status          entity.PatientStatus   `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
}

func PatientToResponse(patient *entity.Patient) PatientResponse {
	return PatientResponse{
		ID:              patient.ID.String(),
		Name:            patient.Name,
		BirthDate:       patient.BirthDate.Format("2006-01-02"),
		DemographicType: patient.DemographicType,
		Contact:         patient.Contact,
		Status:          patient.Status,
		CreatedAt:       patient.CreatedAt,
	}
}
