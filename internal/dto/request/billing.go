package request

type GenerateReceiptRequest struct {
	PatientName string `json:"patient_name" validate:"required"`
	Method      string `json:"method" validate:"required,oneof=Cash GCash Card"`
}
