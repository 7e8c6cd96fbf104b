package request

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PatientRegisterRequest carries no password: new accounts get the clinic's
// default one, same as the desk system.
type PatientRegisterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PatientLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
