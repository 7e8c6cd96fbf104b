package entity

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
)

// Credentials are stored and compared in clear text, exactly as the clinic's
// desktop system does. Known gap, kept deliberately.

type AdminAccount struct {
	BaseSimple
	Username string `db:"username"`
	Password string `db:"password"`
}

type PatientAccount struct {
	BaseSimple
	Email    string `db:"email"`
	Password string `db:"password"`
}
