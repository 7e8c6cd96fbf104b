package entity

import (
	"time"
)

// DemographicType decides discount eligibility at payment time.
type DemographicType string

const (
	DemographicRegular DemographicType = "Regular"
	DemographicSenior  DemographicType = "Senior"
	DemographicStudent DemographicType = "Student"
	DemographicPWD     DemographicType = "PWD"
)

func (t DemographicType) Valid() bool {
	switch t {
	case DemographicRegular, DemographicSenior, DemographicStudent, DemographicPWD:
		return true
	}
	return false
}

type PatientStatus string

const (
	PatientStatusPending   PatientStatus = "Pending"
	PatientStatusComplete  PatientStatus = "Complete"
	PatientStatusCancelled PatientStatus = "Cancelled"
)

// Valid reports whether s is a known patient status. Any valid status may
// replace any other; the clinic wants manual override, not a workflow.
func (s PatientStatus) Valid() bool {
	switch s {
	case PatientStatusPending, PatientStatusComplete, PatientStatusCancelled:
		return true
	}
	return false
}

type Patient struct {
	Base
	Name            string          `db:"name"`
	BirthDate       time.Time       `db:"birth_date"`
	DemographicType DemographicType `db:"demographic_type"`
	Contact         string          `db:"contact"`
	Status          PatientStatus   `db:"status"`
}
