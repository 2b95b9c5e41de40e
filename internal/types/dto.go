package types

// PersonDTO is the service-boundary form of Person.
//
// validate:"required" is checked by go-playground/validator before any
// record reaches storage. Only the names are required; every other field
// is accepted as given.
type PersonDTO struct {
	FirstName string `json:"FirstName" validate:"required"`
	LastName  string `json:"LastName"  validate:"required"`
	Passport  string `json:"Passport"`
}

// StudentDTO mirrors Student.
type StudentDTO struct {
	PersonDTO
	StudentID  string `json:"StudentID"`
	Course     int    `json:"Course"`
	MilitaryID string `json:"MilitaryID"`
}

// FootballPlayerDTO mirrors FootballPlayer.
type FootballPlayerDTO struct {
	PersonDTO
	Team string `json:"Team"`
}

// LawyerDTO mirrors Lawyer.
type LawyerDTO struct {
	PersonDTO
	Company string `json:"Company"`
}
