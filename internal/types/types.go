// Package types holds all shared data structures (models) used across
// the application: the persisted person records and the DTOs handed to
// and returned from the service layer. Keeping them in one place prevents
// import cycles: storage, service and cli all import types without
// depending on each other.
package types

// MilitaryNotServed is the MilitaryID value stored for students who have
// not served.
const MilitaryNotServed = "N/A"

// Record type tags. The text format writes them as the first field of
// every line and the XML format uses them as element names.
const (
	TagStudent        = "Student"
	TagFootballPlayer = "FootballPlayer"
	TagLawyer         = "Lawyer"
)

// Person holds the fields shared by every record type. Passport together
// with FirstName and LastName forms the lookup key.
//
// Struct tags:
//
//	json:"..."     keys match the Go field names exactly
//	xml:"..."      one child element per field
//	msgpack:"..."  records are encoded as arrays, in declaration order
type Person struct {
	FirstName string `json:"FirstName" xml:"FirstName" msgpack:"first_name"`
	LastName  string `json:"LastName"  xml:"LastName"  msgpack:"last_name"`
	Passport  string `json:"Passport"  xml:"Passport"  msgpack:"passport"`
}

// Identity returns the shared person fields. It is promoted to every
// record type that embeds Person.
func (p Person) Identity() Person { return p }

// Key is the natural key used by Find and Remove. Two keys match only when
// all three fields are equal.
type Key struct {
	FirstName string
	LastName  string
	Passport  string
}

// Matches reports whether p carries exactly this key.
func (k Key) Matches(p Person) bool {
	return p.FirstName == k.FirstName &&
		p.LastName == k.LastName &&
		p.Passport == k.Passport
}

// Student is a university student. Course is expected to be 1 to 5 but the
// core does not enforce it.
type Student struct {
	_msgpack struct{} `msgpack:",as_array"`

	Person     `msgpack:",inline"`
	StudentID  string `json:"StudentID"  xml:"StudentID"  msgpack:"student_id"`
	Course     int    `json:"Course"     xml:"Course"     msgpack:"course"`
	MilitaryID string `json:"MilitaryID" xml:"MilitaryID" msgpack:"military_id"`
}

// RecordType returns the type tag of the record.
func (Student) RecordType() string { return TagStudent }

// FootballPlayer is a player registered with a team.
type FootballPlayer struct {
	_msgpack struct{} `msgpack:",as_array"`

	Person `msgpack:",inline"`
	Team   string `json:"Team" xml:"Team" msgpack:"team"`
}

// RecordType returns the type tag of the record.
func (FootballPlayer) RecordType() string { return TagFootballPlayer }

// Lawyer is a lawyer employed by a company.
type Lawyer struct {
	_msgpack struct{} `msgpack:",as_array"`

	Person  `msgpack:",inline"`
	Company string `json:"Company" xml:"Company" msgpack:"company"`
}

// RecordType returns the type tag of the record.
func (Lawyer) RecordType() string { return TagLawyer }

// Record is the closed set of persisted record types. Storage and service
// code is generic over it.
type Record interface {
	Student | FootballPlayer | Lawyer

	Identity() Person
	RecordType() string
}

// NewStudent builds a Student record.
func NewStudent(firstName, lastName, passport, studentID string, course int, militaryID string) Student {
	return Student{
		Person:     Person{FirstName: firstName, LastName: lastName, Passport: passport},
		StudentID:  studentID,
		Course:     course,
		MilitaryID: militaryID,
	}
}

// NewFootballPlayer builds a FootballPlayer record.
func NewFootballPlayer(firstName, lastName, passport, team string) FootballPlayer {
	return FootballPlayer{
		Person: Person{FirstName: firstName, LastName: lastName, Passport: passport},
		Team:   team,
	}
}

// NewLawyer builds a Lawyer record.
func NewLawyer(firstName, lastName, passport, company string) Lawyer {
	return Lawyer{
		Person:  Person{FirstName: firstName, LastName: lastName, Passport: passport},
		Company: company,
	}
}
