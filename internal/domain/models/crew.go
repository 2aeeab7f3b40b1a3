package models

// CrewMember is a person involved with the yard: beekeepers, advisors and
// centre staff. Journal tags referencing crew names are free text, not keys.
type CrewMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
