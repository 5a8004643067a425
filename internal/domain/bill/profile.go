package bill

// Profile is the restaurant identity printed on every bill. It is built once
// at startup and shared read-only.
type Profile struct {
	Name                    string `json:"name"`
	Address                 string `json:"address"`
	Phone                   string `json:"phone"`
	Email                   string `json:"email"`
	TaxID                   string `json:"tax_id"`
	SecondaryRegistrationID string `json:"secondary_registration_id,omitempty"`
}
