package models

// ProfileInput carries the optional profile fields accepted at signup.
type ProfileInput struct {
	FullName              string `json:"full_name"`
	PhoneNumber           string `json:"phone_number,omitempty"`
	District              string `json:"district,omitempty"`
	Sector                string `json:"sector,omitempty"`
	Cell                  string `json:"cell,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
	InsuranceProvider     string `json:"insurance_provider,omitempty"`
	InsuranceNumber       string `json:"insurance_number,omitempty"`
}

type SignUpRequest struct {
	Email    string       `json:"email" binding:"required,email"`
	Password string       `json:"password" binding:"required,min=6"`
	Profile  ProfileInput `json:"profile"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateProfileRequest is a partial update: only fields present in the
// request body are written.
type UpdateProfileRequest struct {
	FullName              *string `json:"full_name,omitempty"`
	PhoneNumber           *string `json:"phone_number,omitempty"`
	District              *string `json:"district,omitempty"`
	Sector                *string `json:"sector,omitempty"`
	Cell                  *string `json:"cell,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	InsuranceProvider     *string `json:"insurance_provider,omitempty"`
	InsuranceNumber       *string `json:"insurance_number,omitempty"`
}

// Fields maps the non-nil entries to their users table columns.
func (r UpdateProfileRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	set := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	set("full_name", r.FullName)
	set("phone_number", r.PhoneNumber)
	set("district", r.District)
	set("sector", r.Sector)
	set("cell", r.Cell)
	set("emergency_contact_name", r.EmergencyContactName)
	set("emergency_contact_phone", r.EmergencyContactPhone)
	set("insurance_provider", r.InsuranceProvider)
	set("insurance_number", r.InsuranceNumber)
	return fields
}
