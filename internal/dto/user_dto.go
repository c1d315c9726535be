package dto

import "time"

// UserResponse never carries the password hash.
type UserResponse struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

type UserExemptionResponse struct {
	Id                string    `json:"id"`
	UserId            string    `json:"user_id"`
	ProductType       string    `json:"product_type"`
	ExemptionLimit    float64   `json:"exemption_limit"`
	CertificationType string    `json:"certification_type"`
	ValidTill         time.Time `json:"valid_till"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type UserProfileResponse struct {
	User       UserResponse            `json:"user"`
	Exemptions []UserExemptionResponse `json:"exemptions"`
}
