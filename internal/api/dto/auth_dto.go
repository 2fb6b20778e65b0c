package dto

// StaffRegisterRequest payload for new staff accounts.
type StaffRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffLoginRequest payload for staff login.
type StaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OnboardingRequest payload for completing company onboarding.
type OnboardingRequest struct {
	CompanyName string `json:"company_name"`
}

// KioskLoginRequest payload for registering an unattended device.
type KioskLoginRequest struct {
	KioskCode   string `json:"kiosk_code"`
	DeviceLabel string `json:"device_label"`
}
