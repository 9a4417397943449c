package models

// Gender values offered by the registration form.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileImage is a handle to a user-selected local file. It is opened only
// when the registration form is submitted.
type ProfileImage struct {
	Path string
}

// RegistrationProfile is the sign-up form payload. It is sent as
// multipart/form-data, so it carries no JSON tags.
type RegistrationProfile struct {
	DisplayName  string
	Email        string
	Password     string
	Gender       string
	About        string
	ProfileImage *ProfileImage
}

// PasswordResetRequest asks the server to e-mail a one-time code.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// OTPVerification checks a one-time code for an e-mail.
type OTPVerification struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// PasswordChange sets a new password after a verified one-time code.
type PasswordChange struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

// Session is the result of a successful login.
type Session struct {
	Token string `json:"token"`
}
