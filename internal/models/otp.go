package models

// OTPDispatch - результат выдачи одноразового кода
type OTPDispatch struct {
	Phone      string
	Delivered  bool
	MessageSID string
	// DevCode заполняется только при включённом OTP_DEV_ECHO и неудачной доставке
	DevCode string
}

// OTPVerification - результат успешной проверки кода
type OTPVerification struct {
	Phone         string
	ReturningUser bool
	User          *User
}
