package auth

type AdminLoginInput struct {
	Username string
	Password string
}

type ResidentLoginInput struct {
	Email           string
	ApartmentNumber string
}

type LoginOutput struct {
	Token       string
	Role        string
	Email       string
	ApartmentID string
}
