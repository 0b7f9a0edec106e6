package service

// AuthService is the password gate in front of every mutating
// operation. Deliberately minimal: one shared secret, no lockout, no
// rate limiting.
type AuthService interface {
	Verify(password string) bool
}

type authServiceImpl struct {
	password string
}

func NewAuthService(password string) AuthService {
	return &authServiceImpl{password: password}
}

// Verify reports whether the submitted password is non-empty and
// exactly equals the configured one.
func (s *authServiceImpl) Verify(password string) bool {
	return password != "" && password == s.password
}
