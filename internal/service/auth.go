package service

// AuthService answers whether a user is an admin operator.
// The admin list comes from configuration; there is no runtime
// registration path.
type AuthService struct {
	admins map[int64]struct{}
}

// NewAuthService creates a new auth service from the configured admin IDs
func NewAuthService(adminIDs []int64) *AuthService {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &AuthService{admins: admins}
}

// IsAdmin checks if user is an admin
func (s *AuthService) IsAdmin(userID int64) bool {
	_, ok := s.admins[userID]
	return ok
}
