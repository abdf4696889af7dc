package services

// AuthContext is the caller identity resolved at the request boundary and
// passed explicitly into every operation. The zero value is an anonymous
// caller (guest).
type AuthContext struct {
	UserID string
	Email  string
}

func (a AuthContext) Authenticated() bool { return a.UserID != "" }
