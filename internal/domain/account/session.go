// Package account defines the signed-in user identity.
package account

// Session holds the display attributes of an authenticated user.
// A nil *Session means nobody is signed in.
type Session struct {
	Name     string `json:"name"`
	UserName string `json:"user_name"`
}

// SignedIn reports whether s represents an authenticated user.
func SignedIn(s *Session) bool {
	return s != nil
}
