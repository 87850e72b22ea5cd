package service

import "strings"

// Session is the login state of a client. There is no credential check:
// any non-empty email and password pair is accepted.
type Session struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email"`
}

// Login reports whether the session transitioned. The email is kept verbatim.
func (s *Session) Login(email, password string) bool {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return false
	}
	s.LoggedIn = true
	s.Email = email
	return true
}

func (s *Session) Logout() {
	s.LoggedIn = false
	s.Email = ""
}
