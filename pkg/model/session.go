package model

// Session is the client's record of an authenticated user. A session restored
// from the persisted token has an empty Username until the next login.
type Session struct {
	Username string
	Token    string
}

// LoggedIn reports whether the session holds a bearer token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}
