package common

// SessionCookieName is the cookie used to carry the session token on every
// call except register and login.
const SessionCookieName = "session_token"
