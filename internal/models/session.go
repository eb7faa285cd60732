package models

import "time"

// SessionTTL bounds both the session and its CSRF token.
const SessionTTL = 24 * time.Hour

// Session maps an opaque token to the tenant it was issued for. Stored
// under session:{token} with SessionTTL.
type Session struct {
	TenantID  string `json:"tenant_id"`
	CSRFToken string `json:"csrf_token"`
}

// Account holds a tenant operator's login credentials, stored under
// tenant:{id}:account.
type Account struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
