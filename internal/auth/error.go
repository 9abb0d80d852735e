package auth

import "fmt"

// Code is the closed set of identity-provider failure codes the client
// understands. Anything else surfaces as CodeUnknown with the raw code kept.
type Code string

const (
	CodeEmailNotFound      Code = "EMAIL_NOT_FOUND"
	CodeInvalidPassword    Code = "INVALID_PASSWORD"
	CodeInvalidCredential  Code = "INVALID_LOGIN_CREDENTIALS"
	CodeEmailExists        Code = "EMAIL_EXISTS"
	CodeWeakPassword       Code = "WEAK_PASSWORD"
	CodeTooManyAttempts    Code = "TOO_MANY_ATTEMPTS_TRY_LATER"
	CodeUserDisabled       Code = "USER_DISABLED"
	CodeInvalidEmail       Code = "INVALID_EMAIL"
	CodeTokenExpired       Code = "TOKEN_EXPIRED"
	CodeRequiresRecentAuth Code = "CREDENTIAL_TOO_OLD_LOGIN_AGAIN"
	CodeInvalidOobCode     Code = "INVALID_OOB_CODE"
	CodeExpiredOobCode     Code = "EXPIRED_OOB_CODE"
	CodeUnknown            Code = "UNKNOWN"
)

var messages = map[Code]string{
	CodeEmailNotFound:      "No account exists for this email address",
	CodeInvalidPassword:    "Incorrect email or password",
	CodeInvalidCredential:  "Incorrect email or password",
	CodeEmailExists:        "An account already exists for this email address",
	CodeWeakPassword:       "Password is too weak. Please choose a stronger password",
	CodeTooManyAttempts:    "Too many attempts. Please try again later",
	CodeUserDisabled:       "This account has been disabled",
	CodeInvalidEmail:       "Invalid email address",
	CodeTokenExpired:       "Your session has expired. Please log in again",
	CodeRequiresRecentAuth: "Please log out and log back in before changing your password",
	CodeInvalidOobCode:     "The verification code is invalid",
	CodeExpiredOobCode:     "The verification code has expired",
}

type Error struct {
	Code Code
	raw  string
}

func (e *Error) Error() string {
	if msg, ok := messages[e.Code]; ok {
		return msg
	}
	return fmt.Sprintf("authentication failed (%s)", e.raw)
}

// codeFor normalizes a provider error string. Codes sometimes arrive with a
// suffix, e.g. "WEAK_PASSWORD : Password should be at least 6 characters".
func codeFor(raw string) Code {
	for code := range messages {
		if hasCodePrefix(raw, string(code)) {
			return code
		}
	}
	return CodeUnknown
}

func hasCodePrefix(raw, code string) bool {
	if len(raw) < len(code) || raw[:len(code)] != code {
		return false
	}
	return len(raw) == len(code) || raw[len(code)] == ' ' || raw[len(code)] == ':'
}
