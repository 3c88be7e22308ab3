package firebase

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"

	"ppe-inventory/internal/auth"
)

// Identity Toolkit error codes, as sent in the error message.
var failureKinds = map[string]auth.FailureKind{
	"EMAIL_NOT_FOUND":             auth.FailureUnknownAccount,
	"INVALID_PASSWORD":            auth.FailureBadCredential,
	"INVALID_LOGIN_CREDENTIALS":   auth.FailureBadCredential,
	"MISSING_PASSWORD":            auth.FailureBadCredential,
	"INVALID_EMAIL":               auth.FailureMalformedEmail,
	"MISSING_EMAIL":               auth.FailureMalformedEmail,
	"TOO_MANY_ATTEMPTS_TRY_LATER": auth.FailureRateLimited,
	"USER_DISABLED":               auth.FailureDisabledAccount,
}

// classifySignInError maps a VerifyPassword error to an auth.Failure, or to
// auth.ErrProviderUnavailable when the provider itself failed.
func classifySignInError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("%w: %v", auth.ErrProviderUnavailable, err)
	}
	if gerr.Code >= 500 {
		return fmt.Errorf("%w: %v", auth.ErrProviderUnavailable, err)
	}

	codes := []string{gerr.Message}
	for _, item := range gerr.Errors {
		codes = append(codes, item.Message, item.Reason)
	}
	for _, code := range codes {
		// Some codes carry a detail suffix: "TOO_MANY_ATTEMPTS_TRY_LATER : ...".
		code = strings.TrimSpace(strings.SplitN(code, ":", 2)[0])
		if kind, ok := failureKinds[code]; ok {
			return auth.NewFailure(kind, err)
		}
	}
	return auth.NewFailure(auth.FailureUnknown, err)
}
