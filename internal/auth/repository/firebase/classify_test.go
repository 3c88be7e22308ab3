package firebase

import (
	"errors"
	"testing"

	"google.golang.org/api/googleapi"

	"ppe-inventory/internal/auth"
)

func TestClassifySignInError(t *testing.T) {
	tcs := map[string]struct {
		err  error
		want auth.FailureKind
	}{
		"Unknown Account": {
			err:  &googleapi.Error{Code: 400, Message: "EMAIL_NOT_FOUND"},
			want: auth.FailureUnknownAccount,
		},
		"Wrong Password": {
			err:  &googleapi.Error{Code: 400, Message: "INVALID_PASSWORD"},
			want: auth.FailureBadCredential,
		},
		"Enumeration Protected": {
			err:  &googleapi.Error{Code: 400, Message: "INVALID_LOGIN_CREDENTIALS"},
			want: auth.FailureBadCredential,
		},
		"Malformed Email": {
			err:  &googleapi.Error{Code: 400, Message: "INVALID_EMAIL"},
			want: auth.FailureMalformedEmail,
		},
		"Rate Limited With Detail": {
			err:  &googleapi.Error{Code: 400, Message: "TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled"},
			want: auth.FailureRateLimited,
		},
		"Disabled": {
			err:  &googleapi.Error{Code: 400, Errors: []googleapi.ErrorItem{{Reason: "invalid", Message: "USER_DISABLED"}}},
			want: auth.FailureDisabledAccount,
		},
		"Unrecognized Code": {
			err:  &googleapi.Error{Code: 400, Message: "OPERATION_NOT_ALLOWED"},
			want: auth.FailureUnknown,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f, ok := auth.AsFailure(classifySignInError(tc.err))
			if !ok {
				t.Fatalf("expected a Failure")
			}
			if f.Kind != tc.want {
				t.Errorf("kind = %s, want %s", f.Kind, tc.want)
			}
		})
	}

	t.Run("Server Error Is Unavailable", func(t *testing.T) {
		err := classifySignInError(&googleapi.Error{Code: 503, Message: "backend error"})
		if !errors.Is(err, auth.ErrProviderUnavailable) {
			t.Errorf("expected ErrProviderUnavailable, got %v", err)
		}
	})

	t.Run("Transport Error Is Unavailable", func(t *testing.T) {
		err := classifySignInError(errors.New("dial tcp: i/o timeout"))
		if !errors.Is(err, auth.ErrProviderUnavailable) {
			t.Errorf("expected ErrProviderUnavailable, got %v", err)
		}
		if _, ok := auth.AsFailure(err); ok {
			t.Errorf("transport errors are not sign-in failures")
		}
	})
}
