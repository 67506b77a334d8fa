package internaldefs

import (
	mujairAuth "github.com/TambakLabs/mujairAuth"
)

// CounterDef defines a public type used by mujairAuth APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   mujairAuth.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by mujairAuth APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   mujairAuth.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the authentication engine.
var CounterDefs = []CounterDef{
	{ID: mujairAuth.MetricRegistrationRequest, Name: "mujairauth_registration_request_total", Help: "Accepted registration requests."},
	{ID: mujairAuth.MetricRegistrationInvalid, Name: "mujairauth_registration_invalid_total", Help: "Registration requests rejected for invalid input."},
	{ID: mujairAuth.MetricRegistrationDuplicate, Name: "mujairauth_registration_duplicate_total", Help: "Registration requests rejected as duplicate email."},
	{ID: mujairAuth.MetricEmailDispatchFailure, Name: "mujairauth_email_dispatch_failure_total", Help: "Failed outbound email deliveries."},
	{ID: mujairAuth.MetricVerificationSuccess, Name: "mujairauth_verification_success_total", Help: "Completed email verifications with account creation."},
	{ID: mujairAuth.MetricVerificationFailure, Name: "mujairauth_verification_failure_total", Help: "Failed email verification attempts."},
	{ID: mujairAuth.MetricUsernameConflict, Name: "mujairauth_username_conflict_total", Help: "Account submissions rejected for a taken username."},
	{ID: mujairAuth.MetricPasswordMismatch, Name: "mujairauth_password_mismatch_total", Help: "Submissions with non-matching password confirmation."},
	{ID: mujairAuth.MetricPasswordPolicyRejected, Name: "mujairauth_password_policy_rejected_total", Help: "Submissions rejected by the password policy."},
	{ID: mujairAuth.MetricLoginSuccess, Name: "mujairauth_login_success_total", Help: "Successful login attempts."},
	{ID: mujairAuth.MetricLoginFailure, Name: "mujairauth_login_failure_total", Help: "Failed login attempts."},
	{ID: mujairAuth.MetricLogout, Name: "mujairauth_logout_total", Help: "Logout operations."},
	{ID: mujairAuth.MetricSessionCreated, Name: "mujairauth_session_created_total", Help: "Created sessions."},
	{ID: mujairAuth.MetricSessionInvalidated, Name: "mujairauth_session_invalidated_total", Help: "Invalidated sessions."},
	{ID: mujairAuth.MetricResetRequest, Name: "mujairauth_reset_request_total", Help: "Accepted password reset requests."},
	{ID: mujairAuth.MetricResetSuccess, Name: "mujairauth_reset_success_total", Help: "Completed password resets."},
	{ID: mujairAuth.MetricResetFailure, Name: "mujairauth_reset_failure_total", Help: "Failed password reset attempts."},
}

// HistogramDefs is an exported constant or variable used by the authentication engine.
var HistogramDefs = []HistogramDef{
	{ID: mujairAuth.MetricValidateLatency, Name: "mujairauth_validate_latency_seconds", Help: "Validate latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the authentication engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the authentication engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
