package frost

import "errors"

// Sentinel errors covering the failure taxonomy [FROST] requires a
// conforming implementation to distinguish between. Call sites wrap these
// with fmt.Errorf("...: %w", ...) to attach the offending identifier, index,
// or value, and aggregate them with errors.Join when more than one failure
// is discovered during the same validation pass (the Coordinator and Signer
// commitment-list validation both do this, matching the style already used
// in this package's Aggregate implementation).
var (
	// ErrInvalidIdentifier is returned when a participant identifier is the
	// reserved zero value.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrDuplicateIdentifier is returned when the same identifier appears
	// more than once in a list that [FROST] requires to name each
	// participant at most once.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrUnknownIdentifier is returned when an identifier does not name any
	// participant known to the caller, e.g. when Aggregate receives a
	// signature share whose identifier has no verifying share in the
	// PublicKeyPackage.
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrMissingCommitment is returned by Round 2 or Aggregate when the
	// signing participant's own commitment is absent from the supplied
	// commitment list.
	ErrMissingCommitment = errors.New("missing commitment")

	// ErrMismatchedShares is returned when the number of commitments and the
	// number of signature shares supplied to Aggregate disagree. Too few or
	// too many shares for the threshold and group size are reported with
	// errors of their own.
	ErrMismatchedShares = errors.New("mismatched shares")

	// ErrIdentityCommitment is returned when a hiding or binding nonce
	// commitment deserializes to the group identity element, which [FROST]
	// forbids SerializeElement from ever producing for a well-formed
	// commitment.
	ErrIdentityCommitment = errors.New("commitment is the identity element")

	// ErrInvalidGroupCommitment is returned when the aggregated group
	// commitment R does not correspond to a valid, non-identity group
	// element.
	ErrInvalidGroupCommitment = errors.New("invalid group commitment")

	// ErrInvalidSecretShare is returned when a secret share fails its
	// Feldman VSS check against the dealer's commitment.
	ErrInvalidSecretShare = errors.New("invalid secret share")

	// ErrInvalidSignatureShare is returned when an individual signature
	// share z_i does not satisfy z_i * G == hiding_commitment +
	// binding_commitment^rho + (challenge * lambda_i) * Y_i.
	ErrInvalidSignatureShare = errors.New("invalid signature share")

	// ErrMalformedScalar is returned when a byte string fails to decode to a
	// canonical scalar-field element.
	ErrMalformedScalar = errors.New("malformed scalar encoding")

	// ErrMalformedElement is returned when a byte string fails to decode to
	// a canonical, non-identity group element.
	ErrMalformedElement = errors.New("malformed element encoding")

	// ErrInvalidZeroScalar is returned when a value required to be a
	// NonZeroScalar (the signing share given to NewSigner, an identifier
	// derived with HID) is zero.
	ErrInvalidZeroScalar = errors.New("scalar must be non-zero")

	// ErrFieldError signals a failure internal to scalar-field arithmetic,
	// e.g. attempting to invert zero.
	ErrFieldError = errors.New("field error")

	// ErrGroupError signals a failure internal to group arithmetic, e.g.
	// attempting to serialize the identity element.
	ErrGroupError = errors.New("group error")
)
