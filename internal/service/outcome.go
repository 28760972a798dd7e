package service

// Outcome classifies the result of a core operation so callers can branch on
// values instead of inferring the case from nils.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeInvalidInput
	OutcomeStoreUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}
