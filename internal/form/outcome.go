package form

// OutcomeKind is the terminal result category of one submission attempt.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeValidationError
	OutcomeAPIError
	OutcomeNetworkError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationError:
		return "validation_error"
	case OutcomeAPIError:
		return "api_error"
	case OutcomeNetworkError:
		return "network_error"
	}
	return "unknown"
}

// Outcome is what a submission rendered. Status is the HTTP status for API
// errors and zero otherwise.
type Outcome struct {
	Kind    OutcomeKind
	Name    string
	Message string
	Status  int
}

// MessageKind maps the outcome to the style of the message it renders.
func (o Outcome) MessageKind() Kind {
	if o.Kind == OutcomeSuccess {
		return KindSuccess
	}
	return KindError
}
