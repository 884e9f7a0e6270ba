package contracts

// Envelope is the uniform wrapper written by every endpoint. It is either a
// *SuccessEnvelope or an *ErrorEnvelope.
type Envelope interface {
	HTTPStatus() int
	envelope()
}

type Link struct {
	Href   string `json:"href"`
	Method string `json:"method"`
}

type Links struct {
	Self Link `json:"self"`
}

type SuccessEnvelope struct {
	IsOk   bool  `json:"isOk"`
	Status int   `json:"status"`
	Links  Links `json:"links"`
	Result any   `json:"result"`
}

type ErrorEnvelope struct {
	IsOk   bool          `json:"isOk"`
	Status int           `json:"status"`
	Errors []DomainError `json:"errors"`
}

func (e *SuccessEnvelope) HTTPStatus() int { return e.Status }

func (e *ErrorEnvelope) HTTPStatus() int { return e.Status }

func (*SuccessEnvelope) envelope() {}

func (*ErrorEnvelope) envelope() {}
