package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// OKEnvelope is the minimal acknowledgement body used by write endpoints.
type OKEnvelope struct {
	OK bool `json:"ok"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
