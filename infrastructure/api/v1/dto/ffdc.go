package dto

import (
	"maps"
	"slices"
)

// FFDCResponseBase carries the First Failure Data Capture fields shared by
// every response. A successful response only sets RelatedHTTPCode.
type FFDCResponseBase struct {
	RelatedHTTPCode                 int            `json:"relatedHTTPCode"`
	ExceptionClassName              string         `json:"exceptionClassName,omitempty"`
	ExceptionCausedBy               string         `json:"exceptionCausedBy,omitempty"`
	ActionDescription               string         `json:"actionDescription,omitempty"`
	ExceptionErrorMessage           string         `json:"exceptionErrorMessage,omitempty"`
	ExceptionErrorMessageID         string         `json:"exceptionErrorMessageId,omitempty"`
	ExceptionErrorMessageParameters []string       `json:"exceptionErrorMessageParameters,omitempty"`
	ExceptionSystemAction           string         `json:"exceptionSystemAction,omitempty"`
	ExceptionUserAction             string         `json:"exceptionUserAction,omitempty"`
	ExceptionProperties             map[string]any `json:"exceptionProperties,omitempty"`
}

// Response is implemented by a pointer to every response envelope.
type Response interface {
	FFDC() *FFDCResponseBase
}

// ResultResponse is a response envelope with a typed payload.
type ResultResponse[T any] interface {
	Response
	Result() T
}

// FFDC returns the shared response fields.
func (r *FFDCResponseBase) FFDC() *FFDCResponseBase {
	return r
}

// Failed reports whether the response carries a non-2xx HTTP code.
func (r *FFDCResponseBase) Failed() bool {
	return r.RelatedHTTPCode != 0 && (r.RelatedHTTPCode < 200 || r.RelatedHTTPCode > 299)
}

// Clone returns an independent copy of the base.
func (r *FFDCResponseBase) Clone() *FFDCResponseBase {
	if r == nil {
		return nil
	}
	c := *r
	c.cloneFrom(r)
	return &c
}

func (r *FFDCResponseBase) cloneFrom(src *FFDCResponseBase) {
	r.ExceptionErrorMessageParameters = slices.Clone(src.ExceptionErrorMessageParameters)
	r.ExceptionProperties = maps.Clone(src.ExceptionProperties)
}

// Equal reports whether both bases carry the same values.
func (r *FFDCResponseBase) Equal(other *FFDCResponseBase) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.RelatedHTTPCode == other.RelatedHTTPCode &&
		r.ExceptionClassName == other.ExceptionClassName &&
		r.ExceptionCausedBy == other.ExceptionCausedBy &&
		r.ActionDescription == other.ActionDescription &&
		r.ExceptionErrorMessage == other.ExceptionErrorMessage &&
		r.ExceptionErrorMessageID == other.ExceptionErrorMessageID &&
		slices.Equal(r.ExceptionErrorMessageParameters, other.ExceptionErrorMessageParameters) &&
		r.ExceptionSystemAction == other.ExceptionSystemAction &&
		r.ExceptionUserAction == other.ExceptionUserAction &&
		anyMapEqual(r.ExceptionProperties, other.ExceptionProperties)
}

// String renders the base for logs.
func (r *FFDCResponseBase) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("FFDCResponseBase", r)
}
