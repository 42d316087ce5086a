package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

var ErrConfiguration = fmt.Errorf("configuration error")
var ErrInvalidReference = fmt.Errorf("invalid entity reference")
var ErrNoLocation = fmt.Errorf("no location")
var ErrInvalidLocation = fmt.Errorf("invalid location")
var ErrVersionNotFound = fmt.Errorf("version not found")
var ErrUnsupportedAssetType = fmt.Errorf("unsupported asset type")
var ErrPolicyRejected = fmt.Errorf("policy rejected")
var ErrUnsupportedTransaction = fmt.Errorf("unsupported transaction")
var ErrMissingField = fmt.Errorf("missing field")

var ErrInternal = fmt.Errorf("internal error")
var ErrNotFound = fmt.Errorf("not found")
var ErrRequest = fmt.Errorf("request error")
var ErrBadRequest = fmt.Errorf("bad request")
var ErrForbidden = fmt.Errorf("forbidden")
var ErrBadResponse = fmt.Errorf("bad response")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewConfigurationError(msg string) error {
	return &myError{msg: msg, target: ErrConfiguration}
}

func NewInvalidReferenceError(msg string) error {
	return &myError{msg: msg, target: ErrInvalidReference}
}

func NewNoLocationError(msg string) error {
	return &myError{msg: msg, target: ErrNoLocation}
}

func NewInvalidLocationError(msg string) error {
	return &myError{msg: msg, target: ErrInvalidLocation}
}

func NewVersionNotFoundError(msg string) error {
	return &myError{msg: msg, target: ErrVersionNotFound}
}

func NewUnsupportedAssetTypeError(msg string) error {
	return &myError{msg: msg, target: ErrUnsupportedAssetType}
}

func NewPolicyRejectedError(msg string) error {
	return &myError{msg: msg, target: ErrPolicyRejected}
}

func NewUnsupportedTransactionError(msg string) error {
	return &myError{msg: msg, target: ErrUnsupportedTransaction}
}

func NewMissingFieldError(msg string) error {
	return &myError{msg: msg, target: ErrMissingField}
}

func NewBadRequestDataError(msg string) error {
	return &myError{msg: msg, target: ErrBadRequest}
}

func NewForbiddenError(msg string) error {
	return &myError{msg: msg, target: ErrForbidden}
}

func NewNotFoundError(msg string) error {
	return &myError{msg: msg, target: ErrNotFound}
}

func NewBadResponseError(msg string) error {
	return &myError{msg: msg, target: ErrBadResponse}
}

func NewInternalError(msg string) error {
	return &myError{msg: msg, target: ErrInternal}
}

const problemTypeBase string = "https://diwise.io/asset-adapter/errors/"

var problemTypes = []struct {
	typ    string
	title  string
	code   int
	target error
	create func(string) error
}{
	{"Configuration", "Configuration Error", http.StatusServiceUnavailable, ErrConfiguration, NewConfigurationError},
	{"InvalidReference", "Invalid Entity Reference", http.StatusBadRequest, ErrInvalidReference, NewInvalidReferenceError},
	{"NoLocation", "No Location", http.StatusNotFound, ErrNoLocation, NewNoLocationError},
	{"InvalidLocation", "Invalid Location", http.StatusUnprocessableEntity, ErrInvalidLocation, NewInvalidLocationError},
	{"VersionNotFound", "Version Not Found", http.StatusNotFound, ErrVersionNotFound, NewVersionNotFoundError},
	{"UnsupportedAssetType", "Unsupported Asset Type", http.StatusUnprocessableEntity, ErrUnsupportedAssetType, NewUnsupportedAssetTypeError},
	{"PolicyRejected", "Policy Rejected", http.StatusUnprocessableEntity, ErrPolicyRejected, NewPolicyRejectedError},
	{"UnsupportedTransaction", "Unsupported Transaction", http.StatusBadRequest, ErrUnsupportedTransaction, NewUnsupportedTransactionError},
	{"MissingField", "Missing Field", http.StatusBadRequest, ErrMissingField, NewMissingFieldError},
	{"ResourceNotFound", "Not Found", http.StatusNotFound, ErrNotFound, NewNotFoundError},
	{"BadRequestData", "Bad Request Data", http.StatusBadRequest, ErrBadRequest, NewBadRequestDataError},
	{"Forbidden", "Forbidden", http.StatusForbidden, ErrForbidden, NewForbiddenError},
}

// NewErrorFromProblemReport converts a problem report received from a
// remote manager back into an error that matches one of our sentinels
func NewErrorFromProblemReport(code int, contentType string, body []byte) error {
	report := &struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}{}

	err := json.Unmarshal(body, report)
	if err != nil {
		return NewBadResponseError(fmt.Sprintf("failed to process problem report from manager (content-type: %s): %s", contentType, err.Error()))
	}

	for _, pt := range problemTypes {
		if report.Type == problemTypeBase+pt.typ {
			return pt.create(report.Detail)
		}
	}

	if code == http.StatusNotFound {
		return NewNotFoundError(report.Detail)
	}

	return NewInternalError(
		fmt.Sprintf("[code: %d] unknown problem report of type \"%s\" with detail \"%s\" received",
			code, report.Type, report.Detail,
		),
	)
}

// ProblemDetails stores details about a certain problem according to RFC7807
// See https://tools.ietf.org/html/rfc7807
type ProblemDetails struct {
	typ     string
	title   string
	detail  string
	code    int
	traceID string
}

const (
	// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"
)

// NewProblemDetails maps err onto the problem type of the first sentinel it
// matches. Errors that match none of them are reported as internal errors.
func NewProblemDetails(err error, traceID string) *ProblemDetails {
	for _, pt := range problemTypes {
		if stderrors.Is(err, pt.target) {
			return &ProblemDetails{
				typ:     problemTypeBase + pt.typ,
				title:   pt.title,
				detail:  err.Error(),
				code:    pt.code,
				traceID: traceID,
			}
		}
	}

	return &ProblemDetails{
		typ:     problemTypeBase + "InternalError",
		title:   "Internal Error",
		detail:  err.Error(),
		code:    http.StatusInternalServerError,
		traceID: traceID,
	}
}

func (p *ProblemDetails) Type() string        { return p.typ }
func (p *ProblemDetails) Title() string       { return p.title }
func (p *ProblemDetails) Detail() string      { return p.detail }
func (p *ProblemDetails) ContentType() string { return ProblemReportContentType }

// MarshalJSON is called when a ProblemDetails instance should be serialized to JSON
func (p *ProblemDetails) MarshalJSON() ([]byte, error) {
	var traceID *string

	if p.traceID != "" {
		traceID = &p.traceID
	}

	return json.Marshal(struct {
		Type    string  `json:"type"`
		Title   string  `json:"title"`
		Detail  string  `json:"detail"`
		TraceID *string `json:"traceID,omitempty"`
	}{
		Type:    p.typ,
		Title:   p.title,
		Detail:  p.detail,
		TraceID: traceID,
	})
}

// ResponseCode returns the HTTP response code to be used when returning a specific problem
func (p *ProblemDetails) ResponseCode() int {
	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

// WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetails) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
