package problem

type InvalidParam struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type ErrorDetail struct {
	In       string `json:"in"`
	Location string `json:"location"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

// APIError implements error + Problem Details (RFC 7807)
type APIError struct {
	Title  string        `json:"title"`
	Status int           `json:"status"`
	Errors []ErrorDetail `json:"errors,omitempty"`
}

func (e APIError) Error() string { return e.Title }

func NewBadRequest(location, detail string, params ...InvalidParam) APIError {
	return APIError{
		Title:  "Request validation failed",
		Status: 400,
		Errors: toErrorDetails(params, detail, "body", location, "bad_request"),
	}
}

func NewNotFound(location, detail string, params ...InvalidParam) APIError {
	return APIError{
		Title:  "Resource Not Found",
		Status: 404,
		Errors: toErrorDetails(params, detail, "path", location, "not_found"),
	}
}

func NewInternalServerError(detail string) APIError {
	return APIError{
		Title:  "Internal Server Error",
		Status: 500,
		Errors: toErrorDetails(nil, detail, "", "", "internal_error"),
	}
}

func NewForbidden(location, detail string) APIError {
	return APIError{
		Title:  "Forbidden",
		Status: 403,
		Errors: toErrorDetails(nil, detail, "", location, "forbidden"),
	}
}

// NewRegistrationClosed signals that the one-time admin registration has
// already happened. Deliberately distinct from bad input so clients can show
// a "setup is done" message.
func NewRegistrationClosed(detail string) APIError {
	return APIError{
		Title:  "Registration closed",
		Status: 403,
		Errors: toErrorDetails(nil, detail, "body", "", "registration_closed"),
	}
}

func NewConflict(location, detail string, params ...InvalidParam) APIError {
	return APIError{
		Title:  "Conflict",
		Status: 409,
		Errors: toErrorDetails(params, detail, "path", location, "conflict"),
	}
}

func NewPayloadTooLarge(detail string) APIError {
	return APIError{
		Title:  "Payload Too Large",
		Status: 413,
		Errors: toErrorDetails(nil, detail, "body", "file", "payload_too_large"),
	}
}

func NewUnsupportedMediaType(detail string) APIError {
	return APIError{
		Title:  "Unsupported Media Type",
		Status: 415,
		Errors: toErrorDetails(nil, detail, "body", "file", "unsupported_media_type"),
	}
}

// NewStorageError covers failed writes to the content root. Failed removals
// are logged by the caller instead, never returned.
func NewStorageError(detail string) APIError {
	return APIError{
		Title:  "Storage Error",
		Status: 500,
		Errors: toErrorDetails(nil, detail, "", "", "storage_io"),
	}
}

func NewBadGateway(location, detail string) APIError {
	return APIError{
		Title:  "Bad Gateway",
		Status: 502,
		Errors: toErrorDetails(nil, detail, "", location, "bad_gateway"),
	}
}

func toErrorDetails(params []InvalidParam, fallbackDetail, fallbackIn, fallbackLocation, fallbackCode string) []ErrorDetail {
	if len(params) == 0 {
		if fallbackDetail == "" {
			return nil
		}
		return []ErrorDetail{{
			In:       fallbackIn,
			Location: fallbackLocation,
			Code:     fallbackCode,
			Detail:   fallbackDetail,
		}}
	}
	out := make([]ErrorDetail, 0, len(params))
	for _, p := range params {
		out = append(out, ErrorDetail{
			In:       "body",
			Location: p.Name,
			Code:     p.Name,
			Detail:   p.Reason,
		})
	}
	return out
}
