package enrich

// ServiceError reports a failed call to the enrichment service: transport
// failure, non-2xx status, or an API-level error. The posting is not
// persisted and stays eligible for a future run.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return "enrichment service: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ParseError reports a response that arrived but was not the expected JSON
// shape. Handled the same as ServiceError by the pipeline, but kept distinct
// so callers can tell a broken service from a broken answer.
type ParseError struct {
	Raw string // response text as received
	Err error
}

func (e *ParseError) Error() string {
	return "enrichment response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
