package telemetry

// API is what every component reports through instead of logging
// directly, so tests can assert on reports with a Recorder.
//
// note: fault injection point
type API interface {
	// ReportBroken reports a component that failed and needs fixing, ex. a
	// catalog page that could not be downloaded.
	//
	// The id names the component and method, not the exact line that
	// failed: `client.fetch` rather than `client.fetch-status-code`. Put
	// details in params or wrap the error with fmt.Errorf. Ids are all
	// lowercase, underscores separate words of a large component and a
	// dash separates a method from its component. Look at the `report_*`
	// constants of any package for examples.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something worth a look that is not a failure,
	// ex. a release date written in a shape we do not understand.
	//
	// Ids follow the rules of ReportBroken.
	ReportWarning(id string, params ...any)

	// ReportDebug reports information that is only shown with --verbose.
	ReportDebug(msg string, params ...any)

	// ReportCount reports the value of a count at this point in time, two
	// counts with the same id replace each other and are never summed.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with a namespace, usually the name of the
// package reporting.
type ScopedAPI struct {
	prefix string
	inner  API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{prefix: namespace + ": ", inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.prefix+id, params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.prefix+id, params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.prefix+msg, params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.prefix+id, count)
}
