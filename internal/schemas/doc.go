// Package schemas implements the validation and normalization pipelines
// applied to inbound author and book payloads before anything reaches
// storage.
//
// Each pipeline accumulates the field errors it can detect in a single
// pass and reports them as a validation.Errors map of field name to
// message. Pipelines read from storage for existence and duplicate
// checks through the narrow finder interfaces but never write; on
// failure no entity is returned and no rows are touched.
package schemas
