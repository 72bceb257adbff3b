// Package templates hosts the datetime helper inside Go's text/template engine.
//
// An Engine owns a pipeline.Pipeline and a metrics.Recorder. Its FuncMap exposes the
// "datetime" function, which takes key/value option pairs or a single map:
//
//	{{ datetime "from_timestamp" .Published "output_format" "%d %B %Y" }}
//	{{ datetime "years_since" (datetime "from_rfc3339" .Born) }}
//	{{ datetime .Options }}
//
// Errors raised by the helper abort template execution and keep their classification, so
// callers can recover them with errors.AsClassified.
package templates
