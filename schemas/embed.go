// Package schemas embeds the JSON Schemas shipped with the binary.
package schemas

import _ "embed"

// EnvelopeFile is the schema file name under this directory.
const EnvelopeFile = "resume_envelope.schema.json"

// Envelope is the JSON Schema of an exported resume envelope.
//
//go:embed resume_envelope.schema.json
var Envelope string
