// Package quantize pins every persisted float to a fixed grid and puts JSON
// values into one canonical shape, so the same model always serializes to
// the same bytes regardless of which replica or platform produced it.
//
// What: Quantize/QuantizePoint2/QuantizePoint3 round a float (or point) to
// the nearest multiple of mathx.Quantize, normalizing -0.0 to +0.0.
// Canonicalize walks a decoded JSON value (map[string]interface{},
// []interface{}, float64, ...), quantizing every float64 leaf and sorting
// any array whose elements are all objects carrying a string "id" field.
// MarshalCanonical/UnmarshalCanonical wrap github.com/goccy/go-json with
// that walk so Marshal(Unmarshal(Marshal(v))) == Marshal(v).
//
// Why: the command executor (package kernelexec) quantizes parameters
// before dispatch and canonicalizes the delta before returning it, so two
// replicas that apply the same operations end up byte-identical on disk
// (spec §4.G's "byte-exact" property) without either replica needing to
// agree on map iteration order or floating-point noise.
package quantize
