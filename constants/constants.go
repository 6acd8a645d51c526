package constants

const Namespace = "proxy"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// SlotSuffix is appended to an operation name to form the name of the
// exported slot field on a proxy type, e.g. operation "Bake" -> field
// "BakeSlot".
const SlotSuffix = "Slot"

// GeneratedBy is the marker placed in the header of generated proxy files.
const GeneratedBy = "proxygen"
