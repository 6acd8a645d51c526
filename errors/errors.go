package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors for factory construction, instance creation and rebinding.
// Use errors.Is to match.
var (
	ErrNotInterface           = namespace.NewError("type is not an interface")
	ErrNotRegistered          = namespace.NewError("no proxy implementation registered for interface")
	ErrNilBacking             = namespace.NewError("nil backing instance")
	ErrNotProxy               = namespace.NewError("value is not a proxy instance")
	ErrUnknownOperation       = namespace.NewError("unknown operation")
	ErrUnknownTargetOperation = namespace.NewError("unknown target operation")
	ErrSignatureMismatch      = namespace.NewError("target operation signature mismatch")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentOperation = "operation"
	keySegmentTarget    = "target"
	keySegmentSignature = "signature"
)

// Exported structured error field keys
var (
	ErrorFieldOperationName = newKey("name", keySegmentOperation) // proxy.operation.name
)

var (
	ErrorFieldTargetType      = newKey("type", keySegmentTarget)      // proxy.target.type
	ErrorFieldTargetOperation = newKey("operation", keySegmentTarget) // proxy.target.operation
)

var (
	ErrorFieldSignatureWant = newKey("want", keySegmentSignature) // proxy.signature.want
	ErrorFieldSignatureGot  = newKey("got", keySegmentSignature)  // proxy.signature.got
)

var (
	ErrorFieldInterfaceType = newKey("interface_type")
	ErrorFieldProxyType     = newKey("proxy_type")
)
