package rpc

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "cipher.v1.Cipher"

	// EncryptMethod and DecryptMethod are the full method names used by
	// clients and reported to interceptors.
	EncryptMethod = "/" + ServiceName + "/Encrypt"
	DecryptMethod = "/" + ServiceName + "/Decrypt"
)

const (
	// TraceIDKey is the metadata key carrying the request trace ID in both
	// directions.
	TraceIDKey = "x-trace-id"

	// ErrorCodeKey is the trailer key carrying the machine readable error
	// code, since one gRPC status code covers several error kinds.
	ErrorCodeKey = "x-error-code"
)
