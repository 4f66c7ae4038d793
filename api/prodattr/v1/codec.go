package prodattrv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// CodecName is the content-subtype announced by clients using Codec
const CodecName = "prodattr-json"

// Codec marshals protobuf messages (grpc health)
// with protobuf and every other message of this package as JSON.
//
// The server forces Codec for every call, so ProductAttrService payloads are
// JSON even when the request says application/grpc+proto. Stock protobuf gRPC
// clients (grpcurl, protoc-generated stubs in other languages) cannot decode
// them. Callers must use NewProductAttrServiceClient, which forces Codec on
// every call, or another client that speaks the same JSON bodies. Health
// checks stay protobuf and work with any client.
type Codec struct{}

var _ encoding.Codec = Codec{}

// Marshal implements encoding.Codec
func (Codec) Marshal(v interface{}) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return proto.Marshal(m)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal implements encoding.Codec
func (Codec) Unmarshal(data []byte, v interface{}) error {
	if m, ok := v.(proto.Message); ok {
		return proto.Unmarshal(data, m)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", v, err)
	}
	return nil
}

// Name implements encoding.Codec
func (Codec) Name() string {
	return CodecName
}
