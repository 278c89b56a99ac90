// Package proto holds the protojson settings shared by every bus payload.
package proto

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var (
	marshalOptions = protojson.MarshalOptions{
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}
	unmarshalOptions = protojson.UnmarshalOptions{
		DiscardUnknown: true,
	}
)

// Marshal renders m as JSON with snake_case field names and zero values kept.
func Marshal(m proto.Message) ([]byte, error) {
	return marshalOptions.Marshal(m)
}

func Unmarshal(b []byte, m proto.Message) error {
	return unmarshalOptions.Unmarshal(b, m)
}
