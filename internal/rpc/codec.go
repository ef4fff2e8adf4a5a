// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpc holds the wire contract shared by the gRPC server and the gRPC
// client adapter: the service and method names, the metadata keys and a JSON
// codec so that plain Go structs from the models package travel as messages.
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the codec name. Clients select it with
// grpc.CallContentSubtype(Name), giving content type "application/grpc+json".
const Name = "json"

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (codec) Name() string {
	return Name
}

func init() {
	encoding.RegisterCodec(codec{})
}
