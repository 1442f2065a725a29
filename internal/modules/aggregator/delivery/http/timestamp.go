/*
|------------------------------------------------------------------------------------
| RPC WIRE FORMAT — H uses protobuf Timestamps, not integer epoch seconds
|------------------------------------------------------------------------------------
| H's time_range bounds are google.protobuf.Timestamp, marshaled with
| protojson (RFC3339 strings) and carried as json.RawMessage fields inside
| an otherwise plain JSON envelope — there's no generated service, just the
| well-known Timestamp message and its canonical JSON mapping. Contrast
| with F (rawstore/delivery/http), which uses plain integer seconds.
|------------------------------------------------------------------------------------
*/
package http

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func marshalTimestamp(t time.Time) (json.RawMessage, error) {
	if t.IsZero() {
		return json.RawMessage("null"), nil
	}
	b, err := protojson.Marshal(timestamppb.New(t))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

func unmarshalTimestamp(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, nil
	}
	var ts timestamppb.Timestamp
	if err := protojson.Unmarshal(raw, &ts); err != nil {
		return time.Time{}, err
	}
	return ts.AsTime(), nil
}
