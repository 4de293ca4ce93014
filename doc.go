/*
Package nodeid implements the NodeId of the industrial information model
protocol: a namespace index qualifying a numeric, string, GUID or opaque
identifier.

A NodeID is an immutable, comparable value. It can be used with == and as a
map key, and it orders totally with Compare (namespace, then identifier
variant Numeric < String < Guid < Opaque, then payload).

The package carries the interchange forms of a NodeID:

  - the canonical string form, "ns=2;s=Motor1" (String, Parse)
  - the binary wire form with its TwoByte/FourByte short encodings
    (Encode, Decode, MarshalBinary)
  - the JSON object form {"IdType":1,"Id":"Motor1","Namespace":2}
    (MarshalJSON, DecodeJSON)
  - a protobuf message form usable as a gogoproto customtype (Marshal, Unmarshal)

Every form round-trips: decoding the encoding of a NodeID yields an equal
NodeID. Symbolic names of the standard namespace live in the registry
package.
*/
package nodeid
