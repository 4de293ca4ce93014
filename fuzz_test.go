package nodeid

import (
	"testing"
	"unicode/utf8"

	"github.com/google/gofuzz"
	"github.com/google/uuid"
)

// makeFuzzer returns a fuzzer producing NodeIDs of every variant. Namespaces
// and numeric values are biased towards small numbers so that the short
// binary encodings and equal payloads in different namespaces come up often.
func makeFuzzer() *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).Funcs(
		func(n *NodeID, c fuzz.Continue) {
			var ns uint16
			if c.RandBool() {
				ns = uint16(c.Intn(3))
			} else {
				c.Fuzz(&ns)
			}
			switch Type(c.Intn(4)) {
			case TypeNumeric:
				v := uint32(c.Intn(300))
				if c.RandBool() {
					v = c.Uint32()
				}
				*n = NewNumeric(ns, v)
			case TypeString:
				*n = NewString(ns, c.RandString())
			case TypeGUID:
				var g uuid.UUID
				if c.RandBool() {
					g[15] = byte(c.Intn(3))
				} else {
					_, _ = c.Read(g[:])
				}
				*n = NewGUID(ns, g)
			case TypeOpaque:
				b := make([]byte, c.Intn(40))
				_, _ = c.Read(b)
				*n = NewOpaque(ns, b)
			}
		})
}

func randomNodeIDs(count int) []NodeID {
	f := makeFuzzer()
	out := make([]NodeID, count)
	for i := range out {
		f.Fuzz(&out[i])
	}
	return out
}

func TestFuzzRoundTrips(t *testing.T) {
	count := 5000
	if testing.Short() {
		count = 500
	}
	for _, n := range randomNodeIDs(count) {
		parsed, err := Parse(n.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", n.String(), err)
		}
		if parsed != n {
			t.Fatalf("string round trip: got %#v, want %#v", parsed, n)
		}

		enc := Encode(n)
		decoded, read, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%x) of %v: %v", enc, n, err)
		}
		if decoded != n || read != len(enc) {
			t.Fatalf("binary round trip of %v: got %v after %d of %d bytes", n, decoded, read, len(enc))
		}

		js, err := n.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%v): %v", n, err)
		}
		fromJSON, err := DecodeJSON(js)
		if err != nil {
			t.Fatalf("DecodeJSON(%s): %v", js, err)
		}
		if fromJSON != n {
			t.Fatalf("json round trip: got %v, want %v", fromJSON, n)
		}

		pb, err := n.Marshal()
		if err != nil {
			t.Fatalf("Marshal(%v): %v", n, err)
		}
		if len(pb) != n.Size() {
			t.Fatalf("Size() = %d, Marshal wrote %d bytes", n.Size(), len(pb))
		}
		var fromProto NodeID
		if err := fromProto.Unmarshal(pb); err != nil {
			t.Fatalf("Unmarshal(%x): %v", pb, err)
		}
		if fromProto != n {
			t.Fatalf("proto round trip: got %v, want %v", fromProto, n)
		}
	}
}

func TestFuzzOrderAndHash(t *testing.T) {
	ids := randomNodeIDs(400)
	for _, a := range ids {
		if Compare(a, a) != 0 {
			t.Fatalf("Compare(%v, %v) != 0", a, a)
		}
		for _, b := range ids {
			ab, ba := Compare(a, b), Compare(b, a)
			if ab != -ba {
				t.Fatalf("Compare is not antisymmetric for %v and %v: %d, %d", a, b, ab, ba)
			}
			if (ab == 0) != (a == b) {
				t.Fatalf("Compare(%v, %v) = %d disagrees with ==", a, b, ab)
			}
			if a == b && a.Hash() != b.Hash() {
				t.Fatalf("equal NodeIDs %v hash differently", a)
			}
		}
	}

	Sort(ids)
	for i := 1; i < len(ids); i++ {
		if Compare(ids[i-1], ids[i]) > 0 {
			t.Fatalf("Sort left %v before %v", ids[i-1], ids[i])
		}
	}
	// a sorted slice is a chain, so every pair must respect its positions
	for i := 0; i < len(ids); i += 7 {
		for j := i; j < len(ids); j += 13 {
			if Compare(ids[i], ids[j]) > 0 {
				t.Fatalf("order is not transitive: %v after %v", ids[i], ids[j])
			}
		}
	}
}

func FuzzParse(f *testing.F) {
	for _, s := range []string{
		"i=2253", "ns=2;s=Motor1", "ns=1;g=72962b91-fa75-4ae6-8d28-b404dc7daf63",
		"b=AQID", "ns=abc;i=5", "x=5", "g=not-a-guid", "ns=007;i=0042", "s=",
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		n, err := Parse(s)
		if err != nil {
			if n != Null {
				t.Fatalf("Parse(%q) returned %v with error %v", s, n, err)
			}
			return
		}
		again, err := Parse(n.String())
		if err != nil {
			t.Fatalf("Parse(%q) of formatted %q: %v", n.String(), s, err)
		}
		if again != n {
			t.Fatalf("Parse(String()) = %v, want %v", again, n)
		}
	})
}

func FuzzDecode(f *testing.F) {
	for _, n := range randomNodeIDs(20) {
		f.Add(Encode(n))
	}
	f.Add([]byte{0x03, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0x45, 0x00})
	f.Fuzz(func(t *testing.T, b []byte) {
		n, read, err := Decode(b)
		if err != nil {
			return
		}
		if read > len(b) {
			t.Fatalf("Decode consumed %d of %d bytes", read, len(b))
		}
		again, _, err := Decode(Encode(n))
		if err != nil || again != n {
			t.Fatalf("re-encoding %v: got %v, %v", n, again, err)
		}
	})
}

func FuzzDecodeJSON(f *testing.F) {
	f.Add([]byte(`{"Id":2253}`))
	f.Add([]byte(`{"IdType":1,"Id":"Motor1","Namespace":2}`))
	f.Add([]byte(`{"IdType":3,"Id":"AQID"}`))
	f.Fuzz(func(t *testing.T, b []byte) {
		n, err := DecodeJSON(b)
		if err != nil {
			return
		}
		if s, ok := n.Identifier().Text(); ok && !utf8.ValidString(s) {
			// encoding/json replaces invalid UTF-8
			return
		}
		js, err := n.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%v): %v", n, err)
		}
		again, err := DecodeJSON(js)
		if err != nil || again != n {
			t.Fatalf("json round trip of %v: got %v, %v", n, again, err)
		}
	})
}

func FuzzUnmarshalProto(f *testing.F) {
	for _, n := range randomNodeIDs(20) {
		pb, _ := n.Marshal()
		f.Add(pb)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var n NodeID
		if err := n.Unmarshal(b); err != nil {
			return
		}
		pb, err := n.Marshal()
		if err != nil {
			t.Fatalf("Marshal(%v): %v", n, err)
		}
		var again NodeID
		if err := again.Unmarshal(pb); err != nil || again != n {
			t.Fatalf("proto round trip of %v: got %v, %v", n, again, err)
		}
	})
}
