package nodeid_test

import (
	"fmt"

	"github.com/uastack/nodeid"
	"github.com/uastack/nodeid/namespace"
	"github.com/uastack/nodeid/registry"
)

func ExampleParse() {
	n, err := nodeid.Parse("ns=2;s=Motor1")
	if err != nil {
		panic(err)
	}
	fmt.Println(n.Namespace(), n.Type(), n)
	// Output: 2 String ns=2;s=Motor1
}

func ExampleParse_error() {
	_, err := nodeid.Parse("ns=abc;i=5")
	fmt.Println(err)
	// Output: nodeid: parse "ns=abc;i=5": malformed namespace: not a decimal number
}

func ExampleEncode() {
	fmt.Printf("% x\n", nodeid.Encode(nodeid.NewNumeric(0, 85)))
	fmt.Printf("% x\n", nodeid.Encode(nodeid.NewNumeric(5, 1025)))
	fmt.Printf("% x\n", nodeid.Encode(nodeid.NewString(1, "Hot")))
	// Output:
	// 00 55
	// 01 05 01 04
	// 03 01 00 03 00 00 00 48 6f 74
}

func ExampleDescribe() {
	table, err := namespace.NewArray(namespace.StandardURI, "urn:plant", "http://example.org/UA")
	if err != nil {
		panic(err)
	}
	fmt.Println(nodeid.Describe(nodeid.MustParse("ns=2;s=Motor1"), table))
	// Output: ns=2 (http://example.org/UA);s=Motor1
}

func ExampleSort() {
	ids := []nodeid.NodeID{
		nodeid.MustParse("ns=1;i=5"),
		nodeid.MustParse("s=Motor1"),
		nodeid.MustParse("b=AQID"),
		nodeid.MustParse("i=5"),
	}
	nodeid.Sort(ids)
	fmt.Println(ids)
	// Output: [i=5 s=Motor1 b=AQID ns=1;i=5]
}

func ExampleNodeID_MarshalJSON() {
	js, err := nodeid.NewString(2, "Motor1").MarshalJSON()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(js))
	// Output: {"IdType":1,"Id":"Motor1","Namespace":2}
}

func Example_registry() {
	id, _ := registry.ByName("AlarmConditionType_EnabledState")
	name, _ := registry.NameOf(id)
	fmt.Println(id, name)
	// Output: i=9118 AlarmConditionType_EnabledState
}
