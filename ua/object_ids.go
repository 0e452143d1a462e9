package ua

// ObjectID identifies a generated structure's binary encoding: the Numeric
// identifier (namespace 0) a dispatcher consults to route decoding for an
// ExtensionObject body or a service request/response (spec §4.4). This is a
// representative slice of the `Opc.Ua.Types.bsd.xml`-derived registry, not
// the full Annex A table — the schema code generator that would produce the
// complete set is explicitly out of scope (spec §2, §4.4).
type ObjectID uint32

const (
	ObjectIDReadRequestEncodingDefaultBinary     ObjectID = 631
	ObjectIDReadResponseEncodingDefaultBinary    ObjectID = 634
	ObjectIDBrowseRequestEncodingDefaultBinary   ObjectID = 527
	ObjectIDBrowseResponseEncodingDefaultBinary  ObjectID = 530
	ObjectIDBrowseNextRequestEncodingDefaultBinary  ObjectID = 533
	ObjectIDBrowseNextResponseEncodingDefaultBinary ObjectID = 536
	ObjectIDCallRequestEncodingDefaultBinary     ObjectID = 712
	ObjectIDCallResponseEncodingDefaultBinary    ObjectID = 715
	ObjectIDGetEndpointsRequestEncodingDefaultBinary  ObjectID = 428
	ObjectIDGetEndpointsResponseEncodingDefaultBinary ObjectID = 431
	ObjectIDSessionlessInvokeRequestTypeEncodingDefaultBinary  ObjectID = 15901
	ObjectIDSessionlessInvokeResponseTypeEncodingDefaultBinary ObjectID = 15904
)

// ToNodeID returns the Numeric(ns=0, id) NodeID a dispatcher would key an
// ExtensionObject registry entry on for this encoding id.
func (o ObjectID) ToNodeID() *NodeID { return NewNumericNodeID(0, uint32(o)) }
