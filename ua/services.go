package ua

import "io"

// Generated structure codec (spec §4.4): a representative slice of the
// structures OPC UA's `Opc.Ua.Types.bsd.xml` schema would mechanically
// produce. Field order matches the schema's declaration order; each field's
// codec is the codec of its declared type; arrays use the §4.2 array
// convention. The schema-to-structure generator itself is out of scope
// (spec §4.4) — these are hand-authored in the generator's output shape,
// grounded on original_source/types/src/service_types/browse_next_request.rs
// and sessionless_invoke_response_type.rs.

// RequestHeader is common to every service request.
type RequestHeader struct {
	AuthenticationToken *NodeID
	Timestamp           DateTime
	RequestHandle       uint32
	ReturnDiagnostics   uint32
	AuditEntryID        String
	TimeoutHint         uint32
	AdditionalHeader    *ExtensionObject
}

func (h *RequestHeader) ByteLen() int {
	size := h.AuthenticationToken.ByteLen() + 8 + 4 + 4 + h.AuditEntryID.ByteLen() + 4
	if h.AdditionalHeader != nil {
		size += h.AdditionalHeader.ByteLen()
	} else {
		size += NullExtensionObject().ByteLen()
	}
	return size
}

func (h *RequestHeader) Encode(w io.Writer) (int, error) {
	size, err := h.AuthenticationToken.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := h.Timestamp.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, h.RequestHandle)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, h.ReturnDiagnostics)
	size += n
	if err != nil {
		return size, err
	}
	n, err = h.AuditEntryID.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, h.TimeoutHint)
	size += n
	if err != nil {
		return size, err
	}
	hdr := h.AdditionalHeader
	if hdr == nil {
		hdr = NullExtensionObject()
	}
	n, err = hdr.Encode(w)
	return size + n, err
}

func DecodeRequestHeader(r io.Reader, limits *DecodingLimits) (*RequestHeader, error) {
	token, err := DecodeNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	ts, err := DecodeDateTime(r)
	if err != nil {
		return nil, err
	}
	handle, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	diag, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	audit, err := DecodeString(r, limits)
	if err != nil {
		return nil, err
	}
	timeout, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	hdr, err := DecodeExtensionObject(r, limits)
	if err != nil {
		return nil, err
	}
	return &RequestHeader{
		AuthenticationToken: token,
		Timestamp:           ts,
		RequestHandle:       handle,
		ReturnDiagnostics:   diag,
		AuditEntryID:        audit,
		TimeoutHint:         timeout,
		AdditionalHeader:    hdr,
	}, nil
}

// ResponseHeader is common to every service response.
type ResponseHeader struct {
	Timestamp          DateTime
	RequestHandle      uint32
	ServiceResult      StatusCode
	ServiceDiagnostics *DiagnosticInfo
	StringTable        []String
	AdditionalHeader   *ExtensionObject
}

func (h *ResponseHeader) ByteLen() int {
	size := 8 + 4 + 4
	diag := h.ServiceDiagnostics
	if diag == nil {
		diag = &DiagnosticInfo{AdditionalInfo: NullString()}
	}
	size += diag.ByteLen()
	size += ArrayByteLen(h.StringTable, h.StringTable == nil)
	if h.AdditionalHeader != nil {
		size += h.AdditionalHeader.ByteLen()
	} else {
		size += NullExtensionObject().ByteLen()
	}
	return size
}

func (h *ResponseHeader) Encode(w io.Writer) (int, error) {
	size, err := h.Timestamp.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteUint32(w, h.RequestHandle)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, uint32(h.ServiceResult))
	size += n
	if err != nil {
		return size, err
	}
	diag := h.ServiceDiagnostics
	if diag == nil {
		diag = &DiagnosticInfo{AdditionalInfo: NullString()}
	}
	n, err = diag.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, h.StringTable, h.StringTable == nil)
	size += n
	if err != nil {
		return size, err
	}
	hdr := h.AdditionalHeader
	if hdr == nil {
		hdr = NullExtensionObject()
	}
	n, err = hdr.Encode(w)
	return size + n, err
}

func DecodeResponseHeader(r io.Reader, limits *DecodingLimits) (*ResponseHeader, error) {
	ts, err := DecodeDateTime(r)
	if err != nil {
		return nil, err
	}
	handle, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	result, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	diag, err := DecodeDiagnosticInfo(r, limits)
	if err != nil {
		return nil, err
	}
	strs, _, err := ReadArray(r, limits, DecodeString)
	if err != nil {
		return nil, err
	}
	hdr, err := DecodeExtensionObject(r, limits)
	if err != nil {
		return nil, err
	}
	return &ResponseHeader{
		Timestamp:          ts,
		RequestHandle:      handle,
		ServiceResult:      StatusCode(result),
		ServiceDiagnostics: diag,
		StringTable:        strs,
		AdditionalHeader:   hdr,
	}, nil
}

// ReadValueID names one node/attribute pair to read.
type ReadValueID struct {
	NodeID       *NodeID
	AttributeID  uint32
	IndexRange   String
	DataEncoding QualifiedName
}

func (v *ReadValueID) ByteLen() int {
	return v.NodeID.ByteLen() + 4 + v.IndexRange.ByteLen() + v.DataEncoding.ByteLen()
}

func (v *ReadValueID) Encode(w io.Writer) (int, error) {
	size, err := v.NodeID.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteUint32(w, v.AttributeID)
	size += n
	if err != nil {
		return size, err
	}
	n, err = v.IndexRange.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = v.DataEncoding.Encode(w)
	return size + n, err
}

func DecodeReadValueID(r io.Reader, limits *DecodingLimits) (*ReadValueID, error) {
	nodeID, err := DecodeNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	attr, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	indexRange, err := DecodeString(r, limits)
	if err != nil {
		return nil, err
	}
	enc, err := DecodeQualifiedName(r, limits)
	if err != nil {
		return nil, err
	}
	return &ReadValueID{NodeID: nodeID, AttributeID: attr, IndexRange: indexRange, DataEncoding: enc}, nil
}

// ReadRequest reads a set of node attributes.
type ReadRequest struct {
	RequestHeader      *RequestHeader
	MaxAge             float64
	TimestampsToReturn uint32
	NodesToRead        []*ReadValueID
}

func (req *ReadRequest) ObjectID() ObjectID { return ObjectIDReadRequestEncodingDefaultBinary }

func (req *ReadRequest) ByteLen() int {
	return req.RequestHeader.ByteLen() + 8 + 4 + ArrayByteLen(req.NodesToRead, req.NodesToRead == nil)
}

func (req *ReadRequest) Encode(w io.Writer) (int, error) {
	size, err := req.RequestHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteFloat64(w, req.MaxAge)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, req.TimestampsToReturn)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, req.NodesToRead, req.NodesToRead == nil)
	return size + n, err
}

func DecodeReadRequest(r io.Reader, limits *DecodingLimits) (*ReadRequest, error) {
	hdr, err := DecodeRequestHeader(r, limits)
	if err != nil {
		return nil, err
	}
	maxAge, err := ReadFloat64(r)
	if err != nil {
		return nil, err
	}
	ttr, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	nodes, _, err := ReadArray(r, limits, DecodeReadValueID)
	if err != nil {
		return nil, err
	}
	return &ReadRequest{RequestHeader: hdr, MaxAge: maxAge, TimestampsToReturn: ttr, NodesToRead: nodes}, nil
}

// ReadResponse returns the values read by a ReadRequest.
type ReadResponse struct {
	ResponseHeader  *ResponseHeader
	Results         []*DataValue
	DiagnosticInfos []*DiagnosticInfo
}

func (resp *ReadResponse) ObjectID() ObjectID { return ObjectIDReadResponseEncodingDefaultBinary }

func (resp *ReadResponse) ByteLen() int {
	return resp.ResponseHeader.ByteLen() +
		ArrayByteLen(resp.Results, resp.Results == nil) +
		ArrayByteLen(resp.DiagnosticInfos, resp.DiagnosticInfos == nil)
}

func (resp *ReadResponse) Encode(w io.Writer) (int, error) {
	size, err := resp.ResponseHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteArray(w, resp.Results, resp.Results == nil)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, resp.DiagnosticInfos, resp.DiagnosticInfos == nil)
	return size + n, err
}

func DecodeReadResponse(r io.Reader, limits *DecodingLimits) (*ReadResponse, error) {
	hdr, err := DecodeResponseHeader(r, limits)
	if err != nil {
		return nil, err
	}
	results, _, err := ReadArray(r, limits, DecodeDataValue)
	if err != nil {
		return nil, err
	}
	diags, _, err := ReadArray(r, limits, DecodeDiagnosticInfo)
	if err != nil {
		return nil, err
	}
	return &ReadResponse{ResponseHeader: hdr, Results: results, DiagnosticInfos: diags}, nil
}

// BrowseDescription names one node to browse outward from.
type BrowseDescription struct {
	NodeID          *NodeID
	BrowseDirection uint32
	ReferenceTypeID *NodeID
	IncludeSubtypes bool
	NodeClassMask   uint32
	ResultMask      uint32
}

func (b *BrowseDescription) ByteLen() int {
	return b.NodeID.ByteLen() + 4 + b.ReferenceTypeID.ByteLen() + 1 + 4 + 4
}

func (b *BrowseDescription) Encode(w io.Writer) (int, error) {
	size, err := b.NodeID.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteUint32(w, b.BrowseDirection)
	size += n
	if err != nil {
		return size, err
	}
	n, err = b.ReferenceTypeID.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteBoolean(w, b.IncludeSubtypes)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, b.NodeClassMask)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, b.ResultMask)
	return size + n, err
}

func DecodeBrowseDescription(r io.Reader, limits *DecodingLimits) (*BrowseDescription, error) {
	nodeID, err := DecodeNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	dir, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	refType, err := DecodeNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	includeSub, err := ReadBoolean(r)
	if err != nil {
		return nil, err
	}
	classMask, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	resultMask, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	return &BrowseDescription{
		NodeID: nodeID, BrowseDirection: dir, ReferenceTypeID: refType,
		IncludeSubtypes: includeSub, NodeClassMask: classMask, ResultMask: resultMask,
	}, nil
}

// ReferenceDescription describes one reference found during a browse.
type ReferenceDescription struct {
	ReferenceTypeID *NodeID
	IsForward       bool
	NodeID          *ExpandedNodeID
	BrowseName      QualifiedName
	DisplayName     LocalizedText
	NodeClass       uint32
	TypeDefinition  *ExpandedNodeID
}

func (rd *ReferenceDescription) ByteLen() int {
	return rd.ReferenceTypeID.ByteLen() + 1 + rd.NodeID.ByteLen() + rd.BrowseName.ByteLen() +
		rd.DisplayName.ByteLen() + 4 + rd.TypeDefinition.ByteLen()
}

func (rd *ReferenceDescription) Encode(w io.Writer) (int, error) {
	size, err := rd.ReferenceTypeID.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteBoolean(w, rd.IsForward)
	size += n
	if err != nil {
		return size, err
	}
	n, err = rd.NodeID.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = rd.BrowseName.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = rd.DisplayName.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, rd.NodeClass)
	size += n
	if err != nil {
		return size, err
	}
	n, err = rd.TypeDefinition.Encode(w)
	return size + n, err
}

func DecodeReferenceDescription(r io.Reader, limits *DecodingLimits) (*ReferenceDescription, error) {
	refType, err := DecodeNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	isForward, err := ReadBoolean(r)
	if err != nil {
		return nil, err
	}
	nodeID, err := DecodeExpandedNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	browseName, err := DecodeQualifiedName(r, limits)
	if err != nil {
		return nil, err
	}
	displayName, err := DecodeLocalizedText(r, limits)
	if err != nil {
		return nil, err
	}
	nodeClass, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	typeDef, err := DecodeExpandedNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	return &ReferenceDescription{
		ReferenceTypeID: refType, IsForward: isForward, NodeID: nodeID,
		BrowseName: browseName, DisplayName: displayName, NodeClass: nodeClass, TypeDefinition: typeDef,
	}, nil
}

// BrowseResult is one NodesToBrowse entry's outcome.
type BrowseResult struct {
	StatusCode        StatusCode
	ContinuationPoint ByteString
	References        []*ReferenceDescription
}

func (br *BrowseResult) ByteLen() int {
	return 4 + br.ContinuationPoint.ByteLen() + ArrayByteLen(br.References, br.References == nil)
}

func (br *BrowseResult) Encode(w io.Writer) (int, error) {
	size, err := WriteUint32(w, uint32(br.StatusCode))
	if err != nil {
		return size, err
	}
	n, err := br.ContinuationPoint.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, br.References, br.References == nil)
	return size + n, err
}

func DecodeBrowseResult(r io.Reader, limits *DecodingLimits) (*BrowseResult, error) {
	status, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	cp, err := DecodeByteString(r, limits)
	if err != nil {
		return nil, err
	}
	refs, _, err := ReadArray(r, limits, DecodeReferenceDescription)
	if err != nil {
		return nil, err
	}
	return &BrowseResult{StatusCode: StatusCode(status), ContinuationPoint: cp, References: refs}, nil
}

// BrowseRequest discovers references from a set of starting nodes.
type BrowseRequest struct {
	RequestHeader                 *RequestHeader
	View                          *NodeID
	RequestedMaxReferencesPerNode uint32
	NodesToBrowse                 []*BrowseDescription
}

func (req *BrowseRequest) ObjectID() ObjectID { return ObjectIDBrowseRequestEncodingDefaultBinary }

func (req *BrowseRequest) ByteLen() int {
	return req.RequestHeader.ByteLen() + req.View.ByteLen() + 4 +
		ArrayByteLen(req.NodesToBrowse, req.NodesToBrowse == nil)
}

func (req *BrowseRequest) Encode(w io.Writer) (int, error) {
	size, err := req.RequestHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := req.View.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, req.RequestedMaxReferencesPerNode)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, req.NodesToBrowse, req.NodesToBrowse == nil)
	return size + n, err
}

func DecodeBrowseRequest(r io.Reader, limits *DecodingLimits) (*BrowseRequest, error) {
	hdr, err := DecodeRequestHeader(r, limits)
	if err != nil {
		return nil, err
	}
	view, err := DecodeNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	maxRefs, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	nodes, _, err := ReadArray(r, limits, DecodeBrowseDescription)
	if err != nil {
		return nil, err
	}
	return &BrowseRequest{RequestHeader: hdr, View: view, RequestedMaxReferencesPerNode: maxRefs, NodesToBrowse: nodes}, nil
}

// BrowseResponse returns the outcome of a BrowseRequest.
type BrowseResponse struct {
	ResponseHeader  *ResponseHeader
	Results         []*BrowseResult
	DiagnosticInfos []*DiagnosticInfo
}

func (resp *BrowseResponse) ObjectID() ObjectID { return ObjectIDBrowseResponseEncodingDefaultBinary }

func (resp *BrowseResponse) ByteLen() int {
	return resp.ResponseHeader.ByteLen() +
		ArrayByteLen(resp.Results, resp.Results == nil) +
		ArrayByteLen(resp.DiagnosticInfos, resp.DiagnosticInfos == nil)
}

func (resp *BrowseResponse) Encode(w io.Writer) (int, error) {
	size, err := resp.ResponseHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteArray(w, resp.Results, resp.Results == nil)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, resp.DiagnosticInfos, resp.DiagnosticInfos == nil)
	return size + n, err
}

func DecodeBrowseResponse(r io.Reader, limits *DecodingLimits) (*BrowseResponse, error) {
	hdr, err := DecodeResponseHeader(r, limits)
	if err != nil {
		return nil, err
	}
	results, _, err := ReadArray(r, limits, DecodeBrowseResult)
	if err != nil {
		return nil, err
	}
	diags, _, err := ReadArray(r, limits, DecodeDiagnosticInfo)
	if err != nil {
		return nil, err
	}
	return &BrowseResponse{ResponseHeader: hdr, Results: results, DiagnosticInfos: diags}, nil
}

// BrowseNextRequest continues a Browse whose results did not fit in one
// response (grounded directly on
// original_source/types/src/service_types/browse_next_request.rs).
type BrowseNextRequest struct {
	RequestHeader             *RequestHeader
	ReleaseContinuationPoints bool
	ContinuationPoints        []ByteString
}

func (req *BrowseNextRequest) ObjectID() ObjectID {
	return ObjectIDBrowseNextRequestEncodingDefaultBinary
}

func (req *BrowseNextRequest) ByteLen() int {
	return req.RequestHeader.ByteLen() + 1 + ArrayByteLen(req.ContinuationPoints, req.ContinuationPoints == nil)
}

func (req *BrowseNextRequest) Encode(w io.Writer) (int, error) {
	size, err := req.RequestHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteBoolean(w, req.ReleaseContinuationPoints)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, req.ContinuationPoints, req.ContinuationPoints == nil)
	return size + n, err
}

func DecodeBrowseNextRequest(r io.Reader, limits *DecodingLimits) (*BrowseNextRequest, error) {
	hdr, err := DecodeRequestHeader(r, limits)
	if err != nil {
		return nil, err
	}
	release, err := ReadBoolean(r)
	if err != nil {
		return nil, err
	}
	cps, _, err := ReadArray(r, limits, DecodeByteString)
	if err != nil {
		return nil, err
	}
	return &BrowseNextRequest{RequestHeader: hdr, ReleaseContinuationPoints: release, ContinuationPoints: cps}, nil
}

// BrowseNextResponse returns the next page of a Browse's results.
type BrowseNextResponse struct {
	ResponseHeader  *ResponseHeader
	Results         []*BrowseResult
	DiagnosticInfos []*DiagnosticInfo
}

func (resp *BrowseNextResponse) ObjectID() ObjectID {
	return ObjectIDBrowseNextResponseEncodingDefaultBinary
}

func (resp *BrowseNextResponse) ByteLen() int {
	return resp.ResponseHeader.ByteLen() +
		ArrayByteLen(resp.Results, resp.Results == nil) +
		ArrayByteLen(resp.DiagnosticInfos, resp.DiagnosticInfos == nil)
}

func (resp *BrowseNextResponse) Encode(w io.Writer) (int, error) {
	size, err := resp.ResponseHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteArray(w, resp.Results, resp.Results == nil)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, resp.DiagnosticInfos, resp.DiagnosticInfos == nil)
	return size + n, err
}

func DecodeBrowseNextResponse(r io.Reader, limits *DecodingLimits) (*BrowseNextResponse, error) {
	hdr, err := DecodeResponseHeader(r, limits)
	if err != nil {
		return nil, err
	}
	results, _, err := ReadArray(r, limits, DecodeBrowseResult)
	if err != nil {
		return nil, err
	}
	diags, _, err := ReadArray(r, limits, DecodeDiagnosticInfo)
	if err != nil {
		return nil, err
	}
	return &BrowseNextResponse{ResponseHeader: hdr, Results: results, DiagnosticInfos: diags}, nil
}

// CallMethodRequest invokes one method on one object.
type CallMethodRequest struct {
	ObjectID        *NodeID
	MethodID        *NodeID
	InputArguments  []*Variant
}

func (c *CallMethodRequest) ByteLen() int {
	return c.ObjectID.ByteLen() + c.MethodID.ByteLen() + ArrayByteLen(c.InputArguments, c.InputArguments == nil)
}

func (c *CallMethodRequest) Encode(w io.Writer) (int, error) {
	size, err := c.ObjectID.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := c.MethodID.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, c.InputArguments, c.InputArguments == nil)
	return size + n, err
}

func DecodeCallMethodRequest(r io.Reader, limits *DecodingLimits) (*CallMethodRequest, error) {
	objID, err := DecodeNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	methodID, err := DecodeNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	args, _, err := ReadArray(r, limits, DecodeVariant)
	if err != nil {
		return nil, err
	}
	return &CallMethodRequest{ObjectID: objID, MethodID: methodID, InputArguments: args}, nil
}

// CallMethodResult is one CallMethodRequest's outcome.
type CallMethodResult struct {
	StatusCode                   StatusCode
	InputArgumentResults         []StatusCode
	InputArgumentDiagnosticInfos []*DiagnosticInfo
	OutputArguments               []*Variant
}

func (c *CallMethodResult) ByteLen() int {
	size := 4 + 4
	if c.InputArgumentResults != nil {
		size += 4 * len(c.InputArgumentResults)
	}
	size += ArrayByteLen(c.InputArgumentDiagnosticInfos, c.InputArgumentDiagnosticInfos == nil)
	size += ArrayByteLen(c.OutputArguments, c.OutputArguments == nil)
	return size
}

func (c *CallMethodResult) Encode(w io.Writer) (int, error) {
	size, err := WriteUint32(w, uint32(c.StatusCode))
	if err != nil {
		return size, err
	}
	n, err := WriteArrayLen(w, len(c.InputArgumentResults), c.InputArgumentResults == nil)
	size += n
	if err != nil {
		return size, err
	}
	for _, sc := range c.InputArgumentResults {
		n, err := WriteUint32(w, uint32(sc))
		size += n
		if err != nil {
			return size, err
		}
	}
	n, err = WriteArray(w, c.InputArgumentDiagnosticInfos, c.InputArgumentDiagnosticInfos == nil)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, c.OutputArguments, c.OutputArguments == nil)
	return size + n, err
}

func DecodeCallMethodResult(r io.Reader, limits *DecodingLimits) (*CallMethodResult, error) {
	status, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	count, null, err := ReadArrayLen(r, limits.maxArrayLength())
	if err != nil {
		return nil, err
	}
	var results []StatusCode
	if !null {
		results = make([]StatusCode, 0, count)
		for i := 0; i < count; i++ {
			v, err := ReadUint32(r)
			if err != nil {
				return nil, err
			}
			results = append(results, StatusCode(v))
		}
	}
	diags, _, err := ReadArray(r, limits, DecodeDiagnosticInfo)
	if err != nil {
		return nil, err
	}
	outputs, _, err := ReadArray(r, limits, DecodeVariant)
	if err != nil {
		return nil, err
	}
	return &CallMethodResult{
		StatusCode: StatusCode(status), InputArgumentResults: results,
		InputArgumentDiagnosticInfos: diags, OutputArguments: outputs,
	}, nil
}

// CallRequest invokes one or more methods.
type CallRequest struct {
	RequestHeader *RequestHeader
	MethodsToCall []*CallMethodRequest
}

func (req *CallRequest) ObjectID() ObjectID { return ObjectIDCallRequestEncodingDefaultBinary }

func (req *CallRequest) ByteLen() int {
	return req.RequestHeader.ByteLen() + ArrayByteLen(req.MethodsToCall, req.MethodsToCall == nil)
}

func (req *CallRequest) Encode(w io.Writer) (int, error) {
	size, err := req.RequestHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteArray(w, req.MethodsToCall, req.MethodsToCall == nil)
	return size + n, err
}

func DecodeCallRequest(r io.Reader, limits *DecodingLimits) (*CallRequest, error) {
	hdr, err := DecodeRequestHeader(r, limits)
	if err != nil {
		return nil, err
	}
	methods, _, err := ReadArray(r, limits, DecodeCallMethodRequest)
	if err != nil {
		return nil, err
	}
	return &CallRequest{RequestHeader: hdr, MethodsToCall: methods}, nil
}

// CallResponse returns the outcome of a CallRequest.
type CallResponse struct {
	ResponseHeader  *ResponseHeader
	Results         []*CallMethodResult
	DiagnosticInfos []*DiagnosticInfo
}

func (resp *CallResponse) ObjectID() ObjectID { return ObjectIDCallResponseEncodingDefaultBinary }

func (resp *CallResponse) ByteLen() int {
	return resp.ResponseHeader.ByteLen() +
		ArrayByteLen(resp.Results, resp.Results == nil) +
		ArrayByteLen(resp.DiagnosticInfos, resp.DiagnosticInfos == nil)
}

func (resp *CallResponse) Encode(w io.Writer) (int, error) {
	size, err := resp.ResponseHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteArray(w, resp.Results, resp.Results == nil)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, resp.DiagnosticInfos, resp.DiagnosticInfos == nil)
	return size + n, err
}

func DecodeCallResponse(r io.Reader, limits *DecodingLimits) (*CallResponse, error) {
	hdr, err := DecodeResponseHeader(r, limits)
	if err != nil {
		return nil, err
	}
	results, _, err := ReadArray(r, limits, DecodeCallMethodResult)
	if err != nil {
		return nil, err
	}
	diags, _, err := ReadArray(r, limits, DecodeDiagnosticInfo)
	if err != nil {
		return nil, err
	}
	return &CallResponse{ResponseHeader: hdr, Results: results, DiagnosticInfos: diags}, nil
}

// EndpointDescription describes one endpoint a server offers.
type EndpointDescription struct {
	EndpointURL         String
	ServerCertificate   ByteString
	SecurityMode        uint32
	SecurityPolicyURI   String
	TransportProfileURI String
	SecurityLevel       byte
}

func (e *EndpointDescription) ByteLen() int {
	return e.EndpointURL.ByteLen() + e.ServerCertificate.ByteLen() + 4 +
		e.SecurityPolicyURI.ByteLen() + e.TransportProfileURI.ByteLen() + 1
}

func (e *EndpointDescription) Encode(w io.Writer) (int, error) {
	size, err := e.EndpointURL.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := e.ServerCertificate.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, e.SecurityMode)
	size += n
	if err != nil {
		return size, err
	}
	n, err = e.SecurityPolicyURI.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = e.TransportProfileURI.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint8(w, e.SecurityLevel)
	return size + n, err
}

func DecodeEndpointDescription(r io.Reader, limits *DecodingLimits) (*EndpointDescription, error) {
	url, err := DecodeString(r, limits)
	if err != nil {
		return nil, err
	}
	cert, err := DecodeByteString(r, limits)
	if err != nil {
		return nil, err
	}
	mode, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	policy, err := DecodeString(r, limits)
	if err != nil {
		return nil, err
	}
	transport, err := DecodeString(r, limits)
	if err != nil {
		return nil, err
	}
	level, err := ReadUint8(r)
	if err != nil {
		return nil, err
	}
	return &EndpointDescription{
		EndpointURL: url, ServerCertificate: cert, SecurityMode: mode,
		SecurityPolicyURI: policy, TransportProfileURI: transport, SecurityLevel: level,
	}, nil
}

// GetEndpointsRequest asks a server which endpoints it supports.
type GetEndpointsRequest struct {
	RequestHeader *RequestHeader
	EndpointURL   String
	LocaleIDs     []String
	ProfileURIs   []String
}

func (req *GetEndpointsRequest) ObjectID() ObjectID {
	return ObjectIDGetEndpointsRequestEncodingDefaultBinary
}

func (req *GetEndpointsRequest) ByteLen() int {
	return req.RequestHeader.ByteLen() + req.EndpointURL.ByteLen() +
		ArrayByteLen(req.LocaleIDs, req.LocaleIDs == nil) + ArrayByteLen(req.ProfileURIs, req.ProfileURIs == nil)
}

func (req *GetEndpointsRequest) Encode(w io.Writer) (int, error) {
	size, err := req.RequestHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := req.EndpointURL.Encode(w)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, req.LocaleIDs, req.LocaleIDs == nil)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, req.ProfileURIs, req.ProfileURIs == nil)
	return size + n, err
}

func DecodeGetEndpointsRequest(r io.Reader, limits *DecodingLimits) (*GetEndpointsRequest, error) {
	hdr, err := DecodeRequestHeader(r, limits)
	if err != nil {
		return nil, err
	}
	url, err := DecodeString(r, limits)
	if err != nil {
		return nil, err
	}
	locales, _, err := ReadArray(r, limits, DecodeString)
	if err != nil {
		return nil, err
	}
	profiles, _, err := ReadArray(r, limits, DecodeString)
	if err != nil {
		return nil, err
	}
	return &GetEndpointsRequest{RequestHeader: hdr, EndpointURL: url, LocaleIDs: locales, ProfileURIs: profiles}, nil
}

// GetEndpointsResponse lists a server's available endpoints.
type GetEndpointsResponse struct {
	ResponseHeader *ResponseHeader
	Endpoints      []*EndpointDescription
}

func (resp *GetEndpointsResponse) ObjectID() ObjectID {
	return ObjectIDGetEndpointsResponseEncodingDefaultBinary
}

func (resp *GetEndpointsResponse) ByteLen() int {
	return resp.ResponseHeader.ByteLen() + ArrayByteLen(resp.Endpoints, resp.Endpoints == nil)
}

func (resp *GetEndpointsResponse) Encode(w io.Writer) (int, error) {
	size, err := resp.ResponseHeader.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteArray(w, resp.Endpoints, resp.Endpoints == nil)
	return size + n, err
}

func DecodeGetEndpointsResponse(r io.Reader, limits *DecodingLimits) (*GetEndpointsResponse, error) {
	hdr, err := DecodeResponseHeader(r, limits)
	if err != nil {
		return nil, err
	}
	endpoints, _, err := ReadArray(r, limits, DecodeEndpointDescription)
	if err != nil {
		return nil, err
	}
	return &GetEndpointsResponse{ResponseHeader: hdr, Endpoints: endpoints}, nil
}

// SessionlessInvokeRequestType accompanies a service request sent outside a
// session context, mapping local namespace/server indexes to URIs (grounded
// on original_source/types/src/service_types/sessionless_invoke_response_type.rs,
// the response half of the same pair).
type SessionlessInvokeRequestType struct {
	NamespaceURIs []String
	ServerURIs    []String
	LocaleIDs     []String
	ServiceID     uint32
}

func (s *SessionlessInvokeRequestType) ByteLen() int {
	return ArrayByteLen(s.NamespaceURIs, s.NamespaceURIs == nil) +
		ArrayByteLen(s.ServerURIs, s.ServerURIs == nil) +
		ArrayByteLen(s.LocaleIDs, s.LocaleIDs == nil) + 4
}

func (s *SessionlessInvokeRequestType) Encode(w io.Writer) (int, error) {
	size, err := WriteArray(w, s.NamespaceURIs, s.NamespaceURIs == nil)
	if err != nil {
		return size, err
	}
	n, err := WriteArray(w, s.ServerURIs, s.ServerURIs == nil)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteArray(w, s.LocaleIDs, s.LocaleIDs == nil)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, s.ServiceID)
	return size + n, err
}

func DecodeSessionlessInvokeRequestType(r io.Reader, limits *DecodingLimits) (*SessionlessInvokeRequestType, error) {
	nsURIs, _, err := ReadArray(r, limits, DecodeString)
	if err != nil {
		return nil, err
	}
	serverURIs, _, err := ReadArray(r, limits, DecodeString)
	if err != nil {
		return nil, err
	}
	locales, _, err := ReadArray(r, limits, DecodeString)
	if err != nil {
		return nil, err
	}
	serviceID, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	return &SessionlessInvokeRequestType{NamespaceURIs: nsURIs, ServerURIs: serverURIs, LocaleIDs: locales, ServiceID: serviceID}, nil
}

// SessionlessInvokeResponseType is the response counterpart, field-for-field
// grounded on the original_source file named above.
type SessionlessInvokeResponseType struct {
	NamespaceURIs []String
	ServerURIs    []String
	ServiceID     uint32
}

func (s *SessionlessInvokeResponseType) ByteLen() int {
	return ArrayByteLen(s.NamespaceURIs, s.NamespaceURIs == nil) +
		ArrayByteLen(s.ServerURIs, s.ServerURIs == nil) + 4
}

func (s *SessionlessInvokeResponseType) Encode(w io.Writer) (int, error) {
	size, err := WriteArray(w, s.NamespaceURIs, s.NamespaceURIs == nil)
	if err != nil {
		return size, err
	}
	n, err := WriteArray(w, s.ServerURIs, s.ServerURIs == nil)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint32(w, s.ServiceID)
	return size + n, err
}

func DecodeSessionlessInvokeResponseType(r io.Reader, limits *DecodingLimits) (*SessionlessInvokeResponseType, error) {
	nsURIs, _, err := ReadArray(r, limits, DecodeString)
	if err != nil {
		return nil, err
	}
	serverURIs, _, err := ReadArray(r, limits, DecodeString)
	if err != nil {
		return nil, err
	}
	serviceID, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	return &SessionlessInvokeResponseType{NamespaceURIs: nsURIs, ServerURIs: serverURIs, ServiceID: serviceID}, nil
}
