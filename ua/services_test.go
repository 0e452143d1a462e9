package ua

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHeaderRoundTrip(t *testing.T) {
	hdr := &RequestHeader{
		AuthenticationToken: NewNumericNodeID(0, 1),
		Timestamp:           DateTime(1000),
		RequestHandle:       42,
		ReturnDiagnostics:   0x3FF,
		AuditEntryID:        NewString("audit-entry"),
		TimeoutHint:         5000,
		AdditionalHeader:    nil,
	}

	var buf bytes.Buffer
	n, err := hdr.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, hdr.ByteLen(), n)

	got, err := DecodeRequestHeader(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, hdr.RequestHandle, got.RequestHandle)
	assert.Equal(t, hdr.ReturnDiagnostics, got.ReturnDiagnostics)
	assert.Equal(t, "audit-entry", got.AuditEntryID.Value)
	assert.Equal(t, hdr.TimeoutHint, got.TimeoutHint)
	assert.True(t, got.AdditionalHeader.TypeID.IntID() == 0)
}

func TestResponseHeaderRoundTripWithNilDiagnostics(t *testing.T) {
	hdr := &ResponseHeader{
		Timestamp:          DateTime(2000),
		RequestHandle:      7,
		ServiceResult:      StatusOK,
		ServiceDiagnostics: nil,
		StringTable:        nil,
		AdditionalHeader:   nil,
	}

	var buf bytes.Buffer
	n, err := hdr.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, hdr.ByteLen(), n)

	got, err := DecodeResponseHeader(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, hdr.RequestHandle, got.RequestHandle)
	assert.Equal(t, StatusOK, got.ServiceResult)
	assert.Empty(t, got.StringTable)
}

func TestReadRequestResponseRoundTrip(t *testing.T) {
	req := &ReadRequest{
		RequestHeader:      &RequestHeader{AuthenticationToken: NewNumericNodeID(0, 0), AuditEntryID: NullString()},
		MaxAge:             500.0,
		TimestampsToReturn: 2,
		NodesToRead: []*ReadValueID{
			{NodeID: NewNumericNodeID(2, 1001), AttributeID: 13, IndexRange: NullString(), DataEncoding: QualifiedName{Name: NullString()}},
		},
	}
	assert.Equal(t, ObjectIDReadRequestEncodingDefaultBinary, req.ObjectID())

	var buf bytes.Buffer
	n, err := req.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, req.ByteLen(), n)

	got, err := DecodeReadRequest(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, req.MaxAge, got.MaxAge)
	assert.Equal(t, req.TimestampsToReturn, got.TimestampsToReturn)
	require.Len(t, got.NodesToRead, 1)
	assert.Equal(t, uint32(1001), got.NodesToRead[0].NodeID.IntID())
	assert.Equal(t, uint32(13), got.NodesToRead[0].AttributeID)

	v, err := NewVariant(int32(72))
	require.NoError(t, err)
	resp := &ReadResponse{
		ResponseHeader: &ResponseHeader{},
		Results:        []*DataValue{{Value: v}},
	}
	assert.Equal(t, ObjectIDReadResponseEncodingDefaultBinary, resp.ObjectID())

	buf.Reset()
	_, err = resp.Encode(&buf)
	require.NoError(t, err)

	gotResp, err := DecodeReadResponse(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	require.Len(t, gotResp.Results, 1)
	assert.Equal(t, int32(72), gotResp.Results[0].Value.Value())
}

func TestBrowseRequestResponseRoundTrip(t *testing.T) {
	req := &BrowseRequest{
		RequestHeader:                 &RequestHeader{AuthenticationToken: NewNumericNodeID(0, 0), AuditEntryID: NullString()},
		View:                          NewNumericNodeID(0, 0),
		RequestedMaxReferencesPerNode: 100,
		NodesToBrowse: []*BrowseDescription{
			{
				NodeID:          NewNumericNodeID(0, 85),
				BrowseDirection: 0,
				ReferenceTypeID: NewNumericNodeID(0, 33),
				IncludeSubtypes: true,
				NodeClassMask:   0,
				ResultMask:      0x3F,
			},
		},
	}
	assert.Equal(t, ObjectIDBrowseRequestEncodingDefaultBinary, req.ObjectID())

	var buf bytes.Buffer
	_, err := req.Encode(&buf)
	require.NoError(t, err)

	got, err := DecodeBrowseRequest(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	require.Len(t, got.NodesToBrowse, 1)
	assert.Equal(t, uint32(85), got.NodesToBrowse[0].NodeID.IntID())
	assert.True(t, got.NodesToBrowse[0].IncludeSubtypes)

	resp := &BrowseResponse{
		ResponseHeader: &ResponseHeader{},
		Results: []*BrowseResult{
			{
				StatusCode:        StatusOK,
				ContinuationPoint: NullByteString(),
				References: []*ReferenceDescription{
					{
						ReferenceTypeID: NewNumericNodeID(0, 33),
						IsForward:       true,
						NodeID:          &ExpandedNodeID{NodeID: NewNumericNodeID(2, 500), NamespaceURI: NullString()},
						BrowseName:      QualifiedName{NamespaceIndex: 2, Name: NewString("Sensor1")},
						DisplayName:     LocalizedText{Locale: NullString(), Text: NewString("Sensor1")},
						NodeClass:       1,
						TypeDefinition:  &ExpandedNodeID{NodeID: NewNumericNodeID(0, 58), NamespaceURI: NullString()},
					},
				},
			},
		},
	}
	assert.Equal(t, ObjectIDBrowseResponseEncodingDefaultBinary, resp.ObjectID())

	buf.Reset()
	_, err = resp.Encode(&buf)
	require.NoError(t, err)

	gotResp, err := DecodeBrowseResponse(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	require.Len(t, gotResp.Results, 1)
	require.Len(t, gotResp.Results[0].References, 1)
	assert.Equal(t, "Sensor1", gotResp.Results[0].References[0].BrowseName.Name.Value)
}

func TestBrowseNextRequestRoundTrip(t *testing.T) {
	req := &BrowseNextRequest{
		RequestHeader:             &RequestHeader{AuthenticationToken: NewNumericNodeID(0, 0), AuditEntryID: NullString()},
		ReleaseContinuationPoints: false,
		ContinuationPoints:        []ByteString{NewByteString([]byte{1, 2, 3}), NewByteString([]byte{4, 5})},
	}
	assert.Equal(t, ObjectIDBrowseNextRequestEncodingDefaultBinary, req.ObjectID())

	var buf bytes.Buffer
	n, err := req.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, req.ByteLen(), n)

	got, err := DecodeBrowseNextRequest(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.False(t, got.ReleaseContinuationPoints)
	require.Len(t, got.ContinuationPoints, 2)
	assert.Equal(t, []byte{1, 2, 3}, got.ContinuationPoints[0].Data)
	assert.Equal(t, []byte{4, 5}, got.ContinuationPoints[1].Data)
}

func TestCallRequestResponseRoundTrip(t *testing.T) {
	arg, err := NewVariant(int32(10))
	require.NoError(t, err)
	req := &CallRequest{
		RequestHeader: &RequestHeader{AuthenticationToken: NewNumericNodeID(0, 0), AuditEntryID: NullString()},
		MethodsToCall: []*CallMethodRequest{
			{ObjectID: NewNumericNodeID(2, 1), MethodID: NewNumericNodeID(2, 2), InputArguments: []*Variant{arg}},
		},
	}
	assert.Equal(t, ObjectIDCallRequestEncodingDefaultBinary, req.ObjectID())

	var buf bytes.Buffer
	_, err = req.Encode(&buf)
	require.NoError(t, err)

	got, err := DecodeCallRequest(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	require.Len(t, got.MethodsToCall, 1)
	require.Len(t, got.MethodsToCall[0].InputArguments, 1)
	assert.Equal(t, int32(10), got.MethodsToCall[0].InputArguments[0].Value())

	out, err := NewVariant(int32(99))
	require.NoError(t, err)
	resp := &CallResponse{
		ResponseHeader: &ResponseHeader{},
		Results: []*CallMethodResult{
			{
				StatusCode:                   StatusOK,
				InputArgumentResults:         []StatusCode{StatusOK, StatusBadInvalidState},
				InputArgumentDiagnosticInfos: nil,
				OutputArguments:              []*Variant{out},
			},
		},
	}
	assert.Equal(t, ObjectIDCallResponseEncodingDefaultBinary, resp.ObjectID())

	buf.Reset()
	_, err = resp.Encode(&buf)
	require.NoError(t, err)

	gotResp, err := DecodeCallResponse(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	require.Len(t, gotResp.Results, 1)
	require.Len(t, gotResp.Results[0].InputArgumentResults, 2)
	assert.Equal(t, StatusOK, gotResp.Results[0].InputArgumentResults[0])
	assert.Equal(t, StatusBadInvalidState, gotResp.Results[0].InputArgumentResults[1])
	require.Len(t, gotResp.Results[0].OutputArguments, 1)
	assert.Equal(t, int32(99), gotResp.Results[0].OutputArguments[0].Value())
}

func TestGetEndpointsRoundTrip(t *testing.T) {
	req := &GetEndpointsRequest{
		RequestHeader: &RequestHeader{AuthenticationToken: NewNumericNodeID(0, 0), AuditEntryID: NullString()},
		EndpointURL:   NewString("opc.tcp://host:4840"),
		LocaleIDs:     []String{NewString("en-US")},
		ProfileURIs:   nil,
	}
	assert.Equal(t, ObjectIDGetEndpointsRequestEncodingDefaultBinary, req.ObjectID())

	var buf bytes.Buffer
	_, err := req.Encode(&buf)
	require.NoError(t, err)

	got, err := DecodeGetEndpointsRequest(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, "opc.tcp://host:4840", got.EndpointURL.Value)
	require.Len(t, got.LocaleIDs, 1)
	assert.Nil(t, got.ProfileURIs)

	resp := &GetEndpointsResponse{
		ResponseHeader: &ResponseHeader{},
		Endpoints: []*EndpointDescription{
			{
				EndpointURL:         NewString("opc.tcp://host:4840"),
				ServerCertificate:   NullByteString(),
				SecurityMode:        1,
				SecurityPolicyURI:   NewString("http://opcfoundation.org/UA/SecurityPolicy#None"),
				TransportProfileURI: NewString("http://opcfoundation.org/UA-Profile/Transport/uatcp-uasc-uabinary"),
				SecurityLevel:       0,
			},
		},
	}
	assert.Equal(t, ObjectIDGetEndpointsResponseEncodingDefaultBinary, resp.ObjectID())

	buf.Reset()
	_, err = resp.Encode(&buf)
	require.NoError(t, err)

	gotResp, err := DecodeGetEndpointsResponse(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	require.Len(t, gotResp.Endpoints, 1)
	assert.Equal(t, uint32(1), gotResp.Endpoints[0].SecurityMode)
}

func TestSessionlessInvokeRoundTrip(t *testing.T) {
	req := &SessionlessInvokeRequestType{
		NamespaceURIs: []String{NewString("http://example.org/UA/")},
		ServerURIs:    []String{NewString("urn:example:server")},
		LocaleIDs:     []String{NewString("en-US")},
		ServiceID:     428,
	}
	var buf bytes.Buffer
	n, err := req.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, req.ByteLen(), n)

	got, err := DecodeSessionlessInvokeRequestType(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, uint32(428), got.ServiceID)
	require.Len(t, got.NamespaceURIs, 1)
	assert.Equal(t, "http://example.org/UA/", got.NamespaceURIs[0].Value)

	resp := &SessionlessInvokeResponseType{
		NamespaceURIs: []String{NewString("http://example.org/UA/")},
		ServerURIs:    []String{NewString("urn:example:server")},
		ServiceID:     431,
	}
	buf.Reset()
	n, err = resp.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, resp.ByteLen(), n)

	gotResp, err := DecodeSessionlessInvokeResponseType(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, uint32(431), gotResp.ServiceID)
	require.Len(t, gotResp.ServerURIs, 1)
	assert.Equal(t, "urn:example:server", gotResp.ServerURIs[0].Value)
}

func TestObjectIDToNodeID(t *testing.T) {
	n := ObjectIDReadRequestEncodingDefaultBinary.ToNodeID()
	assert.Equal(t, uint32(631), n.IntID())
	assert.Equal(t, uint16(0), n.Namespace())
}
