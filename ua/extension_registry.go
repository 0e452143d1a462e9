package ua

import "sync"

// ExtensionObjectBody is the codec contract an application-defined structure
// implements to hang its own binary representation off an ExtensionObject's
// ByteString body. This module itself ships no implementation of it.
type ExtensionObjectBody interface {
	// Encode returns this value's ByteString-encoded body bytes.
	Encode() ([]byte, error)
	// Decode populates the receiver from body bytes, returning the number
	// of bytes consumed.
	Decode(body []byte) (int, error)
}

// ExtensionObjectFactory constructs a fresh, zero-valued ExtensionObjectBody
// for a registered type id, ready to have Decode called on it.
type ExtensionObjectFactory func() ExtensionObjectBody

var extensionRegistry = struct {
	mu    sync.RWMutex
	byKey map[string]ExtensionObjectFactory
}{byKey: make(map[string]ExtensionObjectFactory)}

// RegisterExtensionObjectType associates a data-type-encoding NodeId with a
// factory for the Go type that knows how to encode/decode that
// ExtensionObject's body. This is a small convenience layer on top of the
// raw ExtensionObject codec, not required by spec §4.2 but directly useful to
// any caller building application-defined structures on top of it.
func RegisterExtensionObjectType(typeID *NodeID, factory ExtensionObjectFactory) {
	extensionRegistry.mu.Lock()
	defer extensionRegistry.mu.Unlock()
	extensionRegistry.byKey[typeID.String()] = factory
}

// DecodeRegisteredBody looks up typeID in the registry and, if found,
// decodes obj.Body into a fresh instance of the registered Go type. It
// returns (nil, false) if no type is registered for typeID — the raw
// ExtensionObject is still valid and usable as-is in that case.
func DecodeRegisteredBody(obj *ExtensionObject) (ExtensionObjectBody, bool, error) {
	extensionRegistry.mu.RLock()
	factory, ok := extensionRegistry.byKey[obj.TypeID.String()]
	extensionRegistry.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	body := factory()
	if _, err := body.Decode(obj.Body); err != nil {
		return nil, true, err
	}
	return body, true, nil
}
