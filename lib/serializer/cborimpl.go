package serializer

import (
	"github.com/ugorji/go/codec"
)

// NewCBORSerializer creates a new serializer using canonical CBOR encoding.
// Canonical mode fixes the field order, so equal records always produce
// byte-identical output.
func NewCBORSerializer() ISerializer {
	handle := &codec.CborHandle{}
	handle.Canonical = true
	return &cborSerializerImpl{handle: handle}
}

// cborSerializerImpl implements the ISerializer interface using CBOR
type cborSerializerImpl struct {
	handle *codec.CborHandle
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (c cborSerializerImpl) Serialize(data TestData) ([]byte, error) {
	var out []byte
	enc := codec.NewEncoderBytes(&out, c.handle)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return out, nil
}

func (c cborSerializerImpl) Deserialize(b []byte, data *TestData) error {
	dec := codec.NewDecoderBytes(b, c.handle)
	return dec.Decode(data)
}
