package serializer

import (
	"github.com/vmihailenco/msgpack/v5"
)

// NewMsgpackSerializer creates a new serializer using the compact msgpack
// binary encoding
func NewMsgpackSerializer() ISerializer {
	return &msgpackSerializerImpl{}
}

// msgpackSerializerImpl implements the ISerializer interface using msgpack
type msgpackSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (m msgpackSerializerImpl) Serialize(data TestData) ([]byte, error) {
	return msgpack.Marshal(data)
}

func (m msgpackSerializerImpl) Deserialize(b []byte, data *TestData) error {
	return msgpack.Unmarshal(b, data)
}
