package serializer

import (
	"github.com/bytedance/sonic"
)

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer() ISerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the ISerializer interface using the sonic
// json encoder
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Serialize(data TestData) ([]byte, error) {
	return sonic.Marshal(data)
}

func (j jsonSerializerImpl) Deserialize(b []byte, data *TestData) error {
	return sonic.Unmarshal(b, data)
}
