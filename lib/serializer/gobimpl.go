package serializer

import (
	"bytes"
	"encoding/gob"
)

// NewGOBSerializer creates a new serializer using Go's binary gob format
func NewGOBSerializer() ISerializer {
	return &gobSerializerImpl{}
}

// gobSerializerImpl implements the ISerializer interface using gob encoding
type gobSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (g gobSerializerImpl) Serialize(data TestData) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g gobSerializerImpl) Deserialize(b []byte, data *TestData) error {
	buf := bytes.NewBuffer(b)
	dec := gob.NewDecoder(buf)
	return dec.Decode(data)
}
