package serializer

import (
	"encoding/binary"
	"fmt"
)

// NewBinarySerializer creates a new serializer using a custom deterministic
// binary format. Every field is always written in a fixed order with a fixed
// layout, so equal records always produce byte-identical output.
func NewBinarySerializer() ISerializer {
	return &binarySerializerImpl{}
}

// binarySerializerImpl implements ISerializer using a custom binary format
//
// Layout: [4 bytes ID][4 bytes name length][name bytes][1 byte active]
type binarySerializerImpl struct {
}

// headerSize is the fixed portion of the encoding: ID + name length
const headerSize = 8

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (s binarySerializerImpl) Serialize(data TestData) ([]byte, error) {
	nameBytes := []byte(data.Name)
	nameLen := len(nameBytes)

	result := make([]byte, headerSize+nameLen+1)

	// Write ID
	binary.BigEndian.PutUint32(result[0:4], data.ID)

	// Write name length and data
	binary.BigEndian.PutUint32(result[4:8], uint32(nameLen))
	copy(result[headerSize:headerSize+nameLen], nameBytes)

	// Write active flag
	if data.Active {
		result[headerSize+nameLen] = 1
	}

	return result, nil
}

func (s binarySerializerImpl) Deserialize(b []byte, data *TestData) error {
	// Check minimum size (ID + name length)
	if len(b) < headerSize {
		return fmt.Errorf("data too short for record header")
	}

	// Read ID
	data.ID = binary.BigEndian.Uint32(b[0:4])

	// Read name length
	nameLen := binary.BigEndian.Uint32(b[4:8])
	pos := headerSize

	if pos+int(nameLen) > len(b) {
		return fmt.Errorf("data too short for name data")
	}

	// Read name data
	data.Name = string(b[pos : pos+int(nameLen)])
	pos += int(nameLen)

	// Read active flag
	if pos+1 > len(b) {
		return fmt.Errorf("data too short for active flag")
	}
	data.Active = b[pos] != 0

	return nil
}
