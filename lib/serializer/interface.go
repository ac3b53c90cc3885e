package serializer

// TestData is the fixed sample record every format serializes. It is kept
// deliberately trivial so the comparison measures codec overhead, not payload
// complexity.
type TestData struct {
	ID     uint32 `json:"id" msgpack:"id" codec:"id"`
	Name   string `json:"name" msgpack:"name" codec:"name"`
	Active bool   `json:"active" msgpack:"active" codec:"active"`
}

// NewTestData returns the canonical sample record
func NewTestData() TestData {
	return TestData{
		ID:     1,
		Name:   "Go",
		Active: true,
	}
}

// ISerializer is the interface for all format implementations
type ISerializer interface {
	// Serialize serializes a TestData record into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(data TestData) ([]byte, error)
	// Deserialize deserializes a byte array into a TestData record
	// It takes a byte array and a pointer to a TestData record as parameters
	// It returns an error if any
	Deserialize(b []byte, data *TestData) error
}
