package serializer

// Registry returns all available serializer factories keyed by format name
func Registry() map[string]func() ISerializer {
	return map[string]func() ISerializer{
		"binary":  NewBinarySerializer,
		"cbor":    NewCBORSerializer,
		"gob":     NewGOBSerializer,
		"json":    NewJSONSerializer,
		"msgpack": NewMsgpackSerializer,
	}
}
