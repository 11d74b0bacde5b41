package serde

var (
	_ Serde[[]byte]        = bytesSerde{}
	_ Serialiser[[]byte]   = bytesSerde{}
	_ Deserialiser[[]byte] = bytesSerde{}
)

type bytesSerde struct{}

func Bytes() Serde[[]byte] {
	return bytesSerde{}
}

func (s bytesSerde) Serialise(endpoint string, value []byte) ([]byte, error) {
	return value, nil
}

func (s bytesSerde) Deserialise(endpoint string, data []byte) ([]byte, error) {
	return data, nil
}
