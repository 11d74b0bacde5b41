package serde

type Serde[T any] interface {
	Serialiser[T]
	Deserialiser[T]
}

type Serialiser[T any] interface {
	Serialise(endpoint string, value T) ([]byte, error)
}

type Deserialiser[T any] interface {
	Deserialise(endpoint string, data []byte) (T, error)
}
