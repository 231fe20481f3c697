package vgs

// ShapeMode selects how a batch of records is framed on the wire.
type ShapeMode int

const (
	// BareArray sends the records as a bare JSON array and expects the
	// proxy to answer with a bare JSON array.
	BareArray ShapeMode = iota

	// KeyedObject nests the records under a single key, for proxy routes
	// whose aliasing rules match a JSON array at a specific path. The
	// response must be an object containing the same key.
	KeyedObject
)

// Shape describes the request body framing for one tokenize call. The two
// variants make the response-parsing paths explicit and exhaustive instead
// of overloading an optional key with null-means-bare semantics.
type Shape struct {
	Mode ShapeMode
	Key  string // set only for KeyedObject
}

// BareShape returns the bare-array request shape.
func BareShape() Shape {
	return Shape{Mode: BareArray}
}

// KeyedShape returns a request shape that nests records under key.
func KeyedShape(key string) Shape {
	return Shape{Mode: KeyedObject, Key: key}
}

// ShapeFor maps the wire-level optional batch_key to a Shape. An empty key
// means the bare-array framing. Used where batch_key arrives as a plain
// string field, such as the /tokenize request body and CLI flags.
func ShapeFor(batchKey string) Shape {
	if batchKey == "" {
		return BareShape()
	}
	return KeyedShape(batchKey)
}
