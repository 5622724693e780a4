package transcoder

// Entry is one key/value pair of a decoded struct.
type Entry struct {
	Value any
	Key   string
}

// Object is a decoded struct: its fields in wire order.
//
// Decoded values are built from Object, []any, string, bool, json.Number and
// nil. The encoder accepts the same shapes plus map[string]any, so decoder
// output can be fed back without a JSON round trip.
type Object []Entry

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, e := range o {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the field names in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, e := range o {
		keys[i] = e.Key
	}
	return keys
}

// MarshalJSON writes the fields in order.
func (o Object) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, o)
}

// field looks up key in an object-shaped value. ok is false when value is
// not an object at all.
func field(value any, key string) (v any, present, ok bool) {
	switch obj := value.(type) {
	case map[string]any:
		v, present = obj[key]
		return v, present, true
	case Object:
		v, present = obj.Get(key)
		return v, present, true
	}
	return nil, false, false
}

func isObject(value any) bool {
	switch value.(type) {
	case map[string]any, Object:
		return true
	}
	return false
}
