package wayfarer

import "github.com/tidwall/sjson"

// payload builds a JSON request body field by field. sjson appends keys in
// insertion order, so bodies always serialize with a stable field layout.
type payload struct {
	data []byte
	err  error
}

func newPayload() *payload {
	return &payload{data: []byte(`{}`)}
}

// set writes a field. Errors are sticky; the first one wins.
func (p *payload) set(path string, value any) *payload {
	if p.err != nil {
		return p
	}
	p.data, p.err = sjson.SetBytes(p.data, path, value)
	return p
}

// setNonEmpty writes a string field only when it has a value, keeping update
// bodies sparse so untouched fields stay untouched server-side.
func (p *payload) setNonEmpty(path, value string) *payload {
	if value == "" {
		return p
	}
	return p.set(path, value)
}

func (p *payload) bytes() ([]byte, error) {
	return p.data, p.err
}
