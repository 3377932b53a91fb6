package connect

// Param is a single named request parameter. The value is always a string.
// Any other data must be serialized before it is assigned. A null value is
// represented by an empty string.
type Param struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// Params is an ordered collection of parameters.
type Params []Param

// Get returns the value of the first parameter with given ID.
func (ps Params) Get(id string) (string, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p.Value, true
		}
	}
	return "", false
}

// IDs returns the parameter IDs in order.
func (ps Params) IDs() []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

// Asset groups the parameters of a request.
type Asset struct {
	ID     string `json:"id,omitempty"`
	Params Params `json:"params"`
}

// Request is an entity processed by the pipeline.
type Request struct {
	ID     string `json:"id"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
	Asset  Asset  `json:"asset"`
}

// Clone returns a copy of the request that does not share any mutable state
// with the original.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	c := *r
	if r.Asset.Params != nil {
		c.Asset.Params = make(Params, len(r.Asset.Params))
		copy(c.Asset.Params, r.Asset.Params)
	}
	return &c
}

// Param returns a reference to the first parameter with given ID. The
// returned parameter can be used to modify the request in place.
func (r *Request) Param(id string) (*Param, bool) {
	for i := range r.Asset.Params {
		if r.Asset.Params[i].ID == id {
			return &r.Asset.Params[i], true
		}
	}
	return nil, false
}
