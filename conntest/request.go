package conntest

import (
	"encoding/json"
	"fmt"

	connect "github.com/cloudblue/connect-migration"
)

// Param returns a parameter with given ID and value.
func Param(id, value string) connect.Param {
	return connect.Param{ID: id, Value: value}
}

// NewRequest returns a request with given ID and parameters.
func NewRequest(id string, params ...connect.Param) *connect.Request {
	return &connect.Request{
		ID:     id,
		Type:   "purchase",
		Status: "pending",
		Asset: connect.Asset{
			ID:     "AS-" + id,
			Params: params,
		},
	}
}

// MigrationRequest returns a request carrying given data as the value of
// the "migration_info" parameter, followed by parameters with given IDs and
// empty values.
func MigrationRequest(id string, data interface{}, paramIDs ...string) *connect.Request {
	params := make([]connect.Param, 0, len(paramIDs)+1)
	for _, pid := range paramIDs {
		params = append(params, Param(pid, ""))
	}
	params = append(params, Param("migration_info", MustJSON(data)))
	return NewRequest(id, params...)
}

// MustJSON returns the JSON representation of given value. A string is
// returned unchanged, so that invalid JSON documents can be used as well.
func MustJSON(data interface{}) string {
	if s, ok := data.(string); ok {
		return s
	}
	raw, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("cannot serialize %T: %s", data, err))
	}
	return string(raw)
}

// ParamValue returns the value of a parameter or panics if the parameter
// does not exist.
func ParamValue(r *connect.Request, id string) string {
	v, ok := r.Asset.Params.Get(id)
	if !ok {
		panic(fmt.Sprintf("request %q has no %q parameter", r.ID, id))
	}
	return v
}
