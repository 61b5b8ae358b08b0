package server

import (
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"
)

const maxBodyBytes = 1 << 20

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return eris.Wrap(err, "decoding request body")
	}
	return nil
}
