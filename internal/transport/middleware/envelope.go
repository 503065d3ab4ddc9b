package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// failure mirrors the REST response envelope for requests rejected before
// they reach a handler.
type failure struct {
	ID     string `json:"id"`
	Params struct {
		Status string `json:"status"`
		ErrMsg string `json:"errmsg"`
	} `json:"params"`
	ResponseCode string         `json:"responseCode"`
	Result       map[string]any `json:"result"`
}

// writeFailure renders a failed envelope for r with the given status.
func writeFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := failure{
		ID:           apiID(r.URL.Path),
		ResponseCode: strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_")),
		Result:       map[string]any{},
	}
	body.Params.Status = "failed"
	body.Params.ErrMsg = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// apiID names the endpoint from its first two path segments:
// /discussion/read/{id} -> api.discussion.read.
func apiID(path string) string {
	segs := strings.SplitN(strings.Trim(path, "/"), "/", 3)
	if len(segs) > 2 {
		segs = segs[:2]
	}
	if len(segs) == 1 && segs[0] == "" {
		return "api"
	}
	return "api." + strings.Join(segs, ".")
}
