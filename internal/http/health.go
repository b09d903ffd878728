package http

import (
	"encoding/json"
	nethttp "net/http"
)

// HealthHandler returns a simple health check endpoint naming the slide source.
func HealthHandler(source string) nethttp.Handler {
	body, _ := json.Marshal(map[string]string{"status": "ok", "source": source})
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write(body)
	})
}
