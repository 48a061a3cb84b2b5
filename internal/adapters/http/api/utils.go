package api

import (
	"net/http"
	"strings"

	"github.com/okian/jobpulse/internal/domain/status"
)

// statusFilter reads the status query parameter. It may be repeated or hold
// a comma-separated list; blank entries are ignored.
func statusFilter(r *http.Request) ([]status.Status, error) {
	var out []status.Status
	for _, raw := range r.URL.Query()["status"] {
		for _, name := range strings.Split(raw, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			st, err := status.Parse(name)
			if err != nil {
				return nil, err
			}
			out = append(out, st)
		}
	}
	return out, nil
}
