// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"apigs/internal/transport"
)

// Probe checks one dependency.
type Probe func(ctx context.Context) error

// Health reports whether the service's dependencies answer.
type Health struct {
	probes  map[string]Probe
	timeout time.Duration
}

// NewHealth creates a health handler over the named probes.
func NewHealth(probes map[string]Probe) *Health {
	return &Health{probes: probes, timeout: 2 * time.Second}
}

// ServeHTTP answers 200 when every probe passes and 503 otherwise.
func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.probes))
	for name := range h.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	checks := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.probes[name](ctx); err != nil {
			slog.Error("health check failed", "dependency", name, "error", err)
			checks[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	transport.WriteJSON(w, status, map[string]any{"status": overall, "checks": checks})
}
