// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("/api/results", middleware.WithLogging(handler))

Logs request start (request id, method, path, client IP) and completion
(status, duration_ms). The request id is taken from X-Request-ID or
generated, and echoed back in the response.

# Method Restriction

AllowMethod answers OPTIONS with an empty 200 and any method other than the
allowed one with a JSON 405:

	middleware.AllowMethod(http.MethodPost, spinHandler.RecordSpin)

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins, mux),
	}

Backed by github.com/rs/cors. Preflights are answered with 200.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, counts)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Team is required")
	middleware.StorageErrorResponse(w, "Failed to fetch results", err)

Parse JSON request bodies:

	var req models.SpinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		...
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
