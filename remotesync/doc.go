// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package remotesync mirrors local poll activity to an optional remote
service.

The remote service is non-authoritative. The poll store fires these
calls after its local mutation has already been applied and persisted;
a failed mirror is logged and forgotten, never retried, and never
surfaced to the user. When no endpoint is configured both operations
are no-ops that report success, so the rest of the system is
endpoint-agnostic.

Wire contract:

	POST {endpoint}/polls
	    {"question": ..., "description": ..., "options": [...],
	     "category": ..., "image_url": ...}
	    -> 2xx with {"id": ...}

	POST {endpoint}/polls/{pollId}/votes
	    {"option_id": ...}
	    -> 2xx

Requests carry an X-Client-ID header with the installation UUID.
*/
package remotesync
