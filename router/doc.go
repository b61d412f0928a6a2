// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

Routes:

	GET    /health                       health check
	POST   /polls                        create a poll from a draft
	GET    /polls                        filtered newest-first listing
	GET    /polls/{id}                   poll with options
	DELETE /polls/{id}                   delete poll and its vote record
	GET    /categories                   "All"-prefixed category list
	POST   /polls/{id}/votes             cast this installation's vote
	GET    /polls/{id}/results           ranked percentages (after voting)
*/
package router
