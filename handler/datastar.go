package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is sent by Datastar actions expecting an SSE reply.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarRequestHeader is set to "true" on every Datastar fetch.
	DataStarRequestHeader = "Datastar-Request"
	// DataStarQueryParam carries signals on GET actions.
	DataStarQueryParam = "datastar"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
)

// IsDataStar reports whether r came from a Datastar action.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}
