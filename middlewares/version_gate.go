package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunch-voting-app/utils"
)

// VersionHeader carries the client's app version tag.
const VersionHeader = "X-App-Version"

// DefaultVersion is assumed when the header is absent.
const DefaultVersion = "1.0"

// Recognized tags all behave identically today; the gate only validates.
var supportedVersions = map[string]struct{}{
	"1.0": {},
	"2.0": {},
}

// VersionGate rejects unrecognized client version tags before the handler
// runs, so an unsupported client never reads or mutates state.
func VersionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := c.GetHeader(VersionHeader)
		if tag == "" {
			tag = DefaultVersion
		}

		if _, ok := supportedVersions[tag]; !ok {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unsupported app version %q", tag))
			c.Abort()
			return
		}

		c.Set("app_version", tag)
		c.Next()
	}
}
