package v1

import "github.com/gin-gonic/gin"

// requestHost returns the base URL used to construct links.
//
// The scheme falls back to http unless the x-forwarded-proto header
// says otherwise. When a reverse proxy sets x-forwarded-host, the
// x-forwarded-prefix header is honored and defaults to "/api".
func requestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
		if forwardedPrefix == "" {
			forwardedPrefix = "/api"
		}
	}

	return scheme + "://" + host + forwardedPrefix
}

type URIBuilding struct {
	BuildingID uint64 `uri:"buildingId" binding:"required"` // ID of the building
}

type URIBuildingTable struct {
	URIBuilding
	Table string `uri:"table" binding:"required"` // Share table code
}

type URIBuildingYear struct {
	URIBuilding
	Year uint `uri:"year" binding:"required"` // Budget year
}
