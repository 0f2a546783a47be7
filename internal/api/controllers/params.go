package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rentwise/internal/models/request_models"
	"rentwise/pkg/middleware"
	"rentwise/pkg/utils"
)

// pathID parses the :id segment. Malformed ids cannot match a row, so they report notFound.
func pathID(c *gin.Context, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}

func listingQuery(c *gin.Context) request_models.ListBuildingsQuery {
	return request_models.ListBuildingsQuery{
		Q:            c.Query("q"),
		Neighborhood: c.Query("neighborhood"),
		BuildingType: c.Query("buildingType"),
		SortBy:       c.Query("sortBy"),
		Limit:        c.Query("limit"),
		Offset:       c.Query("offset"),
	}
}

func requireCaller(c *gin.Context) (request_models.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return request_models.Caller{}, false
	}
	return caller, true
}
