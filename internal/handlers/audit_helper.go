package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lily-salon/internal/audit"
)

func dispatchAudit(
	c *gin.Context,
	d *audit.Dispatcher,
	action string,
	entity string,
	entityID uint,
	meta any,
) {

	userID := currentUserID(c)
	d.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
		Metadata: meta,
	})
}
