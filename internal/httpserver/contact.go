package httpserver

import (
	"net/http"

	"buildmart/internal/service/contact"

	"github.com/gin-gonic/gin"
)

func submitContactHandler(svc ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in contact.SubmitInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact payload"})
			return
		}
		msg, err := svc.Submit(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

func listMessagesHandler(svc ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": msgs})
	}
}

func setMessageReadHandler(svc ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Read bool `json:"read"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := svc.SetRead(c.Request.Context(), c.Param("id"), body.Read); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deleteMessageHandler(svc ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
