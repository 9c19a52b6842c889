package httpserver

import (
	"net/http"

	contentsvc "buildmart/internal/service/content"

	"github.com/gin-gonic/gin"
)

func listContentHandler(svc ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sections, err := svc.ListSections(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sections": sections})
	}
}

func getContentHandler(svc ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		section, err := svc.GetSection(c.Request.Context(), c.Param("section"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, section)
	}
}

func upsertContentHandler(svc ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Content map[string]interface{} `json:"content"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content payload"})
			return
		}
		var updatedBy string
		if op := currentOperator(c); op != nil {
			updatedBy = op.ID
		}
		section, err := svc.UpsertSection(c.Request.Context(), c.Param("section"), body.Content, updatedBy)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, section)
	}
}

func listImagesHandler(svc ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		images, err := svc.ListImages(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"images": images})
	}
}

func addImageHandler(svc ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in contentsvc.ImageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image payload"})
			return
		}
		var uploadedBy string
		if op := currentOperator(c); op != nil {
			uploadedBy = op.ID
		}
		image, err := svc.AddImage(c.Request.Context(), in, uploadedBy)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}

func deleteImageHandler(svc ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteImage(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
