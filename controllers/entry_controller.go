package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tomereli/nutrition-tracker/services"
)

type EntryController struct {
	Store    *services.EntryStore
	Resolver *services.RangeResolver
}

func NewEntryController(store *services.EntryStore, resolver *services.RangeResolver) *EntryController {
	return &EntryController{Store: store, Resolver: resolver}
}

func (h *EntryController) AddEntry(c *gin.Context) {
	var req services.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	entry, err := h.Store.Add(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTimestamp) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry added successfully", "entry": entry})
}

func (h *EntryController) DeleteEntry(c *gin.Context) {
	date := c.PostForm("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: date"})
		return
	}

	key, err := h.Resolver.ValidateDate(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Store.DeleteByDate(key); err != nil {
		if errors.Is(err, services.ErrNoEntries) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No entries found for %s.", key)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Entries for %s deleted successfully.", key)})
}

func (h *EntryController) FlushEntries(c *gin.Context) {
	if err := h.Store.Flush(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All entries flushed successfully."})
}

// bindErrorMessage turns the first binding failure into the API's
// "Missing required field: X" style message.
func bindErrorMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := strings.ToLower(ve[0].Field())
		if ve[0].Tag() == "required" {
			return fmt.Sprintf("Missing required field: %s", field)
		}
		return fmt.Sprintf("Invalid value for field: %s", field)
	}
	return err.Error()
}
