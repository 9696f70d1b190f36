package handler

import (
	"errors"
	"net/http"
	"strconv"

	"arriddle/backend/internal/models"
	"arriddle/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// KeypointInput defines the payload for creating a keypoint under a game.
type KeypointInput struct {
	Name        string   `json:"name" binding:"required,min=1" example:"Centrale Lille"`
	Description string   `json:"description"`
	Solution    string   `json:"solution"`
	Points      *int     `json:"points" binding:"required" example:"10"`
	Latitude    *float64 `json:"latitude" example:"50.6087"`
	Longitude   *float64 `json:"longitude" example:"3.148"`
	URLCible    *string  `json:"url_cible"`
}

// KeypointUpdateInput defines the payload for a partial keypoint update.
type KeypointUpdateInput struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Solution    *string  `json:"solution"`
	Points      *int     `json:"points"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	URLCible    *string  `json:"url_cible"`
}

type KeypointResponse struct {
	ID           uint     `json:"id" example:"1"`
	Name         string   `json:"name" example:"Centrale Lille"`
	Description  string   `json:"description"`
	Solution     string   `json:"solution"`
	Points       int      `json:"points" example:"10"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	URLCible     *string  `json:"url_cible"`
	GameID       string   `json:"game_id" example:"a8Tz41qK"`
	UsersSolvers []uint   `json:"users_solvers"`
}

func newKeypointResponse(keypoint models.Keypoint) KeypointResponse {
	solvers := make([]uint, 0, len(keypoint.Solvers))
	for _, user := range keypoint.Solvers {
		solvers = append(solvers, user.ID)
	}

	return KeypointResponse{
		ID:           keypoint.ID,
		Name:         keypoint.Name,
		Description:  keypoint.Description,
		Solution:     keypoint.Solution,
		Points:       keypoint.Points,
		Latitude:     keypoint.Latitude,
		Longitude:    keypoint.Longitude,
		URLCible:     keypoint.URLCible,
		GameID:       keypoint.GameID,
		UsersSolvers: solvers,
	}
}

// endregion

// KeypointHandler serves the /games/{id}/keypoints routes.
type KeypointHandler struct {
	keypoints repository.KeypointRepository
}

// NewKeypointHandler creates a keypoint handler on top of the given repository.
func NewKeypointHandler(keypoints repository.KeypointRepository) *KeypointHandler {
	return &KeypointHandler{keypoints: keypoints}
}

// Create godoc
// @Summary      Create a keypoint
// @Description  Creates a keypoint under an existing game.
// @Tags         keypoints
// @Accept       json
// @Produce      json
// @Param        id    path string        true "Game ID"
// @Param        input body KeypointInput true "Keypoint Info"
// @Success      201  {object}  KeypointResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      409  {object}  ErrorResponse "Keypoint name already taken in this game"
// @Router       /games/{id}/keypoints [post]
func (h *KeypointHandler) Create(c *gin.Context) {
	var input KeypointInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keypoint := models.Keypoint{
		Name:        input.Name,
		Description: input.Description,
		Solution:    input.Solution,
		Points:      *input.Points,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		URLCible:    input.URLCible,
		GameID:      c.Param("id"),
	}

	if err := h.keypoints.Create(c.Request.Context(), &keypoint); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		case errors.Is(err, repository.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Keypoint name already taken in this game"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create keypoint"})
		}
		return
	}

	c.JSON(http.StatusCreated, newKeypointResponse(keypoint))
}

// List godoc
// @Summary      Get the keypoints of a game
// @Tags         keypoints
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {array}  KeypointResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/keypoints [get]
func (h *KeypointHandler) List(c *gin.Context) {
	keypoints, err := h.keypoints.ListByGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve keypoints"})
		return
	}

	response := make([]KeypointResponse, 0, len(keypoints))
	for _, keypoint := range keypoints {
		response = append(response, newKeypointResponse(keypoint))
	}
	c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary      Get a single keypoint of a game
// @Description  The keypoint must belong to the game in the path; a
// @Description  keypoint id from another game yields 404.
// @Tags         keypoints
// @Produce      json
// @Param        id         path string true "Game ID"
// @Param        keypointID path int    true "Keypoint ID"
// @Success      200 {object} KeypointResponse
// @Failure      404 {object} ErrorResponse "Keypoint not found"
// @Router       /games/{id}/keypoints/{keypointID} [get]
func (h *KeypointHandler) Get(c *gin.Context) {
	keypointID, err := parseUintParam(c, "keypointID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid keypoint id"})
		return
	}

	keypoint, err := h.keypoints.FindByID(c.Request.Context(), c.Param("id"), keypointID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Keypoint not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve keypoint"})
		return
	}

	c.JSON(http.StatusOK, newKeypointResponse(*keypoint))
}

// Update godoc
// @Summary      Partially update a keypoint
// @Tags         keypoints
// @Accept       json
// @Produce      json
// @Param        id         path string              true "Game ID"
// @Param        keypointID path int                 true "Keypoint ID"
// @Param        input      body KeypointUpdateInput true "Fields to change"
// @Success      200 {object} KeypointResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Keypoint not found"
// @Failure      409 {object} ErrorResponse "Keypoint name already taken in this game"
// @Router       /games/{id}/keypoints/{keypointID} [put]
func (h *KeypointHandler) Update(c *gin.Context) {
	keypointID, err := parseUintParam(c, "keypointID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid keypoint id"})
		return
	}

	var input KeypointUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keypoint, err := h.keypoints.FindByID(c.Request.Context(), c.Param("id"), keypointID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Keypoint not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve keypoint"})
		return
	}

	patch := models.KeypointPatch{
		Name:        input.Name,
		Description: input.Description,
		Solution:    input.Solution,
		Points:      input.Points,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		URLCible:    input.URLCible,
	}
	patch.Apply(keypoint)

	if err := h.keypoints.Save(c.Request.Context(), keypoint); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Keypoint name already taken in this game"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update keypoint"})
		return
	}

	c.JSON(http.StatusOK, newKeypointResponse(*keypoint))
}

// Delete godoc
// @Summary      Delete a keypoint
// @Tags         keypoints
// @Produce      json
// @Param        id         path string true "Game ID"
// @Param        keypointID path int    true "Keypoint ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse "Keypoint not found"
// @Router       /games/{id}/keypoints/{keypointID} [delete]
func (h *KeypointHandler) Delete(c *gin.Context) {
	keypointID, err := parseUintParam(c, "keypointID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid keypoint id"})
		return
	}

	err = h.keypoints.Delete(c.Request.Context(), c.Param("id"), keypointID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Keypoint not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete keypoint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Keypoint deleted"})
}

// parseUintParam reads a positive integer path parameter.
func parseUintParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}
