package handler

import (
	"errors"
	"net/http"

	"arriddle/backend/internal/models"
	"arriddle/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameInput defines the payload for creating a game. The id is generated
// server-side and must not be supplied. TimeStart and Points-like fields
// are pointers so a legitimate zero is not mistaken for an absent field.
type GameInput struct {
	Name        string `json:"name" binding:"required,min=1" example:"Partie 1"`
	Visibility  *bool  `json:"visibility"`
	Duration    *int   `json:"duration" binding:"omitempty,gt=0" example:"7200"`
	TimeStart   *int64 `json:"time_start" binding:"required" example:"1591019348"`
	NbPlayerMax *int   `json:"nb_player_max" binding:"omitempty,gt=0" example:"12"`
}

// GameUpdateInput defines the payload for a partial game update. Absent or
// null fields are left unchanged.
type GameUpdateInput struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Visibility  *bool   `json:"visibility"`
	Duration    *int    `json:"duration" binding:"omitempty,gt=0"`
	TimeStart   *int64  `json:"time_start" binding:"omitempty,gt=0"`
	NbPlayerMax *int    `json:"nb_player_max" binding:"omitempty,gt=0"`
}

type GameResponse struct {
	ID          string             `json:"id" example:"a8Tz41qK"`
	Name        string             `json:"name" example:"Partie 1"`
	Visibility  bool               `json:"visibility"`
	Duration    *int               `json:"duration"`
	TimeStart   int64              `json:"time_start" example:"1591019348"`
	NbPlayerMax *int               `json:"nb_player_max"`
	Keypoints   []KeypointResponse `json:"keypoints"`
	Users       []UserResponse     `json:"users"`
}

func newGameResponse(game models.Game) GameResponse {
	keypoints := make([]KeypointResponse, 0, len(game.Keypoints))
	for _, keypoint := range game.Keypoints {
		keypoints = append(keypoints, newKeypointResponse(keypoint))
	}

	users := make([]UserResponse, 0, len(game.Users))
	for _, user := range game.Users {
		users = append(users, newUserResponse(user))
	}

	return GameResponse{
		ID:          game.ID,
		Name:        game.Name,
		Visibility:  game.Visibility,
		Duration:    game.Duration,
		TimeStart:   game.TimeStart,
		NbPlayerMax: game.NbPlayerMax,
		Keypoints:   keypoints,
		Users:       users,
	}
}

// endregion

// GameHandler serves the /games routes.
type GameHandler struct {
	games repository.GameRepository
}

// NewGameHandler creates a game handler on top of the given repository.
func NewGameHandler(games repository.GameRepository) *GameHandler {
	return &GameHandler{games: games}
}

// Create godoc
// @Summary      Create a new game
// @Description  Creates a game; its id token is generated server-side.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Game name already taken"
// @Router       /games [post]
func (h *GameHandler) Create(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game := models.Game{
		Name:        input.Name,
		Duration:    input.Duration,
		TimeStart:   *input.TimeStart,
		NbPlayerMax: input.NbPlayerMax,
	}
	if input.Visibility != nil {
		game.Visibility = *input.Visibility
	}

	if err := h.games.Create(c.Request.Context(), &game); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Game name already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

// List godoc
// @Summary      Get all games
// @Description  Retrieves every game with its keypoints and users.
// @Tags         games
// @Produce      json
// @Success      200  {array}   GameResponse
// @Router       /games [get]
func (h *GameHandler) List(c *gin.Context) {
	games, err := h.games.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary      Get a single game by id
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	game, err := h.games.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// Update godoc
// @Summary      Partially update a game
// @Description  Overwrites only the fields present in the payload.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Game ID"
// @Param        input body      GameUpdateInput true  "Fields to change"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      409   {object}  ErrorResponse "Game name already taken"
// @Router       /games/{id} [put]
func (h *GameHandler) Update(c *gin.Context) {
	var input GameUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	patch := models.GamePatch{
		Name:        input.Name,
		Visibility:  input.Visibility,
		Duration:    input.Duration,
		TimeStart:   input.TimeStart,
		NbPlayerMax: input.NbPlayerMax,
	}
	patch.Apply(game)

	if err := h.games.Save(c.Request.Context(), game); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Game name already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// Delete godoc
// @Summary      Delete a game
// @Description  Deletes a game along with its keypoints and users.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *GameHandler) Delete(c *gin.Context) {
	err := h.games.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}
