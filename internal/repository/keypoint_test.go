package repository

import (
	"context"
	"testing"

	"arriddle/backend/internal/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type KeypointRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo KeypointRepository
	game *models.Game
}

func (s *KeypointRepositoryTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.repo = NewKeypointRepository(s.db)
	s.game = createTestGame(s.T(), s.db, "Partie 1")
}

func (s *KeypointRepositoryTestSuite) TestCreateAndFind() {
	ctx := context.Background()

	latitude := 50.6087
	longitude := 3.1480
	url := "https://duckduckgo.com"
	keypoint := &models.Keypoint{
		Name:        "Centrale Lille",
		Description: "Quelle est l'année de fondation de l'école ?",
		Solution:    "1854",
		Points:      10,
		Latitude:    &latitude,
		Longitude:   &longitude,
		URLCible:    &url,
		GameID:      s.game.ID,
	}
	s.Require().NoError(s.repo.Create(ctx, keypoint))
	s.NotZero(keypoint.ID)

	found, err := s.repo.FindByID(ctx, s.game.ID, keypoint.ID)
	s.Require().NoError(err)
	s.Equal("Centrale Lille", found.Name)
	s.Equal(10, found.Points)
	s.Equal(s.game.ID, found.GameID)
	s.Require().NotNil(found.Latitude)
	s.Equal(50.6087, *found.Latitude)
}

func (s *KeypointRepositoryTestSuite) TestCreateUnderMissingGame() {
	keypoint := &models.Keypoint{Name: "ITEM", Points: 20, GameID: "notexist"}
	err := s.repo.Create(context.Background(), keypoint)
	s.ErrorIs(err, ErrNotFound)
}

func (s *KeypointRepositoryTestSuite) TestNameUniquePerGame() {
	ctx := context.Background()

	createTestKeypoint(s.T(), s.db, s.game.ID, "Town Hall", 10)

	dup := &models.Keypoint{Name: "Town Hall", Points: 5, GameID: s.game.ID}
	s.ErrorIs(s.repo.Create(ctx, dup), ErrConflict)

	// The same name in another game is fine.
	other := createTestGame(s.T(), s.db, "Partie 2")
	ok := &models.Keypoint{Name: "Town Hall", Points: 5, GameID: other.ID}
	s.NoError(s.repo.Create(ctx, ok))
}

func (s *KeypointRepositoryTestSuite) TestScopedLookupIgnoresOtherGames() {
	ctx := context.Background()

	other := createTestGame(s.T(), s.db, "Partie 2")
	keypoint := createTestKeypoint(s.T(), s.db, other.ID, "IG21", 30)

	// The keypoint exists, but not under s.game.
	_, err := s.repo.FindByID(ctx, s.game.ID, keypoint.ID)
	s.ErrorIs(err, ErrNotFound)

	keypoints, err := s.repo.ListByGame(ctx, s.game.ID)
	s.Require().NoError(err)
	s.Empty(keypoints)
}

func (s *KeypointRepositoryTestSuite) TestListByMissingGame() {
	_, err := s.repo.ListByGame(context.Background(), "notexist")
	s.ErrorIs(err, ErrNotFound)
}

func (s *KeypointRepositoryTestSuite) TestPatchChangesOnlyGivenFields() {
	ctx := context.Background()

	keypoint := createTestKeypoint(s.T(), s.db, s.game.ID, "Centrale Lille", 10)

	points := 50
	patch := models.KeypointPatch{Points: &points}
	patch.Apply(keypoint)
	s.Require().NoError(s.repo.Save(ctx, keypoint))

	found, err := s.repo.FindByID(ctx, s.game.ID, keypoint.ID)
	s.Require().NoError(err)
	s.Equal(50, found.Points)
	s.Equal("Centrale Lille", found.Name)
	s.Nil(found.Latitude)
}

func (s *KeypointRepositoryTestSuite) TestDelete() {
	ctx := context.Background()

	keypoint := createTestKeypoint(s.T(), s.db, s.game.ID, "Centrale Lille", 10)

	s.Require().NoError(s.repo.Delete(ctx, s.game.ID, keypoint.ID))
	_, err := s.repo.FindByID(ctx, s.game.ID, keypoint.ID)
	s.ErrorIs(err, ErrNotFound)

	// Deleting again reports not found, not a failure.
	s.ErrorIs(s.repo.Delete(ctx, s.game.ID, keypoint.ID), ErrNotFound)
}

func (s *KeypointRepositoryTestSuite) TestDeleteScopedToGame() {
	other := createTestGame(s.T(), s.db, "Partie 2")
	keypoint := createTestKeypoint(s.T(), s.db, other.ID, "IG21", 30)

	s.ErrorIs(s.repo.Delete(context.Background(), s.game.ID, keypoint.ID), ErrNotFound)
}

func TestKeypointRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(KeypointRepositoryTestSuite))
}
