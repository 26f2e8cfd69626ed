package services

import (
	"context"
	"fmt"
	"time"

	"ticket-tracker/logging"
	"ticket-tracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BoardService struct {
	Client            *mongo.Client
	BoardsCollection  *mongo.Collection
	SprintsCollection *mongo.Collection
	TasksCollection   *mongo.Collection
	Notifier          *Notifier
}

func NewBoardService(client *mongo.Client, dbName string, notifier *Notifier) *BoardService {
	db := client.Database(dbName)
	return &BoardService{
		Client:            client,
		BoardsCollection:  db.Collection(boardsCollectionName),
		SprintsCollection: db.Collection(sprintsCollectionName),
		TasksCollection:   db.Collection(tasksCollectionName),
		Notifier:          notifier,
	}
}

// CreateBoard inserts a board owned by the creator. Board names are
// unique per creator.
func (s *BoardService) CreateBoard(ctx context.Context, creator models.Creator, name, description string) (*models.Board, error) {
	if name == "" {
		return nil, fmt.Errorf("board name is required")
	}

	count, err := s.BoardsCollection.CountDocuments(ctx, bson.M{"name": name, "creator.email": creator.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to check board name: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("board with the same name already exists")
	}

	board := &models.Board{
		ID:            primitive.NewObjectID(),
		Name:          name,
		Description:   description,
		Creator:       creator,
		Collaborators: []models.Collaborator{},
		CreatedAt:     time.Now(),
	}

	if _, err := s.BoardsCollection.InsertOne(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	logging.Logger.Infof("Event ID: BOARD_CREATED, Description: Board %s created by %s", board.ID.Hex(), creator.Email)
	return board, nil
}

// GetBoardByID returns the board to its creator and collaborators.
func (s *BoardService) GetBoardByID(ctx context.Context, callerEmail string, boardID primitive.ObjectID) (*models.Board, error) {
	board, err := findBoard(ctx, s.BoardsCollection, boardID)
	if err != nil {
		return nil, err
	}
	if _, ok := RoleOf(board, callerEmail); !ok {
		return nil, fmt.Errorf("no role on board %s: %w", boardID.Hex(), ErrPermissionDenied)
	}
	return board, nil
}

// ListBoards returns every board the email created or collaborates on.
func (s *BoardService) ListBoards(ctx context.Context, email string) ([]models.Board, error) {
	filter := bson.M{"$or": []bson.M{
		{"creator.email": email},
		{"collaborators.email": email},
	}}
	cursor, err := s.BoardsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer cursor.Close(ctx)

	var boards []models.Board
	if err := cursor.All(ctx, &boards); err != nil {
		return nil, fmt.Errorf("failed to decode boards: %w", err)
	}
	return boards, nil
}

// UpdateBoardSettings edits name and description.
func (s *BoardService) UpdateBoardSettings(ctx context.Context, callerEmail string, boardID primitive.ObjectID, name, description *string) (*models.Board, error) {
	board, err := findBoard(ctx, s.BoardsCollection, boardID)
	if err != nil {
		return nil, err
	}
	if !HasPermission(board, callerEmail, models.CapEditBoardSettings) {
		return nil, fmt.Errorf("cannot edit settings of board %s: %w", boardID.Hex(), ErrPermissionDenied)
	}

	set := bson.M{}
	if name != nil {
		if *name == "" {
			return nil, fmt.Errorf("board name is required")
		}
		set["name"] = *name
	}
	if description != nil {
		set["description"] = *description
	}
	if len(set) == 0 {
		return board, nil
	}

	if _, err := s.BoardsCollection.UpdateOne(ctx, bson.M{"_id": boardID}, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("failed to update board %s: %w", boardID.Hex(), err)
	}
	return findBoard(ctx, s.BoardsCollection, boardID)
}

// DeleteBoard removes the board with its sprints and tasks in one
// transaction.
func (s *BoardService) DeleteBoard(ctx context.Context, callerEmail string, boardID primitive.ObjectID) error {
	board, err := findBoard(ctx, s.BoardsCollection, boardID)
	if err != nil {
		return err
	}
	if !HasPermission(board, callerEmail, models.CapDeleteBoard) {
		return fmt.Errorf("cannot delete board %s: %w", boardID.Hex(), ErrPermissionDenied)
	}

	session, err := s.Client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.TasksCollection.DeleteMany(sc, bson.M{"boardId": boardID}); err != nil {
			return nil, fmt.Errorf("failed to delete tasks: %w", err)
		}
		if _, err := s.SprintsCollection.DeleteMany(sc, bson.M{"boardId": boardID}); err != nil {
			return nil, fmt.Errorf("failed to delete sprints: %w", err)
		}
		result, err := s.BoardsCollection.DeleteOne(sc, bson.M{"_id": boardID})
		if err != nil {
			return nil, fmt.Errorf("failed to delete board: %w", err)
		}
		if result.DeletedCount == 0 {
			return nil, fmt.Errorf("board %s: %w", boardID.Hex(), ErrNotFound)
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	logging.Logger.Infof("Event ID: BOARD_DELETED, Description: Board %s deleted by %s", boardID.Hex(), callerEmail)
	return nil
}

// AddCollaborator invites an email onto the board. The creator is
// never added as a collaborator, the admin role is implicit.
func (s *BoardService) AddCollaborator(ctx context.Context, callerEmail string, boardID primitive.ObjectID, collaborator models.Collaborator) (*models.Board, error) {
	board, err := findBoard(ctx, s.BoardsCollection, boardID)
	if err != nil {
		return nil, err
	}
	if !HasPermission(board, callerEmail, models.CapManageCollaborators) {
		return nil, fmt.Errorf("cannot manage collaborators on board %s: %w", boardID.Hex(), ErrPermissionDenied)
	}

	if collaborator.Email == "" {
		return nil, fmt.Errorf("collaborator email is required")
	}
	if collaborator.Email == board.Creator.Email {
		return nil, fmt.Errorf("board creator is already an admin")
	}
	for _, c := range board.Collaborators {
		if c.Email == collaborator.Email {
			return nil, fmt.Errorf("collaborator %s is already on the board", collaborator.Email)
		}
	}
	if collaborator.Role == "" {
		collaborator.Role = models.RoleUser
	}
	if !models.IsValidRole(collaborator.Role) {
		return nil, fmt.Errorf("invalid role %q", collaborator.Role)
	}

	if _, err := s.BoardsCollection.UpdateOne(ctx, bson.M{"_id": boardID}, bson.M{"$push": bson.M{"collaborators": collaborator}}); err != nil {
		return nil, fmt.Errorf("failed to add collaborator: %w", err)
	}

	logging.Logger.Infof("Event ID: COLLABORATOR_ADDED, Description: %s added to board %s as %s", collaborator.Email, boardID.Hex(), collaborator.Role)
	s.Notifier.NotifyBoard(board, fmt.Sprintf("%s joined board %q as %s", collaborator.Email, board.Name, collaborator.Role))
	return findBoard(ctx, s.BoardsCollection, boardID)
}

// RemoveCollaborator revokes an email's membership.
func (s *BoardService) RemoveCollaborator(ctx context.Context, callerEmail string, boardID primitive.ObjectID, email string) (*models.Board, error) {
	board, err := findBoard(ctx, s.BoardsCollection, boardID)
	if err != nil {
		return nil, err
	}
	if !HasPermission(board, callerEmail, models.CapManageCollaborators) {
		return nil, fmt.Errorf("cannot manage collaborators on board %s: %w", boardID.Hex(), ErrPermissionDenied)
	}
	if email == board.Creator.Email {
		return nil, fmt.Errorf("board creator cannot be removed")
	}

	result, err := s.BoardsCollection.UpdateOne(ctx, bson.M{"_id": boardID}, bson.M{"$pull": bson.M{"collaborators": bson.M{"email": email}}})
	if err != nil {
		return nil, fmt.Errorf("failed to remove collaborator: %w", err)
	}
	if result.ModifiedCount == 0 {
		return nil, fmt.Errorf("collaborator %s on board %s: %w", email, boardID.Hex(), ErrNotFound)
	}

	logging.Logger.Infof("Event ID: COLLABORATOR_REMOVED, Description: %s removed from board %s", email, boardID.Hex())
	return findBoard(ctx, s.BoardsCollection, boardID)
}

// SetCollaboratorRole reassigns a collaborator's role. Only admins
// assign roles, and the creator's implicit admin role can never be
// reassigned.
func (s *BoardService) SetCollaboratorRole(ctx context.Context, assignerEmail string, boardID primitive.ObjectID, targetEmail string, role models.BoardRole) (*models.Board, error) {
	board, err := findBoard(ctx, s.BoardsCollection, boardID)
	if err != nil {
		return nil, err
	}
	if !CanAssignRole(board, assignerEmail, role) {
		return nil, fmt.Errorf("cannot assign role %q on board %s: %w", role, boardID.Hex(), ErrPermissionDenied)
	}
	if targetEmail == board.Creator.Email {
		return nil, fmt.Errorf("board creator role cannot be reassigned: %w", ErrPermissionDenied)
	}

	result, err := s.BoardsCollection.UpdateOne(ctx,
		bson.M{"_id": boardID, "collaborators.email": targetEmail},
		bson.M{"$set": bson.M{"collaborators.$.role": role}})
	if err != nil {
		return nil, fmt.Errorf("failed to set collaborator role: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("collaborator %s on board %s: %w", targetEmail, boardID.Hex(), ErrNotFound)
	}

	logging.Logger.Infof("Event ID: COLLABORATOR_ROLE_CHANGED, Description: %s is now %s on board %s", targetEmail, role, boardID.Hex())
	return findBoard(ctx, s.BoardsCollection, boardID)
}
