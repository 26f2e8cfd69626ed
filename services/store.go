package services

import (
	"context"
	"errors"
	"fmt"

	"ticket-tracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names in the service database.
const (
	boardsCollectionName  = "boards"
	sprintsCollectionName = "sprints"
	tasksCollectionName   = "tasks"
)

func findBoard(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*models.Board, error) {
	var board models.Board
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&board)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("board %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch board %s: %w", id.Hex(), err)
	}
	return &board, nil
}

func findSprint(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*models.Sprint, error) {
	var sprint models.Sprint
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sprint)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("sprint %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch sprint %s: %w", id.Hex(), err)
	}
	return &sprint, nil
}

func findTask(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("task %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch task %s: %w", id.Hex(), err)
	}
	return &task, nil
}
