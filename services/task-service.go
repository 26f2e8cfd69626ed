package services

import (
	"context"
	"fmt"

	"ticket-tracker/logging"
	"ticket-tracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskService struct {
	TasksCollection   *mongo.Collection
	SprintsCollection *mongo.Collection
	BoardsCollection  *mongo.Collection
}

func NewTaskService(client *mongo.Client, dbName string) *TaskService {
	db := client.Database(dbName)
	return &TaskService{
		TasksCollection:   db.Collection(tasksCollectionName),
		SprintsCollection: db.Collection(sprintsCollectionName),
		BoardsCollection:  db.Collection(boardsCollectionName),
	}
}

// CreateTask inserts a task on a board's backlog.
func (s *TaskService) CreateTask(ctx context.Context, callerEmail string, task *models.Task) (*models.Task, error) {
	board, err := findBoard(ctx, s.BoardsCollection, task.BoardID)
	if err != nil {
		return nil, err
	}
	if !HasPermission(board, callerEmail, models.CapManageColumns) {
		return nil, fmt.Errorf("cannot create task on board %s: %w", task.BoardID.Hex(), ErrPermissionDenied)
	}

	if task.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Assignees == nil {
		task.Assignees = []string{}
	}
	task.ID = primitive.NewObjectID()

	if _, err := s.TasksCollection.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s created on board %s", task.ID.Hex(), task.BoardID.Hex())
	return task, nil
}

// GetTasksByBoard returns every task on the board.
func (s *TaskService) GetTasksByBoard(ctx context.Context, callerEmail string, boardID primitive.ObjectID) ([]models.Task, error) {
	board, err := findBoard(ctx, s.BoardsCollection, boardID)
	if err != nil {
		return nil, err
	}
	if _, ok := RoleOf(board, callerEmail); !ok {
		return nil, fmt.Errorf("no role on board %s: %w", boardID.Hex(), ErrPermissionDenied)
	}
	return s.findTasks(ctx, bson.M{"boardId": boardID})
}

// GetTasksBySprint returns the tasks currently assigned to a sprint.
func (s *TaskService) GetTasksBySprint(ctx context.Context, callerEmail string, sprintID primitive.ObjectID) ([]models.Task, error) {
	sprint, err := findSprint(ctx, s.SprintsCollection, sprintID)
	if err != nil {
		return nil, err
	}
	board, err := findBoard(ctx, s.BoardsCollection, sprint.BoardID)
	if err != nil {
		return nil, err
	}
	if _, ok := RoleOf(board, callerEmail); !ok {
		return nil, fmt.Errorf("no role on board %s: %w", board.ID.Hex(), ErrPermissionDenied)
	}
	return s.findTasks(ctx, bson.M{"sprintId": sprintID})
}

func (s *TaskService) findTasks(ctx context.Context, filter bson.M) ([]models.Task, error) {
	cursor, err := s.TasksCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	for cursor.Next(ctx) {
		var task models.Task
		if err := cursor.Decode(&task); err != nil {
			return nil, fmt.Errorf("failed to decode task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return tasks, nil
}

// ChangeTaskStatus moves a task through its workflow. A task whose
// dependency is not done cannot enter "in progress".
func (s *TaskService) ChangeTaskStatus(ctx context.Context, callerEmail string, taskID primitive.ObjectID, status models.TaskStatus) (*models.Task, error) {
	task, err := findTask(ctx, s.TasksCollection, taskID)
	if err != nil {
		return nil, err
	}
	board, err := findBoard(ctx, s.BoardsCollection, task.BoardID)
	if err != nil {
		return nil, err
	}
	if _, ok := RoleOf(board, callerEmail); !ok {
		return nil, fmt.Errorf("no role on board %s: %w", board.ID.Hex(), ErrPermissionDenied)
	}

	if task.DependsOn != nil && status == models.StatusInProgress {
		dependency, err := findTask(ctx, s.TasksCollection, *task.DependsOn)
		if err != nil {
			return nil, fmt.Errorf("dependent task: %w", err)
		}
		if !dependency.IsDone() {
			return nil, fmt.Errorf("cannot start task %s due to unfinished dependency %s", taskID.Hex(), dependency.ID.Hex())
		}
	}

	result, err := s.TasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("task %s: %w", taskID.Hex(), ErrNotFound)
	}

	task.Status = status
	logging.Logger.Infof("Event ID: TASK_STATUS_CHANGED, Description: Task %s moved to %s", taskID.Hex(), status)
	return task, nil
}
