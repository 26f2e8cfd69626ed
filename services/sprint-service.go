package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"ticket-tracker/logging"
	"ticket-tracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// startWindowDays limits how far from "now" a sprint's scheduled
// start may lie when it is started.
const startWindowDays = 7

type SprintService struct {
	Client            *mongo.Client
	SprintsCollection *mongo.Collection
	TasksCollection   *mongo.Collection
	BoardsCollection  *mongo.Collection
	Notifier          *Notifier

	// AutoCompletePrevious selects the policy for starting a sprint
	// while another is active on the same board: complete the previous
	// one as a side effect when true, reject the start when false.
	AutoCompletePrevious bool
}

func NewSprintService(client *mongo.Client, dbName string, notifier *Notifier, autoCompletePrevious bool) *SprintService {
	db := client.Database(dbName)
	return &SprintService{
		Client:               client,
		SprintsCollection:    db.Collection(sprintsCollectionName),
		TasksCollection:      db.Collection(tasksCollectionName),
		BoardsCollection:     db.Collection(boardsCollectionName),
		Notifier:             notifier,
		AutoCompletePrevious: autoCompletePrevious,
	}
}

// CreateSprint inserts a sprint in planning status with the next
// sprint number for its board.
func (s *SprintService) CreateSprint(ctx context.Context, callerEmail string, sprint *models.Sprint) (*models.Sprint, error) {
	board, err := findBoard(ctx, s.BoardsCollection, sprint.BoardID)
	if err != nil {
		return nil, err
	}
	if !HasPermission(board, callerEmail, models.CapManageSprints) {
		return nil, fmt.Errorf("cannot create sprint on board %s: %w", board.ID.Hex(), ErrPermissionDenied)
	}

	number, err := s.nextSprintNumber(ctx, sprint.BoardID)
	if err != nil {
		return nil, err
	}

	sprint.ID = primitive.NewObjectID()
	sprint.SprintNumber = number
	sprint.Status = models.SprintPlanning
	if sprint.TaskIDs == nil {
		sprint.TaskIDs = []primitive.ObjectID{}
	}
	if sprint.EndDate.IsZero() && !sprint.StartDate.IsZero() && sprint.DurationDays > 0 {
		sprint.EndDate = sprint.StartDate.AddDate(0, 0, sprint.DurationDays)
	}

	if _, err := s.SprintsCollection.InsertOne(ctx, sprint); err != nil {
		return nil, fmt.Errorf("failed to create sprint: %w", err)
	}

	logging.Logger.Infof("Event ID: SPRINT_CREATED, Description: Sprint %s (#%d) created on board %s", sprint.ID.Hex(), sprint.SprintNumber, board.ID.Hex())
	return sprint, nil
}

// nextSprintNumber returns one past the highest sprint number already
// assigned on the board.
func (s *SprintService) nextSprintNumber(ctx context.Context, boardID primitive.ObjectID) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "sprintNumber", Value: -1}})
	var last models.Sprint
	err := s.SprintsCollection.FindOne(ctx, bson.M{"boardId": boardID}, opts).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to determine next sprint number: %w", err)
	}
	return last.SprintNumber + 1, nil
}

// SprintUpdate carries the editable planning fields; nil fields stay
// untouched.
type SprintUpdate struct {
	Name             *string      `json:"name,omitempty"`
	DurationDays     *int         `json:"durationDays,omitempty"`
	WorkHoursPerWeek *float64     `json:"workHoursPerWeek,omitempty"`
	TeamSize         *int         `json:"teamSize,omitempty"`
	Goals            *[]string    `json:"goals,omitempty"`
	Features         *[]string    `json:"features,omitempty"`
	Risks            *[]string    `json:"risks,omitempty"`
	Bottlenecks      *[]string    `json:"bottlenecks,omitempty"`
	Holidays         *[]time.Time `json:"holidays,omitempty"`
	StartDate        *time.Time   `json:"startDate,omitempty"`
	EndDate          *time.Time   `json:"endDate,omitempty"`
	TotalStoryPoints *int         `json:"totalStoryPoints,omitempty"`
}

// touchesSchedule reports whether the update writes a field that is
// read-only once the sprint is active.
func (u *SprintUpdate) touchesSchedule() bool {
	return u.DurationDays != nil || u.WorkHoursPerWeek != nil || u.TeamSize != nil ||
		u.Holidays != nil || u.StartDate != nil || u.EndDate != nil
}

// UpdateSprint applies planning-field edits. A completed sprint is
// view-only; an active sprint rejects schedule and capacity changes.
func (s *SprintService) UpdateSprint(ctx context.Context, callerEmail string, sprintID primitive.ObjectID, update *SprintUpdate) (*models.Sprint, error) {
	sprint, err := findSprint(ctx, s.SprintsCollection, sprintID)
	if err != nil {
		return nil, err
	}
	board, err := findBoard(ctx, s.BoardsCollection, sprint.BoardID)
	if err != nil {
		return nil, err
	}
	if !HasPermission(board, callerEmail, models.CapManageSprints) {
		return nil, fmt.Errorf("cannot update sprint %s: %w", sprintID.Hex(), ErrPermissionDenied)
	}

	if sprint.Status == models.SprintCompleted {
		return nil, fmt.Errorf("sprint %s is completed and read-only: %w", sprintID.Hex(), ErrInvalidTransition)
	}
	if sprint.Status == models.SprintActive && update.touchesSchedule() {
		return nil, fmt.Errorf("schedule fields of sprint %s are read-only while active: %w", sprintID.Hex(), ErrInvalidTransition)
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.DurationDays != nil {
		set["durationDays"] = *update.DurationDays
	}
	if update.WorkHoursPerWeek != nil {
		set["workHoursPerWeek"] = *update.WorkHoursPerWeek
	}
	if update.TeamSize != nil {
		set["teamSize"] = *update.TeamSize
	}
	if update.Goals != nil {
		set["goals"] = *update.Goals
	}
	if update.Features != nil {
		set["features"] = *update.Features
	}
	if update.Risks != nil {
		set["risks"] = *update.Risks
	}
	if update.Bottlenecks != nil {
		set["bottlenecks"] = *update.Bottlenecks
	}
	if update.Holidays != nil {
		set["holidays"] = *update.Holidays
	}
	if update.StartDate != nil {
		set["startDate"] = *update.StartDate
	}
	if update.EndDate != nil {
		set["endDate"] = *update.EndDate
	}
	if update.TotalStoryPoints != nil {
		set["totalStoryPoints"] = *update.TotalStoryPoints
	}
	if len(set) == 0 {
		return sprint, nil
	}

	if _, err := s.SprintsCollection.UpdateOne(ctx, bson.M{"_id": sprintID}, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("failed to update sprint %s: %w", sprintID.Hex(), err)
	}
	return findSprint(ctx, s.SprintsCollection, sprintID)
}

// withinStartWindow checks that the scheduled start lies within the
// allowed distance of now, in either direction.
func withinStartWindow(scheduledStart, now time.Time) bool {
	diffDays := scheduledStart.Sub(now).Hours() / 24
	return math.Abs(diffDays) <= startWindowDays
}

// StartSprint moves a planning sprint to active. At most one sprint
// per board may be active; a previously active sprint is either
// auto-completed (with a full metric snapshot) or causes the start to
// be rejected, depending on the configured policy.
func (s *SprintService) StartSprint(ctx context.Context, callerEmail string, sprintID primitive.ObjectID) (*models.Sprint, error) {
	sprint, err := findSprint(ctx, s.SprintsCollection, sprintID)
	if err != nil {
		return nil, err
	}
	board, err := findBoard(ctx, s.BoardsCollection, sprint.BoardID)
	if err != nil {
		return nil, err
	}
	if !HasPermission(board, callerEmail, models.CapManageSprints) {
		return nil, fmt.Errorf("cannot start sprint %s: %w", sprintID.Hex(), ErrPermissionDenied)
	}

	if sprint.Status != models.SprintPlanning {
		return nil, fmt.Errorf("sprint %s is %s, only planning sprints can be started: %w", sprintID.Hex(), sprint.Status, ErrInvalidTransition)
	}
	if !withinStartWindow(sprint.StartDate, time.Now()) {
		return nil, fmt.Errorf("scheduled start of sprint %s is more than %d days away: %w", sprintID.Hex(), startWindowDays, ErrInvalidTransition)
	}

	actives, err := s.activeSprints(ctx, sprint.BoardID)
	if err != nil {
		return nil, err
	}
	if len(actives) > 1 {
		return nil, fmt.Errorf("board %s has %d active sprints: %w", sprint.BoardID.Hex(), len(actives), ErrInconsistentState)
	}
	if len(actives) == 1 {
		if !s.AutoCompletePrevious {
			return nil, fmt.Errorf("sprint %s (#%d) is active on board %s: %w", actives[0].ID.Hex(), actives[0].SprintNumber, sprint.BoardID.Hex(), ErrActiveSprintExists)
		}
		if _, err := s.completeSprint(ctx, board, &actives[0]); err != nil {
			return nil, fmt.Errorf("failed to auto-complete sprint %s: %w", actives[0].ID.Hex(), err)
		}
		logging.Logger.Infof("Event ID: SPRINT_AUTO_COMPLETED, Description: Sprint %s (#%d) auto-completed before starting %s", actives[0].ID.Hex(), actives[0].SprintNumber, sprintID.Hex())
	}

	if _, err := s.SprintsCollection.UpdateOne(ctx, bson.M{"_id": sprintID}, bson.M{"$set": bson.M{"status": models.SprintActive}}); err != nil {
		return nil, fmt.Errorf("failed to start sprint %s: %w", sprintID.Hex(), err)
	}
	sprint.Status = models.SprintActive

	logging.Logger.Infof("Event ID: SPRINT_STARTED, Description: Sprint %s (#%d) started on board %s", sprint.ID.Hex(), sprint.SprintNumber, board.ID.Hex())
	s.Notifier.NotifyBoard(board, fmt.Sprintf("Sprint %q (#%d) started on board %q", sprint.Name, sprint.SprintNumber, board.Name))
	return sprint, nil
}

func (s *SprintService) activeSprints(ctx context.Context, boardID primitive.ObjectID) ([]models.Sprint, error) {
	cursor, err := s.SprintsCollection.Find(ctx, bson.M{"boardId": boardID, "status": models.SprintActive})
	if err != nil {
		return nil, fmt.Errorf("failed to query active sprints: %w", err)
	}
	defer cursor.Close(ctx)

	var sprints []models.Sprint
	for cursor.Next(ctx) {
		var sprint models.Sprint
		if err := cursor.Decode(&sprint); err != nil {
			return nil, fmt.Errorf("failed to decode sprint: %w", err)
		}
		sprints = append(sprints, sprint)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return sprints, nil
}

// completionSnapshot holds the derived metrics written when a sprint
// completes.
type completionSnapshot struct {
	InitialStoryPoints   int
	CompletedStoryPoints int
	SpilloverStoryPoints int
	CompletionRate       float64
	ActualVelocity       int
	CompletedAt          time.Time
}

// computeCompletionSnapshot derives the completion metrics from the
// sprint's tasks. Completed and spillover points always add up to the
// story-point total of every task in the sprint.
func computeCompletionSnapshot(sprint *models.Sprint, tasks []models.Task, now time.Time) completionSnapshot {
	var doneCount, completedPoints, spilloverPoints int
	for i := range tasks {
		points := tasks[i].StoryPoints()
		if tasks[i].IsDone() {
			completedPoints += points
			doneCount++
		} else {
			spilloverPoints += points
		}
	}

	initial := sprint.TotalStoryPoints
	if initial == 0 {
		initial = completedPoints + spilloverPoints
	}

	var rate float64
	if len(tasks) > 0 {
		rate = roundToOneDecimal(float64(doneCount) / float64(len(tasks)) * 100)
	}

	return completionSnapshot{
		InitialStoryPoints:   initial,
		CompletedStoryPoints: completedPoints,
		SpilloverStoryPoints: spilloverPoints,
		CompletionRate:       rate,
		ActualVelocity:       completedPoints,
		CompletedAt:          now,
	}
}

// CompleteSprint moves an active sprint to completed and writes the
// metric snapshot. Completed is terminal; completing an already
// completed sprint is rejected.
func (s *SprintService) CompleteSprint(ctx context.Context, callerEmail string, sprintID primitive.ObjectID) (*models.Sprint, error) {
	sprint, err := findSprint(ctx, s.SprintsCollection, sprintID)
	if err != nil {
		return nil, err
	}
	board, err := findBoard(ctx, s.BoardsCollection, sprint.BoardID)
	if err != nil {
		return nil, err
	}
	if !HasPermission(board, callerEmail, models.CapManageSprints) {
		return nil, fmt.Errorf("cannot complete sprint %s: %w", sprintID.Hex(), ErrPermissionDenied)
	}
	if sprint.Status != models.SprintActive {
		return nil, fmt.Errorf("sprint %s is %s, only active sprints can be completed: %w", sprintID.Hex(), sprint.Status, ErrInvalidTransition)
	}
	return s.completeSprint(ctx, board, sprint)
}

// completeSprint writes the completed status and metric snapshot. The
// caller has already authorized the transition.
func (s *SprintService) completeSprint(ctx context.Context, board *models.Board, sprint *models.Sprint) (*models.Sprint, error) {
	tasks, err := s.tasksForSprint(ctx, sprint.ID)
	if err != nil {
		return nil, err
	}

	snapshot := computeCompletionSnapshot(sprint, tasks, time.Now())
	update := bson.M{"$set": bson.M{
		"status":               models.SprintCompleted,
		"initialStoryPoints":   snapshot.InitialStoryPoints,
		"completedStoryPoints": snapshot.CompletedStoryPoints,
		"spilloverStoryPoints": snapshot.SpilloverStoryPoints,
		"completionRate":       snapshot.CompletionRate,
		"actualVelocity":       snapshot.ActualVelocity,
		"completedAt":          snapshot.CompletedAt,
	}}

	result, err := s.SprintsCollection.UpdateOne(ctx, bson.M{"_id": sprint.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to complete sprint %s: %w", sprint.ID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("sprint %s: %w", sprint.ID.Hex(), ErrNotFound)
	}

	sprint.Status = models.SprintCompleted
	sprint.InitialStoryPoints = snapshot.InitialStoryPoints
	sprint.CompletedStoryPoints = snapshot.CompletedStoryPoints
	sprint.SpilloverStoryPoints = snapshot.SpilloverStoryPoints
	sprint.CompletionRate = snapshot.CompletionRate
	sprint.ActualVelocity = snapshot.ActualVelocity
	sprint.CompletedAt = &snapshot.CompletedAt

	logging.Logger.Infof("Event ID: SPRINT_COMPLETED, Description: Sprint %s (#%d) completed with %d/%d story points (%.1f%%)", sprint.ID.Hex(), sprint.SprintNumber, snapshot.CompletedStoryPoints, snapshot.CompletedStoryPoints+snapshot.SpilloverStoryPoints, snapshot.CompletionRate)
	s.Notifier.NotifyBoard(board, fmt.Sprintf("Sprint %q (#%d) completed on board %q", sprint.Name, sprint.SprintNumber, board.Name))
	return sprint, nil
}

func (s *SprintService) tasksForSprint(ctx context.Context, sprintID primitive.ObjectID) ([]models.Task, error) {
	cursor, err := s.TasksCollection.Find(ctx, bson.M{"sprintId": sprintID})
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks for sprint %s: %w", sprintID.Hex(), err)
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

// AssignTasks replaces the sprint's task list wholesale. Tasks in the
// new list point at this sprint afterwards; tasks dropped from the
// list are unassigned so a task never belongs to two sprints.
func (s *SprintService) AssignTasks(ctx context.Context, callerEmail string, sprintID primitive.ObjectID, taskIDs []primitive.ObjectID) (*models.Sprint, error) {
	sprint, err := findSprint(ctx, s.SprintsCollection, sprintID)
	if err != nil {
		return nil, err
	}
	board, err := findBoard(ctx, s.BoardsCollection, sprint.BoardID)
	if err != nil {
		return nil, err
	}
	if !HasPermission(board, callerEmail, models.CapManageSprints) {
		return nil, fmt.Errorf("cannot assign tasks to sprint %s: %w", sprintID.Hex(), ErrPermissionDenied)
	}
	if sprint.Status == models.SprintCompleted {
		return nil, fmt.Errorf("sprint %s is completed and read-only: %w", sprintID.Hex(), ErrInvalidTransition)
	}

	if taskIDs == nil {
		taskIDs = []primitive.ObjectID{}
	}

	_, err = s.TasksCollection.UpdateMany(ctx,
		bson.M{"sprintId": sprintID, "_id": bson.M{"$nin": taskIDs}},
		bson.M{"$unset": bson.M{"sprintId": ""}})
	if err != nil {
		return nil, fmt.Errorf("failed to unassign removed tasks: %w", err)
	}

	if len(taskIDs) > 0 {
		_, err = s.TasksCollection.UpdateMany(ctx,
			bson.M{"_id": bson.M{"$in": taskIDs}, "boardId": sprint.BoardID},
			bson.M{"$set": bson.M{"sprintId": sprintID}})
		if err != nil {
			return nil, fmt.Errorf("failed to assign tasks: %w", err)
		}
	}

	if _, err := s.SprintsCollection.UpdateOne(ctx, bson.M{"_id": sprintID}, bson.M{"$set": bson.M{"taskIds": taskIDs}}); err != nil {
		return nil, fmt.Errorf("failed to update sprint task list: %w", err)
	}

	sprint.TaskIDs = taskIDs
	logging.Logger.Infof("Event ID: SPRINT_TASKS_ASSIGNED, Description: Sprint %s now has %d tasks", sprintID.Hex(), len(taskIDs))
	return sprint, nil
}

// DeleteSprint removes a sprint. Task unassignment and sprint removal
// run in one transaction so tasks are never left pointing at a
// deleted sprint.
func (s *SprintService) DeleteSprint(ctx context.Context, callerEmail string, sprintID primitive.ObjectID) error {
	sprint, err := findSprint(ctx, s.SprintsCollection, sprintID)
	if err != nil {
		return err
	}
	board, err := findBoard(ctx, s.BoardsCollection, sprint.BoardID)
	if err != nil {
		return err
	}
	if !HasPermission(board, callerEmail, models.CapManageSprints) {
		return fmt.Errorf("cannot delete sprint %s: %w", sprintID.Hex(), ErrPermissionDenied)
	}

	session, err := s.Client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.TasksCollection.UpdateMany(sc,
			bson.M{"sprintId": sprintID},
			bson.M{"$unset": bson.M{"sprintId": ""}}); err != nil {
			return nil, fmt.Errorf("failed to unassign tasks: %w", err)
		}
		result, err := s.SprintsCollection.DeleteOne(sc, bson.M{"_id": sprintID})
		if err != nil {
			return nil, fmt.Errorf("failed to delete sprint: %w", err)
		}
		if result.DeletedCount == 0 {
			return nil, fmt.Errorf("sprint %s: %w", sprintID.Hex(), ErrNotFound)
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	logging.Logger.Infof("Event ID: SPRINT_DELETED, Description: Sprint %s (#%d) deleted from board %s", sprintID.Hex(), sprint.SprintNumber, board.ID.Hex())
	return nil
}

// GetSprintByID returns a sprint to any board member.
func (s *SprintService) GetSprintByID(ctx context.Context, callerEmail string, sprintID primitive.ObjectID) (*models.Sprint, error) {
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
	return sprint, nil
}

// GetSprintsByBoard returns the board's sprints ordered by sprint
// number.
func (s *SprintService) GetSprintsByBoard(ctx context.Context, callerEmail string, boardID primitive.ObjectID) ([]models.Sprint, error) {
	board, err := findBoard(ctx, s.BoardsCollection, boardID)
	if err != nil {
		return nil, err
	}
	if _, ok := RoleOf(board, callerEmail); !ok {
		return nil, fmt.Errorf("no role on board %s: %w", boardID.Hex(), ErrPermissionDenied)
	}

	opts := options.Find().SetSort(bson.D{{Key: "sprintNumber", Value: 1}})
	cursor, err := s.SprintsCollection.Find(ctx, bson.M{"boardId": boardID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query sprints: %w", err)
	}
	defer cursor.Close(ctx)

	var sprints []models.Sprint
	if err := cursor.All(ctx, &sprints); err != nil {
		return nil, fmt.Errorf("failed to decode sprints: %w", err)
	}
	return sprints, nil
}

// GetActiveSprint returns the board's single active sprint, or
// ErrNotFound when none is active.
func (s *SprintService) GetActiveSprint(ctx context.Context, callerEmail string, boardID primitive.ObjectID) (*models.Sprint, error) {
	board, err := findBoard(ctx, s.BoardsCollection, boardID)
	if err != nil {
		return nil, err
	}
	if _, ok := RoleOf(board, callerEmail); !ok {
		return nil, fmt.Errorf("no role on board %s: %w", boardID.Hex(), ErrPermissionDenied)
	}

	actives, err := s.activeSprints(ctx, boardID)
	if err != nil {
		return nil, err
	}
	switch len(actives) {
	case 0:
		return nil, fmt.Errorf("no active sprint on board %s: %w", boardID.Hex(), ErrNotFound)
	case 1:
		return &actives[0], nil
	}
	return nil, fmt.Errorf("board %s has %d active sprints: %w", boardID.Hex(), len(actives), ErrInconsistentState)
}

// SprintCapacity bundles the capacity report with the utilization of
// the selected story points.
type SprintCapacity struct {
	CapacityReport
	SelectedPoints      int     `json:"selectedPoints"`
	CapacityUtilization float64 `json:"capacityUtilization"`
}

// GetSprintCapacity recomputes capacity figures live from the
// sprint's planning fields. When selectedPoints is nil the committed
// points are summed from the sprint's currently assigned tasks.
func (s *SprintService) GetSprintCapacity(ctx context.Context, callerEmail string, sprintID primitive.ObjectID, selectedPoints *int) (*SprintCapacity, error) {
	sprint, err := s.GetSprintByID(ctx, callerEmail, sprintID)
	if err != nil {
		return nil, err
	}

	points := 0
	if selectedPoints != nil {
		points = *selectedPoints
	} else {
		tasks, err := s.tasksForSprint(ctx, sprintID)
		if err != nil {
			return nil, err
		}
		for i := range tasks {
			points += tasks[i].StoryPoints()
		}
	}

	report := CalculateCapacity(sprint.DurationDays, sprint.WorkHoursPerWeek, sprint.TeamSize, sprint.Holidays, sprint.StartDate, sprint.EndDate)
	return &SprintCapacity{
		CapacityReport:      report,
		SelectedPoints:      points,
		CapacityUtilization: CapacityUtilization(points, report.FinalizedCapacity),
	}, nil
}
