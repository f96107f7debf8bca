package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"roadinspect/internal/domain/entities"
	"roadinspect/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInspectionsTableName = "inspections"

type inspectionSnapshotItem struct {
	ID            string `dynamodbav:"id"`
	RoadSectionID string `dynamodbav:"road_id"`
	PhaseID       string `dynamodbav:"phase_id"`
	PhaseName     string `dynamodbav:"phase_name"`
	StartPK       string `dynamodbav:"start_pk"`
	EndPK         string `dynamodbav:"end_pk"`
	Side          string `dynamodbav:"side"`
	Status        string `dynamodbav:"status"`
	LayerID       string `dynamodbav:"layer_id"`
	LayerName     string `dynamodbav:"layer_name"`
	CheckID       string `dynamodbav:"check_id"`
	CheckName     string `dynamodbav:"check_name"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type inspectionEntryItem struct {
	ID               string   `dynamodbav:"id"`
	RoadSectionID    string   `dynamodbav:"road_id"`
	PhaseID          string   `dynamodbav:"phase_id"`
	Side             string   `dynamodbav:"side"`
	StartPK          string   `dynamodbav:"start_pk"`
	EndPK            string   `dynamodbav:"end_pk"`
	LayerName        string   `dynamodbav:"layer_name"`
	CheckName        string   `dynamodbav:"check_name"`
	Types            []string `dynamodbav:"types"`
	Remark           string   `dynamodbav:"remark"`
	AppointmentDate  string   `dynamodbav:"appointment_date"`
	Status           string   `dynamodbav:"status"`
	SubmissionNumber string   `dynamodbav:"submission_number"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// InspectionDynamoRepository reads and writes inspection records in the
// inspections table. Reads go through the road_id-index GSI so one query
// covers every phase of a road section. Writes use TransactWriteItems so a
// submission's entries land atomically.

type InspectionDynamoRepository struct {
	ddb   *dynamodb.Client
	table string
}

var (
	_ interfaces.IInspectionReadRepository  = (*InspectionDynamoRepository)(nil)
	_ interfaces.IInspectionWriteRepository = (*InspectionDynamoRepository)(nil)
)

func NewInspectionDynamoRepository(ddb *dynamodb.Client) *InspectionDynamoRepository {
	return &InspectionDynamoRepository{
		ddb:   ddb,
		table: getenvDefault("INSPECTIONS_TABLE", defaultInspectionsTableName),
	}
}

func (r *InspectionDynamoRepository) ListByRoadSection(ctx context.Context, roadSectionID string) ([]entities.InspectionSnapshot, error) {
	var snapshots []entities.InspectionSnapshot
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.table),
			IndexName:              aws.String("road_id-index"),
			KeyConditionExpression: aws.String("#road_id = :road_id"),
			ExpressionAttributeNames: map[string]string{
				"#road_id": "road_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":road_id": &types.AttributeValueMemberS{Value: roadSectionID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []inspectionSnapshotItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			snapshots = append(snapshots, fromSnapshotItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return snapshots, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *InspectionDynamoRepository) CreateEntries(ctx context.Context, entries []entities.InspectionEntry) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	writeItems := make([]types.TransactWriteItem, 0, len(entries))
	for _, entry := range entries {
		item, err := attributevalue.MarshalMap(toEntryItem(entry, now))
		if err != nil {
			return err
		}
		writeItems = append(writeItems, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.table),
				Item:                item,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writeItems,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return &interfaces.WriteRejectedError{Details: cancellationDetails(canceled)}
		}
		return err
	}
	return nil
}

func cancellationDetails(canceled *types.TransactionCanceledException) []string {
	var details []string
	for i, reason := range canceled.CancellationReasons {
		code := aws.ToString(reason.Code)
		if code == "" || code == "None" {
			continue
		}
		detail := "entry " + strconv.Itoa(i) + ": " + code
		if msg := aws.ToString(reason.Message); msg != "" {
			detail += " (" + msg + ")"
		}
		details = append(details, detail)
	}
	if len(details) == 0 {
		details = append(details, canceled.ErrorMessage())
	}
	return details
}

func fromSnapshotItem(it inspectionSnapshotItem) entities.InspectionSnapshot {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	layerID, _ := strconv.ParseInt(it.LayerID, 10, 64)
	checkID, _ := strconv.ParseInt(it.CheckID, 10, 64)
	return entities.InspectionSnapshot{
		ID:            it.ID,
		RoadSectionID: it.RoadSectionID,
		PhaseID:       it.PhaseID,
		PhaseName:     it.PhaseName,
		StartPK:       parseFloat(it.StartPK),
		EndPK:         parseFloat(it.EndPK),
		Side:          entities.ParseSide(it.Side),
		Status:        entities.Status(it.Status),
		LayerID:       layerID,
		LayerName:     it.LayerName,
		CheckID:       checkID,
		CheckName:     it.CheckName,
		UpdatedAt:     updatedAt,
	}
}

func toEntryItem(entry entities.InspectionEntry, updatedAt string) inspectionEntryItem {
	return inspectionEntryItem{
		ID:               entry.ID,
		RoadSectionID:    entry.RoadSectionID,
		PhaseID:          entry.PhaseID,
		Side:             string(entry.Side),
		StartPK:          formatFloat(entry.StartPK),
		EndPK:            formatFloat(entry.EndPK),
		LayerName:        entry.LayerName,
		CheckName:        entry.CheckName,
		Types:            entry.Types,
		Remark:           entry.Remark,
		AppointmentDate:  entry.AppointmentDate.UTC().Format(time.RFC3339),
		Status:           string(entry.Status),
		SubmissionNumber: entry.SubmissionNumber,
		UpdatedAt:        updatedAt,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
