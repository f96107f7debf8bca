package repository

import (
	"context"
	"strconv"

	"roadinspect/internal/domain/entities"
	"roadinspect/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultRoadSectionsTableName = "road_sections"
	defaultPhasesTableName       = "phases"
	defaultDefinitionsTableName  = "phase_definitions"
)

type roadSectionItem struct {
	ID      string `dynamodbav:"id"`
	Slug    string `dynamodbav:"slug"`
	Name    string `dynamodbav:"name"`
	Length  string `dynamodbav:"length"`
	StartPK string `dynamodbav:"start_pk"`
	EndPK   string `dynamodbav:"end_pk"`
}

type intervalItem struct {
	StartPK      string   `dynamodbav:"start_pk"`
	EndPK        string   `dynamodbav:"end_pk"`
	Side         string   `dynamodbav:"side"`
	Spec         string   `dynamodbav:"spec"`
	BillQuantity string   `dynamodbav:"bill_quantity"`
	Layers       []string `dynamodbav:"layers"`
}

type phaseItem struct {
	ID            string         `dynamodbav:"id"`
	RoadSectionID string         `dynamodbav:"road_id"`
	DefinitionID  string         `dynamodbav:"definition_id"`
	Name          string         `dynamodbav:"name"`
	Measure       string         `dynamodbav:"measure"`
	PointHasSides bool           `dynamodbav:"point_has_sides"`
	Layers        []string       `dynamodbav:"layers"`
	Checks        []string       `dynamodbav:"checks"`
	Intervals     []intervalItem `dynamodbav:"intervals"`
}

type definitionItem struct {
	ID            string   `dynamodbav:"id"`
	Name          string   `dynamodbav:"name"`
	Measure       string   `dynamodbav:"measure"`
	TemplateID    string   `dynamodbav:"template_id"`
	DefaultLayers []string `dynamodbav:"default_layers"`
	DefaultChecks []string `dynamodbav:"default_checks"`
}

// PhaseDynamoRepository reads road sections, phases and phase definitions
// from DynamoDB.
//
// Table requirements:
//   - road_sections: PK id (string)
//   - phases: PK id (string), GSI road_id-index on road_id
//   - phase_definitions: PK id (string)

type PhaseDynamoRepository struct {
	ddb              *dynamodb.Client
	roadsTable       string
	phasesTable      string
	definitionsTable string
}

var _ interfaces.IPhaseRepository = (*PhaseDynamoRepository)(nil)

func NewPhaseDynamoRepository(ddb *dynamodb.Client) *PhaseDynamoRepository {
	return &PhaseDynamoRepository{
		ddb:              ddb,
		roadsTable:       getenvDefault("ROAD_SECTIONS_TABLE", defaultRoadSectionsTableName),
		phasesTable:      getenvDefault("PHASES_TABLE", defaultPhasesTableName),
		definitionsTable: getenvDefault("PHASE_DEFINITIONS_TABLE", defaultDefinitionsTableName),
	}
}

func (r *PhaseDynamoRepository) GetRoadSection(ctx context.Context, id string) (entities.RoadSection, error) {
	out, err := r.getItem(ctx, r.roadsTable, id)
	if err != nil || len(out) == 0 {
		return entities.RoadSection{}, err
	}

	var it roadSectionItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.RoadSection{}, err
	}
	return entities.RoadSection{
		ID:      it.ID,
		Slug:    it.Slug,
		Name:    it.Name,
		Length:  parseFloat(it.Length),
		StartPK: parseFloat(it.StartPK),
		EndPK:   parseFloat(it.EndPK),
	}, nil
}

func (r *PhaseDynamoRepository) GetPhase(ctx context.Context, id string) (entities.Phase, error) {
	out, err := r.getItem(ctx, r.phasesTable, id)
	if err != nil || len(out) == 0 {
		return entities.Phase{}, err
	}

	var it phaseItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Phase{}, err
	}
	return fromPhaseItem(it), nil
}

func (r *PhaseDynamoRepository) GetDefinition(ctx context.Context, id string) (entities.PhaseDefinition, error) {
	out, err := r.getItem(ctx, r.definitionsTable, id)
	if err != nil || len(out) == 0 {
		return entities.PhaseDefinition{}, err
	}

	var it definitionItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.PhaseDefinition{}, err
	}
	return entities.PhaseDefinition{
		ID:            it.ID,
		Name:          it.Name,
		Measure:       entities.Measure(it.Measure),
		TemplateID:    it.TemplateID,
		DefaultLayers: it.DefaultLayers,
		DefaultChecks: it.DefaultChecks,
	}, nil
}

func (r *PhaseDynamoRepository) ListPhasesByRoadSection(ctx context.Context, roadSectionID string) ([]entities.Phase, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.phasesTable),
		IndexName:              aws.String("road_id-index"),
		KeyConditionExpression: aws.String("#road_id = :road_id"),
		ExpressionAttributeNames: map[string]string{
			"#road_id": "road_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":road_id": &types.AttributeValueMemberS{Value: roadSectionID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []phaseItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	phases := make([]entities.Phase, 0, len(items))
	for _, it := range items {
		phases = append(phases, fromPhaseItem(it))
	}
	return phases, nil
}

func (r *PhaseDynamoRepository) getItem(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func fromPhaseItem(it phaseItem) entities.Phase {
	phase := entities.Phase{
		ID:            it.ID,
		RoadSectionID: it.RoadSectionID,
		DefinitionID:  it.DefinitionID,
		Name:          it.Name,
		Measure:       entities.Measure(it.Measure),
		PointHasSides: it.PointHasSides,
		Layers:        it.Layers,
		Checks:        it.Checks,
	}
	for _, iv := range it.Intervals {
		phase.Intervals = append(phase.Intervals, entities.Interval{
			StartPK:      parseFloat(iv.StartPK),
			EndPK:        parseFloat(iv.EndPK),
			Side:         entities.ParseSide(iv.Side),
			Spec:         iv.Spec,
			BillQuantity: parseDecimal(iv.BillQuantity),
			Layers:       iv.Layers,
		})
	}
	return phase
}

func parseFloat(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

func parseDecimal(v string) *decimal.Decimal {
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}
