package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGrantsTableName = "grants"

type budgetLineItem struct {
	Name   string `dynamodbav:"name"`
	Amount string `dynamodbav:"amount"`
}

type grantItem struct {
	ID      string `dynamodbav:"id"`
	Version int    `dynamodbav:"version"`

	Title         string `dynamodbav:"title"`
	Description   string `dynamodbav:"description"`
	Amount        string `dynamodbav:"amount"`
	StartDate     string `dynamodbav:"start_date,omitempty"`
	EndDate       string `dynamodbav:"end_date,omitempty"`
	Category      string `dynamodbav:"category"`
	FundingSource string `dynamodbav:"funding_source"`
	Department    string `dynamodbav:"department"`

	ResearcherID   string `dynamodbav:"researcher_id"`
	ResearcherName string `dynamodbav:"researcher_name"`

	Status         string `dynamodbav:"status"`
	SubmittedDate  string `dynamodbav:"submitted_date,omitempty"`
	ReviewComments string `dynamodbav:"review_comments,omitempty"`
	ReviewerID     string `dynamodbav:"reviewer_id,omitempty"`
	ReviewedDate   string `dynamodbav:"reviewed_date,omitempty"`

	BudgetLines      []budgetLineItem `dynamodbav:"budget_lines,omitempty"`
	BudgetOverridden bool             `dynamodbav:"budget_overridden"`

	WorkPlan             string   `dynamodbav:"work_plan,omitempty"`
	StudentParticipation bool     `dynamodbav:"student_participation"`
	Activities           []string `dynamodbav:"activities,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// GrantDynamoRepository persists Grant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (researcher_id-index): researcher_id
//
// Writes after creation go through Save, a full-item put conditional on the
// stored `version` attribute. That gives compare-and-swap semantics without a
// transaction: a lost race surfaces as interfaces.ErrVersionConflict and the
// caller refetches.

type GrantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGrantRepository = (*GrantDynamoRepository)(nil)

func NewGrantDynamoRepository(ddb *dynamodb.Client) *GrantDynamoRepository {
	return &GrantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GRANTS_TABLE", defaultGrantsTableName),
	}
}

func (r *GrantDynamoRepository) Create(ctx context.Context, g entities.Grant) (entities.Grant, error) {
	av, err := attributevalue.MarshalMap(toGrantItem(g))
	if err != nil {
		return entities.Grant{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Grant{}, err
	}
	return g, nil
}

func (r *GrantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Grant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Grant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Grant{}, nil
	}

	var it grantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Grant{}, err
	}
	return fromGrantItem(it), nil
}

func (r *GrantDynamoRepository) Save(ctx context.Context, g entities.Grant, expectedVersion int) (entities.Grant, error) {
	g.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toGrantItem(g))
	if err != nil {
		return entities.Grant{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Grant{}, interfaces.ErrVersionConflict
		}
		return entities.Grant{}, err
	}
	return g, nil
}

func (r *GrantDynamoRepository) ListByResearcherID(ctx context.Context, researcherID string) ([]entities.Grant, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("researcher_id-index"),
		KeyConditionExpression: aws.String("#researcher_id = :researcher_id"),
		ExpressionAttributeNames: map[string]string{
			"#researcher_id": "researcher_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":researcher_id": &types.AttributeValueMemberS{Value: researcherID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalGrantItems(out.Items)
}

func (r *GrantDynamoRepository) ListAll(ctx context.Context) ([]entities.Grant, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalGrantItems(out.Items)
}

func unmarshalGrantItems(items []map[string]types.AttributeValue) ([]entities.Grant, error) {
	grants := make([]entities.Grant, 0, len(items))
	for _, item := range items {
		var it grantItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		grants = append(grants, fromGrantItem(it))
	}
	return grants, nil
}

func toGrantItem(g entities.Grant) grantItem {
	lines := make([]budgetLineItem, 0, len(g.BudgetLines))
	for _, line := range g.BudgetLines {
		lines = append(lines, budgetLineItem{Name: line.Name, Amount: floatToString(line.Amount)})
	}
	if len(lines) == 0 {
		lines = nil
	}

	return grantItem{
		ID:      g.ID,
		Version: g.Version,

		Title:         g.Title,
		Description:   g.Description,
		Amount:        floatToString(g.Amount),
		StartDate:     timeToString(g.StartDate),
		EndDate:       timeToString(g.EndDate),
		Category:      string(g.Category),
		FundingSource: string(g.FundingSource),
		Department:    g.Department,

		ResearcherID:   g.ResearcherID,
		ResearcherName: g.ResearcherName,

		Status:         string(g.Status),
		SubmittedDate:  timeToString(g.SubmittedDate),
		ReviewComments: g.ReviewComments,
		ReviewerID:     g.ReviewerID,
		ReviewedDate:   timeToString(g.ReviewedDate),

		BudgetLines:      lines,
		BudgetOverridden: g.BudgetOverridden,

		WorkPlan:             g.WorkPlan,
		StudentParticipation: g.StudentParticipation,
		Activities:           g.Activities,

		CreatedAt: timeToString(g.CreatedAt),
		UpdatedAt: timeToString(g.UpdatedAt),
	}
}

func fromGrantItem(it grantItem) entities.Grant {
	lines := make([]entities.BudgetLine, 0, len(it.BudgetLines))
	for _, line := range it.BudgetLines {
		amount, _ := strconv.ParseFloat(line.Amount, 64)
		lines = append(lines, entities.BudgetLine{Name: line.Name, Amount: amount})
	}
	if len(lines) == 0 {
		lines = nil
	}

	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Grant{
		ID:      it.ID,
		Version: it.Version,

		Title:         it.Title,
		Description:   it.Description,
		Amount:        amount,
		StartDate:     timeFromString(it.StartDate),
		EndDate:       timeFromString(it.EndDate),
		Category:      entities.GrantCategory(it.Category),
		FundingSource: entities.FundingSource(it.FundingSource),
		Department:    it.Department,

		ResearcherID:   it.ResearcherID,
		ResearcherName: it.ResearcherName,

		Status:         entities.GrantStatus(it.Status),
		SubmittedDate:  timeFromString(it.SubmittedDate),
		ReviewComments: it.ReviewComments,
		ReviewerID:     it.ReviewerID,
		ReviewedDate:   timeFromString(it.ReviewedDate),

		BudgetLines:      lines,
		BudgetOverridden: it.BudgetOverridden,

		WorkPlan:             it.WorkPlan,
		StudentParticipation: it.StudentParticipation,
		Activities:           it.Activities,

		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
