package repository

import (
	"context"
	"strconv"
	"time"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultOpportunitiesTableName = "grant_opportunities"

type opportunityItem struct {
	ID            string `dynamodbav:"id"`
	Title         string `dynamodbav:"title"`
	Description   string `dynamodbav:"description"`
	FundingAmount string `dynamodbav:"funding_amount"`
	Deadline      string `dynamodbav:"deadline"`
	Eligibility   string `dynamodbav:"eligibility"`
	Category      string `dynamodbav:"category"`
	FundingSource string `dynamodbav:"funding_source"`
	PostedBy      string `dynamodbav:"posted_by"`
	PostedDate    string `dynamodbav:"posted_date"`
}

// OpportunityDynamoRepository persists GrantOpportunity entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OpportunityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOpportunityRepository = (*OpportunityDynamoRepository)(nil)

func NewOpportunityDynamoRepository(ddb *dynamodb.Client) *OpportunityDynamoRepository {
	return &OpportunityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPPORTUNITIES_TABLE", defaultOpportunitiesTableName),
	}
}

func (r *OpportunityDynamoRepository) Create(ctx context.Context, o entities.GrantOpportunity) (entities.GrantOpportunity, error) {
	av, err := attributevalue.MarshalMap(toOpportunityItem(o))
	if err != nil {
		return entities.GrantOpportunity{}, err
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
		return entities.GrantOpportunity{}, err
	}
	return o, nil
}

func (r *OpportunityDynamoRepository) ListAll(ctx context.Context) ([]entities.GrantOpportunity, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	opportunities := make([]entities.GrantOpportunity, 0, len(out.Items))
	for _, item := range out.Items {
		var it opportunityItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		opportunities = append(opportunities, fromOpportunityItem(it))
	}
	return opportunities, nil
}

func toOpportunityItem(o entities.GrantOpportunity) opportunityItem {
	return opportunityItem{
		ID:            o.ID,
		Title:         o.Title,
		Description:   o.Description,
		FundingAmount: floatToString(o.FundingAmount),
		Deadline:      o.Deadline.UTC().Format(time.RFC3339Nano),
		Eligibility:   o.Eligibility,
		Category:      string(o.Category),
		FundingSource: string(o.FundingSource),
		PostedBy:      o.PostedBy,
		PostedDate:    o.PostedDate.UTC().Format(time.RFC3339Nano),
	}
}

func fromOpportunityItem(it opportunityItem) entities.GrantOpportunity {
	amount, _ := strconv.ParseFloat(it.FundingAmount, 64)
	return entities.GrantOpportunity{
		ID:            it.ID,
		Title:         it.Title,
		Description:   it.Description,
		FundingAmount: amount,
		Deadline:      timeFromString(it.Deadline),
		Eligibility:   it.Eligibility,
		Category:      entities.GrantCategory(it.Category),
		FundingSource: entities.FundingSource(it.FundingSource),
		PostedBy:      it.PostedBy,
		PostedDate:    timeFromString(it.PostedDate),
	}
}
