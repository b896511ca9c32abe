package repository

import (
	"context"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "profiles"

type profileItem struct {
	ID   string `dynamodbav:"id"`
	Role string `dynamodbav:"role"`
}

// ProfileDynamoRepository reads the user-profile table to resolve
// notification recipients by role. Profile writes belong to the identity
// system, not this service.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (role-index): role

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserDirectory = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) ListUserIDsByRole(ctx context.Context, role entities.UserRole) ([]string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("role-index"),
		KeyConditionExpression: aws.String("#role = :role"),
		ExpressionAttributeNames: map[string]string{
			"#role": "role",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Items))
	for _, item := range out.Items {
		var it profileItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		ids = append(ids, it.ID)
	}
	return ids, nil
}
