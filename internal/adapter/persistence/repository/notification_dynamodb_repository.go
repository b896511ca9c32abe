package repository

import (
	"context"
	"errors"
	"time"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	Message     string `dynamodbav:"message"`
	Type        string `dynamodbav:"type"`
	IsRead      bool   `dynamodbav:"is_read"`
	RelatedID   string `dynamodbav:"related_id,omitempty"`
	RelatedType string `dynamodbav:"related_type,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (user_id-index): user_id
//
// Records are append-only apart from the read flag; there is no delete path.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("user_id-index"),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	notifications := make([]entities.Notification, 0, len(out.Items))
	for _, item := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		notifications = append(notifications, fromNotificationItem(it))
	}
	return notifications, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, userID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// Ownership is enforced at the store: only the recipient flips the flag.
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :user_id"),
		UpdateExpression:    aws.String("SET #is_read = :is_read"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
			"#is_read": "is_read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
			":is_read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:          n.ID,
		UserID:      n.UserID,
		Message:     n.Message,
		Type:        string(n.Type),
		IsRead:      n.IsRead,
		RelatedID:   n.RelatedID,
		RelatedType: n.RelatedType,
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:          it.ID,
		UserID:      it.UserID,
		Message:     it.Message,
		Type:        entities.NotificationType(it.Type),
		IsRead:      it.IsRead,
		RelatedID:   it.RelatedID,
		RelatedType: it.RelatedType,
		CreatedAt:   timeFromString(it.CreatedAt),
	}
}
