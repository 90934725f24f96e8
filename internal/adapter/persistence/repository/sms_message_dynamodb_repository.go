package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSmsMessagesTableName = "sms_messages"

type smsMessageItem struct {
	ID             string  `dynamodbav:"id"`
	RecipientPhone string  `dynamodbav:"recipient_phone"`
	Message        string  `dynamodbav:"message"`
	Status         string  `dynamodbav:"status"`
	MessageSid     *string `dynamodbav:"message_sid"`
	SentAt         string  `dynamodbav:"sent_at"`
}

// SmsMessageDynamoRepository persists SmsMessage entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update builds a SET expression covering only the fields present in the
// patch, so unspecified attributes are never clobbered.

type SmsMessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISmsMessageRepository = (*SmsMessageDynamoRepository)(nil)

func NewSmsMessageDynamoRepository(ddb *dynamodb.Client) *SmsMessageDynamoRepository {
	return &SmsMessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SMS_MESSAGES_TABLE", defaultSmsMessagesTableName),
	}
}

func (r *SmsMessageDynamoRepository) Create(ctx context.Context, m entities.SmsMessage) (entities.SmsMessage, error) {
	it := toSmsMessageItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SmsMessage{}, err
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
		return entities.SmsMessage{}, wrapStorageErr("put sms_message", err)
	}
	return m, nil
}

func (r *SmsMessageDynamoRepository) GetByID(ctx context.Context, id string) (entities.SmsMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SmsMessage{}, wrapStorageErr("get sms_message", err)
	}
	if len(out.Item) == 0 {
		return entities.SmsMessage{}, nil
	}

	var it smsMessageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SmsMessage{}, err
	}
	return fromSmsMessageItem(it), nil
}

func (r *SmsMessageDynamoRepository) List(ctx context.Context) ([]entities.SmsMessage, error) {
	var messages []entities.SmsMessage

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapStorageErr("scan sms_messages", err)
		}

		var items []smsMessageItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			messages = append(messages, fromSmsMessageItem(it))
		}
	}

	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].SentAt.Equal(messages[j].SentAt) {
			return messages[i].SentAt.After(messages[j].SentAt)
		}
		return messages[i].ID > messages[j].ID
	})
	return messages, nil
}

func (r *SmsMessageDynamoRepository) Update(ctx context.Context, id string, patch entities.SmsMessageUpdate) (entities.SmsMessage, error) {
	expr := ""
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if patch.Status != nil {
		expr = appendSet(expr, "#status = :status")
		values[":status"] = &types.AttributeValueMemberS{Value: string(*patch.Status)}
		names["#status"] = "status"
	}
	if patch.MessageSid != nil {
		expr = appendSet(expr, "#message_sid = :message_sid")
		values[":message_sid"] = &types.AttributeValueMemberS{Value: *patch.MessageSid}
		names["#message_sid"] = "message_sid"
	}
	if expr == "" {
		// Nothing to merge; report the current record.
		return r.GetByID(ctx, id)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SmsMessage{}, nil
		}
		return entities.SmsMessage{}, wrapStorageErr("update sms_message", err)
	}
	if len(out.Attributes) == 0 {
		return entities.SmsMessage{}, nil
	}

	var it smsMessageItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SmsMessage{}, err
	}
	return fromSmsMessageItem(it), nil
}

func appendSet(expr, clause string) string {
	if expr == "" {
		return "SET " + clause
	}
	return expr + ", " + clause
}

func toSmsMessageItem(m entities.SmsMessage) smsMessageItem {
	return smsMessageItem{
		ID:             m.ID,
		RecipientPhone: m.RecipientPhone,
		Message:        m.Message,
		Status:         string(m.Status),
		MessageSid:     m.MessageSid,
		SentAt:         m.SentAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSmsMessageItem(it smsMessageItem) entities.SmsMessage {
	sentAt, _ := time.Parse(time.RFC3339Nano, it.SentAt)
	return entities.SmsMessage{
		ID:             it.ID,
		RecipientPhone: it.RecipientPhone,
		Message:        it.Message,
		Status:         entities.SmsStatus(it.Status),
		MessageSid:     it.MessageSid,
		SentAt:         sentAt,
	}
}
