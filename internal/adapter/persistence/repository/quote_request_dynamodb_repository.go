package repository

import (
	"context"
	"sort"
	"time"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuoteRequestsTableName = "quote_requests"

type quoteRequestItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Email     string  `dynamodbav:"email"`
	Company   string  `dynamodbav:"company"`
	Phone     *string `dynamodbav:"phone"`
	Service   string  `dynamodbav:"service"`
	Message   *string `dynamodbav:"message"`
	CreatedAt string  `dynamodbav:"created_at"`
}

// QuoteRequestDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing scans the table and sorts in process: the listing path is the
// disabled admin endpoint, and the table holds form submissions, not bulk
// data.

type QuoteRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb *dynamodb.Client) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_REQUESTS_TABLE", defaultQuoteRequestsTableName),
	}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	it := toQuoteRequestItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRequest{}, err
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
		return entities.QuoteRequest{}, wrapStorageErr("put quote_request", err)
	}
	return q, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, wrapStorageErr("get quote_request", err)
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func (r *QuoteRequestDynamoRepository) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	var quotes []entities.QuoteRequest

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapStorageErr("scan quote_requests", err)
		}

		var items []quoteRequestItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteRequestItem(it))
		}
	}

	// Newest first; equal timestamps fall back to id for a stable order.
	sort.Slice(quotes, func(i, j int) bool {
		if !quotes[i].CreatedAt.Equal(quotes[j].CreatedAt) {
			return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
		}
		return quotes[i].ID > quotes[j].ID
	})
	return quotes, nil
}

func toQuoteRequestItem(q entities.QuoteRequest) quoteRequestItem {
	return quoteRequestItem{
		ID:        q.ID,
		Name:      q.Name,
		Email:     q.Email,
		Company:   q.Company,
		Phone:     q.Phone,
		Service:   q.Service,
		Message:   q.Message,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.QuoteRequest{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Company:   it.Company,
		Phone:     it.Phone,
		Service:   it.Service,
		Message:   it.Message,
		CreatedAt: createdAt,
	}
}
