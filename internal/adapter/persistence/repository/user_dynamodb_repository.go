package repository

import (
	"context"
	"sort"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID       string `dynamodbav:"id"`
	Username string `dynamodbav:"username"`
	Password string `dynamodbav:"password"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The conditional put guards the id key only; username uniqueness is not
// enforced here. GetByUsername filters a scan and resolves duplicates to
// the lowest id, which keeps repeated lookups stable. A username GSI can
// replace the scan once the admin area exists.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(userItem{ID: u.ID, Username: u.Username, Password: u.Password})
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, wrapStorageErr("put user", err)
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, wrapStorageErr("get user", err)
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{ID: it.ID, Username: it.Username, Password: it.Password}, nil
}

func (r *UserDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var matches []userItem

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#username = :username"),
		ExpressionAttributeNames: map[string]string{
			"#username": "username",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return entities.User{}, wrapStorageErr("scan users", err)
		}

		var items []userItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return entities.User{}, err
		}
		matches = append(matches, items...)
	}
	if len(matches) == 0 {
		return entities.User{}, nil
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	it := matches[0]
	return entities.User{ID: it.ID, Username: it.Username, Password: it.Password}, nil
}
