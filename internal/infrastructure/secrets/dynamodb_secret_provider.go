package secrets

import (
	"context"
	"errors"
	"log"
	"strings"

	"estamparia_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSecretsTableName = "secrets"
	blingSecretName         = "bling"
)

var ErrChaveAPINaoEncontrada = errors.New("api key do bling não encontrada no banco secundário")

// secretItem mirrors the { key: string } shape the original kept at
// /api/api in the secondary database.
type secretItem struct {
	Nome string `dynamodbav:"nome"`
	Key  string `dynamodbav:"key"`
}

// DynamoSecretProvider reads the Bling API key from the secondary DynamoDB
// instance. A missing or empty key is a hard configuration error, surfaced
// distinctly from any Bling rejection, and blocks every ERP call.

type DynamoSecretProvider struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISecretProvider = (*DynamoSecretProvider)(nil)

func NewDynamoSecretProvider(ddb *dynamodb.Client, tableName string) *DynamoSecretProvider {
	if tableName == "" {
		tableName = defaultSecretsTableName
	}
	return &DynamoSecretProvider{ddb: ddb, tableName: tableName}
}

func (p *DynamoSecretProvider) BlingAPIKey(ctx context.Context) (string, error) {
	out, err := p.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(p.tableName),
		Key: map[string]types.AttributeValue{
			"nome": &types.AttributeValueMemberS{Value: blingSecretName},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Printf("[secrets][provider] lookup failed err=%v", err)
		return "", err
	}
	if len(out.Item) == 0 {
		log.Printf("[secrets][provider] api key not found name=%s", blingSecretName)
		return "", ErrChaveAPINaoEncontrada
	}

	var it secretItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	key := strings.TrimSpace(it.Key)
	if key == "" {
		log.Printf("[secrets][provider] api key empty name=%s", blingSecretName)
		return "", ErrChaveAPINaoEncontrada
	}
	return key, nil
}
