package repository

import (
	"context"

	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultLogsTableName = "logs"

type blingExchangeItem struct {
	Status         int                    `dynamodbav:"status"`
	StatusText     string                 `dynamodbav:"statusText"`
	RawResponse    string                 `dynamodbav:"raw_response"`
	ParsedResponse map[string]interface{} `dynamodbav:"parsed_response,omitempty"`
}

type logBlingItem struct {
	ID          string            `dynamodbav:"id"`
	Tipo        string            `dynamodbav:"tipo"`
	Data        int64             `dynamodbav:"data"`
	CurlCommand string            `dynamodbav:"curl_command"`
	Webhook     blingExchangeItem `dynamodbav:"webhook_response"`
}

// LogDynamoRepository persists the forensic Bling exchange records.
//
// Table requirements:
//   - PK: id (string)
//
// Append-only: entries get a fresh uuid when the caller left the id empty
// and are never read back by the service itself.

type LogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILogRepository = (*LogDynamoRepository)(nil)

func NewLogDynamoRepository(ddb *dynamodb.Client) *LogDynamoRepository {
	return &LogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOGS_TABLE", defaultLogsTableName),
	}
}

func (r *LogDynamoRepository) Append(ctx context.Context, l entities.LogBling) (entities.LogBling, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	av, err := attributevalue.MarshalMap(toLogBlingItem(l))
	if err != nil {
		return entities.LogBling{}, err
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
		return entities.LogBling{}, err
	}
	return l, nil
}

func toLogBlingItem(l entities.LogBling) logBlingItem {
	return logBlingItem{
		ID:          l.ID,
		Tipo:        l.Tipo,
		Data:        l.Data,
		CurlCommand: l.CurlCommand,
		Webhook: blingExchangeItem{
			Status:         l.Webhook.Status,
			StatusText:     l.Webhook.StatusText,
			RawResponse:    l.Webhook.RawResponse,
			ParsedResponse: l.Webhook.ParsedResponse,
		},
	}
}
