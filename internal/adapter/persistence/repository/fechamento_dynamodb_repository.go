package repository

import (
	"context"
	"time"

	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFechamentosTableName = "fechamentos"

type fechamentoLogItem struct {
	Tipo     string `dynamodbav:"tipo"`
	Usuario  string `dynamodbav:"usuario"`
	Data     int64  `dynamodbav:"data"`
	Detalhes string `dynamodbav:"detalhes"`
}

type pedidoResumoItem struct {
	NumeroPedido string `dynamodbav:"numeroPedido"`
	Custo        string `dynamodbav:"custo"`
	DataEnvio    string `dynamodbav:"dataEnvio"`
}

type blingRegistroItem struct {
	Registrado    bool   `dynamodbav:"registrado"`
	IDContasPagar string `dynamodbav:"idContasPagar"`
	DataRegistro  string `dynamodbav:"dataRegistro"`
}

type fechamentoItem struct {
	ID            string              `dynamodbav:"id"`
	Fornecedor    string              `dynamodbav:"fornecedor"`
	DataPagamento string              `dynamodbav:"dataPagamento"`
	ValorTotal    string              `dynamodbav:"valorTotal"`
	Pedidos       []pedidoResumoItem  `dynamodbav:"pedidos"`
	Usuario       string              `dynamodbav:"usuario"`
	DataRegistro  string              `dynamodbav:"dataRegistro"`
	Log           []fechamentoLogItem `dynamodbav:"log"`
	BlingRegistro *blingRegistroItem  `dynamodbav:"blingRegistro,omitempty"`
}

// FechamentoDynamoRepository persists Fechamento entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Closures are write-once: Create refuses to overwrite an existing id and
// there is no update or delete path.

type FechamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFechamentoRepository = (*FechamentoDynamoRepository)(nil)

func NewFechamentoDynamoRepository(ddb *dynamodb.Client) *FechamentoDynamoRepository {
	return &FechamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FECHAMENTOS_TABLE", defaultFechamentosTableName),
	}
}

func (r *FechamentoDynamoRepository) Create(ctx context.Context, f entities.Fechamento) (entities.Fechamento, error) {
	// DataRegistro is stamped at write time; callers do not control it.
	f.DataRegistro = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toFechamentoItem(f))
	if err != nil {
		return entities.Fechamento{}, err
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
		return entities.Fechamento{}, err
	}
	return f, nil
}

func (r *FechamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Fechamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Fechamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.Fechamento{}, nil
	}

	var it fechamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Fechamento{}, err
	}
	return fromFechamentoItem(it), nil
}

func (r *FechamentoDynamoRepository) List(ctx context.Context) ([]entities.Fechamento, error) {
	fechamentos := make([]entities.Fechamento, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it fechamentoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			fechamentos = append(fechamentos, fromFechamentoItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return fechamentos, nil
}

func toFechamentoItem(f entities.Fechamento) fechamentoItem {
	it := fechamentoItem{
		ID:            f.ID,
		Fornecedor:    f.Fornecedor,
		DataPagamento: f.DataPagamento,
		ValorTotal:    f.ValorTotal,
		Usuario:       f.Usuario,
		DataRegistro:  f.DataRegistro.UTC().Format(time.RFC3339Nano),
	}
	for _, p := range f.Pedidos {
		it.Pedidos = append(it.Pedidos, pedidoResumoItem(p))
	}
	for _, l := range f.Log {
		it.Log = append(it.Log, fechamentoLogItem{
			Tipo:     string(l.Tipo),
			Usuario:  l.Usuario,
			Data:     l.Data,
			Detalhes: l.Detalhes,
		})
	}
	if f.BlingRegistro != nil {
		reg := blingRegistroItem(*f.BlingRegistro)
		it.BlingRegistro = &reg
	}
	return it
}

func fromFechamentoItem(it fechamentoItem) entities.Fechamento {
	f := entities.Fechamento{
		ID:            it.ID,
		Fornecedor:    it.Fornecedor,
		DataPagamento: it.DataPagamento,
		ValorTotal:    it.ValorTotal,
		Usuario:       it.Usuario,
	}
	if ts, err := time.Parse(time.RFC3339Nano, it.DataRegistro); err == nil {
		f.DataRegistro = ts
	}
	for _, p := range it.Pedidos {
		f.Pedidos = append(f.Pedidos, entities.PedidoResumo(p))
	}
	for _, l := range it.Log {
		f.Log = append(f.Log, entities.FechamentoLog{
			Tipo:     entities.FechamentoLogTipo(l.Tipo),
			Usuario:  l.Usuario,
			Data:     l.Data,
			Detalhes: l.Detalhes,
		})
	}
	if it.BlingRegistro != nil {
		reg := entities.BlingRegistro(*it.BlingRegistro)
		f.BlingRegistro = &reg
	}
	return f
}
