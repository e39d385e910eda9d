package repository

import (
	"context"
	"errors"

	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPedidosTableName = "pedidos"

var ErrPedidoInexistente = errors.New("pedido não existe na tabela")

type historicoDeltaItem struct {
	Valor        string `dynamodbav:"valor,omitempty"`
	Custo        string `dynamodbav:"custo,omitempty"`
	Status       string `dynamodbav:"status,omitempty"`
	IDFechamento string `dynamodbav:"idFechamento,omitempty"`
}

type historicoItem struct {
	ID            string              `dynamodbav:"id"`
	Tipo          string              `dynamodbav:"tipo"`
	ValorAnterior *historicoDeltaItem `dynamodbav:"valorAnterior,omitempty"`
	ValorNovo     *historicoDeltaItem `dynamodbav:"valorNovo,omitempty"`
	Usuario       string              `dynamodbav:"usuario"`
	Data          int64               `dynamodbav:"data"`
}

type pedidoItem struct {
	Numero       string          `dynamodbav:"numero"`
	DataEnvio    string          `dynamodbav:"dataEnvio"`
	Fornecedor   string          `dynamodbav:"fornecedor"`
	Valor        string          `dynamodbav:"valor"`
	Custo        string          `dynamodbav:"custo,omitempty"`
	Tipo         string          `dynamodbav:"tipo"`
	Status       string          `dynamodbav:"status,omitempty"`
	IDFechamento string          `dynamodbav:"idFechamento,omitempty"`
	Historico    []historicoItem `dynamodbav:"historico,omitempty"`
}

// PedidoDynamoRepository persists Pedido entities in DynamoDB.
//
// Table requirements:
//   - PK: numero (string)
//
// The historico attribute is a list and only ever grows: AppendHistorico
// uses list_append so concurrent writers cannot overwrite each other's
// entries.

type PedidoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPedidoRepository = (*PedidoDynamoRepository)(nil)

func NewPedidoDynamoRepository(ddb *dynamodb.Client) *PedidoDynamoRepository {
	return &PedidoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PEDIDOS_TABLE", defaultPedidosTableName),
	}
}

func (r *PedidoDynamoRepository) List(ctx context.Context) ([]entities.Pedido, error) {
	pedidos := make([]entities.Pedido, 0)

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
			var it pedidoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			pedidos = append(pedidos, fromPedidoItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return pedidos, nil
}

func (r *PedidoDynamoRepository) GetByNumero(ctx context.Context, numero string) (entities.Pedido, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"numero": &types.AttributeValueMemberS{Value: numero},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pedido{}, nil
	}

	var it pedidoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pedido{}, err
	}
	return fromPedidoItem(it), nil
}

func (r *PedidoDynamoRepository) SetFechado(ctx context.Context, numero, idFechamento string) error {
	// Status and closure link land in one UpdateItem so no reader ever sees
	// a closed order without its fechamento id.
	return r.update(ctx, numero,
		"SET #status = :status, #idFechamento = :idFechamento",
		map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(entities.PedidoStatusFechado)},
			":idFechamento": &types.AttributeValueMemberS{Value: idFechamento},
		},
		map[string]string{
			"#status":       "status",
			"#idFechamento": "idFechamento",
		},
	)
}

func (r *PedidoDynamoRepository) SetCancelado(ctx context.Context, numero string) error {
	return r.update(ctx, numero,
		"SET #status = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.PedidoStatusCancelado)},
		},
		map[string]string{
			"#status": "status",
		},
	)
}

func (r *PedidoDynamoRepository) UpdateValores(ctx context.Context, numero, valor, custo string) error {
	return r.update(ctx, numero,
		"SET #valor = :valor, #custo = :custo",
		map[string]types.AttributeValue{
			":valor": &types.AttributeValueMemberS{Value: valor},
			":custo": &types.AttributeValueMemberS{Value: custo},
		},
		map[string]string{
			"#valor": "valor",
			"#custo": "custo",
		},
	)
}

func (r *PedidoDynamoRepository) AppendHistorico(ctx context.Context, numero string, item entities.HistoricoItem) error {
	av, err := attributevalue.MarshalMap(toHistoricoItem(item))
	if err != nil {
		return err
	}

	return r.update(ctx, numero,
		"SET #historico = list_append(if_not_exists(#historico, :vazio), :entrada)",
		map[string]types.AttributeValue{
			":entrada": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberM{Value: av},
			}},
			":vazio": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
		map[string]string{
			"#historico": "historico",
		},
	)
}

func (r *PedidoDynamoRepository) update(
	ctx context.Context,
	numero string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"numero": &types.AttributeValueMemberS{Value: numero},
		},
		ConditionExpression:       aws.String("attribute_exists(#numero)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#numero": "numero"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrPedidoInexistente
		}
		return err
	}
	return nil
}

func toHistoricoItem(h entities.HistoricoItem) historicoItem {
	return historicoItem{
		ID:            h.ID,
		Tipo:          string(h.Tipo),
		ValorAnterior: toHistoricoDeltaItem(h.ValorAnterior),
		ValorNovo:     toHistoricoDeltaItem(h.ValorNovo),
		Usuario:       h.Usuario,
		Data:          h.Data,
	}
}

func fromHistoricoItem(it historicoItem) entities.HistoricoItem {
	return entities.HistoricoItem{
		ID:            it.ID,
		Tipo:          entities.HistoricoTipo(it.Tipo),
		ValorAnterior: fromHistoricoDeltaItem(it.ValorAnterior),
		ValorNovo:     fromHistoricoDeltaItem(it.ValorNovo),
		Usuario:       it.Usuario,
		Data:          it.Data,
	}
}

func toHistoricoDeltaItem(d *entities.PedidoDelta) *historicoDeltaItem {
	if d == nil {
		return nil
	}
	return &historicoDeltaItem{
		Valor:        d.Valor,
		Custo:        d.Custo,
		Status:       d.Status,
		IDFechamento: d.IDFechamento,
	}
}

func fromHistoricoDeltaItem(it *historicoDeltaItem) *entities.PedidoDelta {
	if it == nil {
		return nil
	}
	return &entities.PedidoDelta{
		Valor:        it.Valor,
		Custo:        it.Custo,
		Status:       it.Status,
		IDFechamento: it.IDFechamento,
	}
}

func fromPedidoItem(it pedidoItem) entities.Pedido {
	p := entities.Pedido{
		Numero:       it.Numero,
		DataEnvio:    it.DataEnvio,
		Fornecedor:   it.Fornecedor,
		Valor:        it.Valor,
		Custo:        it.Custo,
		Tipo:         entities.PedidoTipo(it.Tipo),
		Status:       entities.PedidoStatus(it.Status),
		IDFechamento: it.IDFechamento,
	}
	for _, h := range it.Historico {
		p.Historico = append(p.Historico, fromHistoricoItem(h))
	}
	return p
}
