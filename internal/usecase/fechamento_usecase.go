package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSelecaoVazia             = errors.New("nenhum pedido selecionado")
	ErrDataPagamentoObrigatoria = errors.New("data de pagamento obrigatória")
	ErrFornecedorDiferente      = errors.New("só é possível selecionar pedidos do mesmo fornecedor")
	ErrPedidoNaoEncontrado      = errors.New("pedido não encontrado")
	ErrPedidoNaoFechavel        = errors.New("pedido não disponível para fechamento")
	ErrChaveAPINaoConfigurada   = errors.New("api key do bling não configurada")
	ErrBlingIndisponivel        = errors.New("não foi possível contatar o bling")
	ErrFechamentoNaoEncontrado  = errors.New("fechamento não encontrado")
)

// UsuarioDesconhecido is the sentinel actor recorded when no identity was
// provided by the caller.
const UsuarioDesconhecido = "usuário desconhecido"

// BlingRecusadoError is returned when the relay answered with a status
// outside {200, 201}. No local mutation has happened at that point; the
// whole operation is safe to retry.
type BlingRecusadoError struct {
	Status     int
	StatusText string
	RawBody    string
}

func (e *BlingRecusadoError) Error() string {
	return fmt.Sprintf("erro ao criar conta no bling. status: %d - %s\nresposta: %s", e.Status, e.StatusText, e.RawBody)
}

// FechamentoParcialError reports a failure after Bling accepted the
// payable: local state may hold a Fechamento with only part of the orders
// flipped. Not automatically recoverable; the operator must reconcile.
type FechamentoParcialError struct {
	IDFechamento string
	Concluidos   []string
	Pendentes    []string
	Err          error
}

func (e *FechamentoParcialError) Error() string {
	return fmt.Sprintf("fechamento %s gravado parcialmente (concluídos: %v, pendentes: %v): %v",
		e.IDFechamento, e.Concluidos, e.Pendentes, e.Err)
}

func (e *FechamentoParcialError) Unwrap() error { return e.Err }

// CampoValor selects which monetary field of the order is treated as the
// supplier-payable amount. A single choice drives the total, the Bling
// payload and the recorded valorTotal.

type CampoValor string

const (
	CampoValorCusto CampoValor = "custo"
	CampoValorValor CampoValor = "valor"
)

// FechamentoConfig is the static routing configuration for Bling payables.
type FechamentoConfig struct {
	CampoValor  CampoValor
	ContatoID   string
	CategoriaID string
}

func (c FechamentoConfig) amount(p entities.Pedido) string {
	if c.CampoValor == CampoValorValor {
		return p.Valor
	}
	return p.Custo
}

// GerarFechamentoInput is the user-confirmed closure request.
type GerarFechamentoInput struct {
	Numeros       []string
	DataPagamento time.Time
	Usuario       string
}

// FechamentoFiltro narrows the closure history listing.
type FechamentoFiltro struct {
	Fornecedor string
	Inicio     *time.Time
	Fim        *time.Time
}

// IFechamentoUseCase encapsulates the supplier-closure workflow: turning a
// selection of open orders into a payable at Bling plus the local closure
// record with its audit trail.

type IFechamentoUseCase interface {
	GerarFechamento(ctx context.Context, input GerarFechamentoInput) (entities.Fechamento, error)
	Listar(ctx context.Context, filtro FechamentoFiltro) ([]entities.Fechamento, error)
	GetByID(ctx context.Context, id string) (entities.Fechamento, error)
}

type FechamentoUseCase struct {
	pedidos     interfaces.IPedidoRepository
	fechamentos interfaces.IFechamentoRepository
	logs        interfaces.ILogRepository
	gateway     interfaces.IERPGateway
	secrets     interfaces.ISecretProvider
	cfg         FechamentoConfig

	now func() time.Time
}

var _ IFechamentoUseCase = (*FechamentoUseCase)(nil)

func NewFechamentoUseCase(
	pedidos interfaces.IPedidoRepository,
	fechamentos interfaces.IFechamentoRepository,
	logs interfaces.ILogRepository,
	gateway interfaces.IERPGateway,
	secrets interfaces.ISecretProvider,
	cfg FechamentoConfig,
) *FechamentoUseCase {
	if cfg.CampoValor == "" {
		cfg.CampoValor = CampoValorCusto
	}
	return &FechamentoUseCase{
		pedidos:     pedidos,
		fechamentos: fechamentos,
		logs:        logs,
		gateway:     gateway,
		secrets:     secrets,
		cfg:         cfg,
		now:         time.Now,
	}
}

// GerarFechamento runs the closure flow. The Bling call strictly precedes
// any local write: on rejection or unreachability the store holds nothing
// but the forensic log entry and the operation can be retried from scratch.
func (u *FechamentoUseCase) GerarFechamento(ctx context.Context, input GerarFechamentoInput) (entities.Fechamento, error) {
	log.Printf("[fechamento][usecase] gerar start pedidos=%d usuario=%q", len(input.Numeros), input.Usuario)

	if len(input.Numeros) == 0 {
		return entities.Fechamento{}, ErrSelecaoVazia
	}
	if input.DataPagamento.IsZero() {
		return entities.Fechamento{}, ErrDataPagamentoObrigatoria
	}

	usuario := usuarioOuDesconhecido(input.Usuario)

	selecionados := make([]entities.Pedido, 0, len(input.Numeros))
	fornecedor := ""
	for _, numero := range input.Numeros {
		p, err := u.pedidos.GetByNumero(ctx, numero)
		if err != nil {
			return entities.Fechamento{}, err
		}
		if p.Numero == "" {
			log.Printf("[fechamento][usecase] pedido não encontrado numero=%s", numero)
			return entities.Fechamento{}, fmt.Errorf("%w: %s", ErrPedidoNaoEncontrado, numero)
		}
		if !p.Fechavel() {
			log.Printf("[fechamento][usecase] pedido não fechável numero=%s status=%s tipo=%s", numero, p.StatusEfetivo(), p.Tipo)
			return entities.Fechamento{}, fmt.Errorf("%w: %s", ErrPedidoNaoFechavel, numero)
		}
		if fornecedor == "" {
			fornecedor = p.Fornecedor
		} else if p.Fornecedor != fornecedor {
			log.Printf("[fechamento][usecase] fornecedor divergente numero=%s fornecedor=%q esperado=%q", numero, p.Fornecedor, fornecedor)
			return entities.Fechamento{}, ErrFornecedorDiferente
		}
		selecionados = append(selecionados, p)
	}

	total := 0.0
	resumos := make([]entities.PedidoResumo, 0, len(selecionados))
	for _, p := range selecionados {
		v, err := entities.ParseValorBR(u.cfg.amount(p))
		if err != nil {
			return entities.Fechamento{}, fmt.Errorf("pedido %s: %w", p.Numero, err)
		}
		total += v
		resumos = append(resumos, entities.PedidoResumo{
			NumeroPedido: p.Numero,
			Custo:        u.cfg.amount(p),
			DataEnvio:    p.DataEnvio,
		})
	}
	valorTotalFormatado := entities.FormatValorBR(total)

	hoje := u.now()
	dataHoje := hoje.Format("2006-01-02")
	vencimento := input.DataPagamento.AddDate(0, 0, 2).Format("2006-01-02")

	conta := entities.ContaPagar{
		Vencimento:  vencimento,
		Valor:       total,
		Contato:     entities.BlingContato{ID: u.cfg.ContatoID},
		Categoria:   entities.BlingCategoria{ID: u.cfg.CategoriaID},
		DataEmissao: dataHoje,
		Competencia: dataHoje,
		Historico:   fmt.Sprintf("Fechamento fornecedor %s - %s", fornecedor, dataHoje),
	}

	apiKey, err := u.secrets.BlingAPIKey(ctx)
	if err != nil {
		log.Printf("[fechamento][usecase] api key indisponível err=%v", err)
		return entities.Fechamento{}, fmt.Errorf("%w: %v", ErrChaveAPINaoConfigurada, err)
	}

	exchange, err := u.gateway.CriarContaPagar(ctx, apiKey, conta)
	if err != nil {
		log.Printf("[fechamento][usecase] bling indisponível err=%v", err)
		return entities.Fechamento{}, fmt.Errorf("%w: %v", ErrBlingIndisponivel, err)
	}

	// Forensic trail first, success or failure of the exchange.
	logEntry := entities.LogBling{
		ID:          uuid.NewString(),
		Tipo:        "bling_request",
		Data:        u.now().UnixMilli(),
		CurlCommand: exchange.CurlCommand,
		Webhook:     exchange,
	}
	if _, err := u.logs.Append(ctx, logEntry); err != nil {
		log.Printf("[fechamento][usecase] falha gravando log do bling err=%v", err)
		return entities.Fechamento{}, err
	}

	if !exchange.Sucesso() {
		log.Printf("[fechamento][usecase] bling recusou status=%d", exchange.Status)
		return entities.Fechamento{}, &BlingRecusadoError{
			Status:     exchange.Status,
			StatusText: exchange.StatusText,
			RawBody:    exchange.RawResponse,
		}
	}

	// The relay body cannot be correlated to an authoritative Bling id in
	// every deployment; store a placeholder instead of blocking on one.
	tempBlingID := fmt.Sprintf("TEMP_%d", u.now().UnixMilli())

	f := entities.Fechamento{
		ID:            uuid.NewString(),
		Fornecedor:    fornecedor,
		DataPagamento: vencimento,
		ValorTotal:    valorTotalFormatado,
		Pedidos:       resumos,
		Usuario:       usuario,
		Log: []entities.FechamentoLog{{
			Tipo:    entities.FechamentoLogTipoCriacao,
			Usuario: usuario,
			Data:    u.now().UnixMilli(),
			Detalhes: fmt.Sprintf("Fechamento criado com %d pedidos no valor total de R$ %s. Conta a pagar registrada no Bling.",
				len(resumos), valorTotalFormatado),
		}},
		BlingRegistro: &entities.BlingRegistro{
			Registrado:    true,
			IDContasPagar: tempBlingID,
			DataRegistro:  dataHoje,
		},
	}

	created, err := u.fechamentos.Create(ctx, f)
	if err != nil {
		log.Printf("[fechamento][usecase] falha gravando fechamento id=%s err=%v", f.ID, err)
		return entities.Fechamento{}, &FechamentoParcialError{
			IDFechamento: f.ID,
			Pendentes:    input.Numeros,
			Err:          err,
		}
	}

	concluidos := make([]string, 0, len(input.Numeros))
	for i, numero := range input.Numeros {
		if err := u.fecharPedido(ctx, numero, f.ID, usuario); err != nil {
			log.Printf("[fechamento][usecase] falha atualizando pedido numero=%s id=%s err=%v", numero, f.ID, err)
			return entities.Fechamento{}, &FechamentoParcialError{
				IDFechamento: f.ID,
				Concluidos:   concluidos,
				Pendentes:    input.Numeros[i:],
				Err:          err,
			}
		}
		concluidos = append(concluidos, numero)
	}

	log.Printf("[fechamento][usecase] gerar success id=%s fornecedor=%q total=%s pedidos=%d",
		created.ID, fornecedor, valorTotalFormatado, len(concluidos))
	return created, nil
}

// fecharPedido re-reads the order to capture a fresh previous-state for the
// audit entry, flips status+link in one atomic update, then appends the
// historico entry.
func (u *FechamentoUseCase) fecharPedido(ctx context.Context, numero, idFechamento, usuario string) error {
	atual, err := u.pedidos.GetByNumero(ctx, numero)
	if err != nil {
		return err
	}
	if atual.Numero == "" {
		return fmt.Errorf("%w: %s", ErrPedidoNaoEncontrado, numero)
	}

	if err := u.pedidos.SetFechado(ctx, numero, idFechamento); err != nil {
		return err
	}

	item := entities.HistoricoItem{
		ID:   uuid.NewString(),
		Tipo: entities.HistoricoTipoFechamento,
		ValorAnterior: &entities.PedidoDelta{
			Status: string(atual.StatusEfetivo()),
		},
		ValorNovo: &entities.PedidoDelta{
			Status:       string(entities.PedidoStatusFechado),
			IDFechamento: idFechamento,
		},
		Usuario: usuario,
		Data:    u.now().UnixMilli(),
	}
	return u.pedidos.AppendHistorico(ctx, numero, item)
}

// Listar returns closures for the history view, newest first, optionally
// narrowed by fornecedor and dataRegistro range (day granularity).
func (u *FechamentoUseCase) Listar(ctx context.Context, filtro FechamentoFiltro) ([]entities.Fechamento, error) {
	all, err := u.fechamentos.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Fechamento, 0, len(all))
	for _, f := range all {
		if filtro.Fornecedor != "" && filtro.Fornecedor != FornecedorTodos && f.Fornecedor != filtro.Fornecedor {
			continue
		}
		if filtro.Inicio != nil && f.DataRegistro.Before(inicioDoDia(*filtro.Inicio)) {
			continue
		}
		if filtro.Fim != nil && f.DataRegistro.After(fimDoDia(*filtro.Fim)) {
			continue
		}
		out = append(out, f)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DataRegistro.After(out[j].DataRegistro)
	})
	return out, nil
}

func (u *FechamentoUseCase) GetByID(ctx context.Context, id string) (entities.Fechamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Fechamento{}, ErrFechamentoNaoEncontrado
	}
	f, err := u.fechamentos.GetByID(ctx, id)
	if err != nil {
		return entities.Fechamento{}, err
	}
	if f.ID == "" {
		return entities.Fechamento{}, ErrFechamentoNaoEncontrado
	}
	return f, nil
}

func inicioDoDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func fimDoDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
