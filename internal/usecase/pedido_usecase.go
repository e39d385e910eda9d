package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNumeroPedidoInvalido = errors.New("número de pedido inválido")
	ErrPedidoNaoEditavel    = errors.New("pedido cancelado ou fechado não pode ser editado")
	ErrPedidoNaoCancelavel  = errors.New("pedido já cancelado ou fechado")
)

// IPedidoUseCase exposes order maintenance: listing the closable set and
// the edit/cancel mutations, each leaving exactly one historico entry.

type IPedidoUseCase interface {
	ListarAbertos(ctx context.Context) ([]entities.Pedido, []string, error)
	GetByNumero(ctx context.Context, numero string) (entities.Pedido, error)
	Editar(ctx context.Context, numero, valor, custo, usuario string) (entities.Pedido, error)
	Cancelar(ctx context.Context, numero, usuario string) (entities.Pedido, error)
}

type PedidoUseCase struct {
	repo interfaces.IPedidoRepository

	now func() time.Time
}

var _ IPedidoUseCase = (*PedidoUseCase)(nil)

func NewPedidoUseCase(repo interfaces.IPedidoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, now: time.Now}
}

// ListarAbertos returns the orders still eligible for closure (custom kind,
// not cancelled, not yet linked to a fechamento) plus the distinct
// fornecedor list with the "Todos" sentinel in front.
func (u *PedidoUseCase) ListarAbertos(ctx context.Context) ([]entities.Pedido, []string, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	abertos := make([]entities.Pedido, 0, len(all))
	vistos := map[string]bool{}
	fornecedores := []string{FornecedorTodos}
	for _, p := range all {
		if !p.Fechavel() {
			continue
		}
		abertos = append(abertos, p)
		if !vistos[p.Fornecedor] {
			vistos[p.Fornecedor] = true
			fornecedores = append(fornecedores, p.Fornecedor)
		}
	}
	sort.Strings(fornecedores[1:])

	return abertos, fornecedores, nil
}

func (u *PedidoUseCase) GetByNumero(ctx context.Context, numero string) (entities.Pedido, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return entities.Pedido{}, ErrNumeroPedidoInvalido
	}
	p, err := u.repo.GetByNumero(ctx, numero)
	if err != nil {
		return entities.Pedido{}, err
	}
	if p.Numero == "" {
		return entities.Pedido{}, ErrPedidoNaoEncontrado
	}
	return p, nil
}

// Editar rewrites valor/custo and appends one edicao historico entry with
// the previous and new figures.
func (u *PedidoUseCase) Editar(ctx context.Context, numero, valor, custo, usuario string) (entities.Pedido, error) {
	log.Printf("[pedido][usecase] editar start numero=%s", numero)

	p, err := u.GetByNumero(ctx, numero)
	if err != nil {
		return entities.Pedido{}, err
	}
	if p.StatusEfetivo() != entities.PedidoStatusAtivo {
		return entities.Pedido{}, ErrPedidoNaoEditavel
	}

	if _, err := entities.ParseValorBR(valor); err != nil {
		return entities.Pedido{}, err
	}
	if _, err := entities.ParseValorBR(custo); err != nil {
		return entities.Pedido{}, err
	}

	if err := u.repo.UpdateValores(ctx, p.Numero, valor, custo); err != nil {
		return entities.Pedido{}, err
	}

	item := entities.HistoricoItem{
		ID:            uuid.NewString(),
		Tipo:          entities.HistoricoTipoEdicao,
		ValorAnterior: &entities.PedidoDelta{Valor: p.Valor, Custo: p.Custo},
		ValorNovo:     &entities.PedidoDelta{Valor: valor, Custo: custo},
		Usuario:       usuarioOuDesconhecido(usuario),
		Data:          u.now().UnixMilli(),
	}
	if err := u.repo.AppendHistorico(ctx, p.Numero, item); err != nil {
		return entities.Pedido{}, err
	}

	p.Valor = valor
	p.Custo = custo
	p.Historico = append(p.Historico, item)
	log.Printf("[pedido][usecase] editar success numero=%s", numero)
	return p, nil
}

// Cancelar flips an active order to cancelado and appends one cancelamento
// historico entry. Closed or already-cancelled orders are rejected.
func (u *PedidoUseCase) Cancelar(ctx context.Context, numero, usuario string) (entities.Pedido, error) {
	log.Printf("[pedido][usecase] cancelar start numero=%s", numero)

	p, err := u.GetByNumero(ctx, numero)
	if err != nil {
		return entities.Pedido{}, err
	}
	if p.StatusEfetivo() != entities.PedidoStatusAtivo {
		return entities.Pedido{}, ErrPedidoNaoCancelavel
	}

	if err := u.repo.SetCancelado(ctx, p.Numero); err != nil {
		return entities.Pedido{}, err
	}

	item := entities.HistoricoItem{
		ID:            uuid.NewString(),
		Tipo:          entities.HistoricoTipoCancelamento,
		ValorAnterior: &entities.PedidoDelta{Status: string(p.StatusEfetivo())},
		ValorNovo:     &entities.PedidoDelta{Status: string(entities.PedidoStatusCancelado)},
		Usuario:       usuarioOuDesconhecido(usuario),
		Data:          u.now().UnixMilli(),
	}
	if err := u.repo.AppendHistorico(ctx, p.Numero, item); err != nil {
		return entities.Pedido{}, err
	}

	p.Status = entities.PedidoStatusCancelado
	p.Historico = append(p.Historico, item)
	log.Printf("[pedido][usecase] cancelar success numero=%s", numero)
	return p, nil
}

func usuarioOuDesconhecido(usuario string) string {
	if strings.TrimSpace(usuario) == "" {
		return UsuarioDesconhecido
	}
	return usuario
}
