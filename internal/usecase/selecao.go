package usecase

import "estamparia_xpto/internal/domain/entities"

// FornecedorTodos is the unfiltered sentinel of the fornecedor filter.
const FornecedorTodos = "Todos"

// Selecao is the selection contract for clients assembling a closure: the
// checkbox session lives on the caller's side, and this type is the
// reference semantics for it. The first order added fixes the fornecedor;
// adding an order from another fornecedor is rejected and leaves the
// selection unchanged. The server does not hold selection state between
// requests, so GerarFechamento re-checks the same-supplier invariant
// against whatever number list arrives.
type Selecao struct {
	numeros    []string
	fornecedor string
}

// Adicionar appends an order to the selection. Adding the same order twice
// is a no-op.
func (s *Selecao) Adicionar(p entities.Pedido) error {
	if s.Contem(p.Numero) {
		return nil
	}
	if len(s.numeros) > 0 && p.Fornecedor != s.fornecedor {
		return ErrFornecedorDiferente
	}
	s.numeros = append(s.numeros, p.Numero)
	s.fornecedor = p.Fornecedor
	return nil
}

// Remover drops an order from the selection; removing the last one releases
// the fornecedor lock.
func (s *Selecao) Remover(numero string) {
	for i, n := range s.numeros {
		if n == numero {
			s.numeros = append(s.numeros[:i], s.numeros[i+1:]...)
			break
		}
	}
	if len(s.numeros) == 0 {
		s.fornecedor = ""
	}
}

// SelecionarTodos replaces the selection with every order in pedidos. It is
// only allowed when all of them already share one fornecedor, or when the
// active filter is narrowed past "Todos"; otherwise the selection is left
// unchanged.
func (s *Selecao) SelecionarTodos(pedidos []entities.Pedido, filtroFornecedor string) error {
	if len(pedidos) == 0 {
		return ErrSelecaoVazia
	}
	if filtroFornecedor == FornecedorTodos || filtroFornecedor == "" {
		primeiro := pedidos[0].Fornecedor
		for _, p := range pedidos[1:] {
			if p.Fornecedor != primeiro {
				return ErrFornecedorDiferente
			}
		}
	}
	s.numeros = s.numeros[:0]
	for _, p := range pedidos {
		s.numeros = append(s.numeros, p.Numero)
	}
	s.fornecedor = pedidos[0].Fornecedor
	return nil
}

func (s *Selecao) Contem(numero string) bool {
	for _, n := range s.numeros {
		if n == numero {
			return true
		}
	}
	return false
}

func (s *Selecao) Numeros() []string {
	out := make([]string, len(s.numeros))
	copy(out, s.numeros)
	return out
}

func (s *Selecao) Fornecedor() string { return s.fornecedor }

func (s *Selecao) Vazia() bool { return len(s.numeros) == 0 }

func (s *Selecao) Limpar() {
	s.numeros = s.numeros[:0]
	s.fornecedor = ""
}
