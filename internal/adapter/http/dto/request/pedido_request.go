package request

// EditarPedidoRequest is the payload of PATCH /v1/pedidos/:numero.
//
// Valor and Custo keep the comma-decimal string encoding used everywhere
// else; validation of the format happens in the use case.
type EditarPedidoRequest struct {
	Valor string `json:"valor" binding:"required"`
	Custo string `json:"custo"`
}
